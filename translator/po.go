package translator

import (
	"strings"

	"github.com/modc-lang/modc/diag"
	"github.com/modc-lang/modc/internal/textlit"
	"github.com/modc-lang/modc/location"
)

// ReadPO builds a Table from PO-formatted content (spec §6's Translator
// collaborator). Entries are separated by blank lines; msgctxt is
// optional, msgid and msgstr are required for an entry to be kept. A
// directive's value may continue across following lines that are bare
// quoted string literals, which are concatenated in source order.
//
// Malformed lines are reported through collector as E_PO_PARSE and
// skipped; ReadPO always returns a usable (possibly empty) Table, matching
// the partial-result-on-error shape the rest of this module uses.
//
// Per the flagged open question on PO \r\n handling (spec §9), lines are
// split on "\n" only: a CRLF-terminated file leaves a trailing "\r" inside
// the line text, which textlit.ConvertString then either consumes as part
// of a syntactically invalid trailer or leaves embedded in the decoded
// string. This is not normalized; behavior on Windows-newline PO files is
// deliberately left as the source format dictates.
func ReadPO(content []byte, sourceID location.SourceID, collector *diag.Collector) *Table {
	t := &Table{entries: make(map[tableKey]string)}

	var ctx, id, str string
	var haveID, haveStr bool
	var field *string

	collect := func(issue diag.Issue) {
		if collector != nil {
			collector.Collect(issue)
		}
	}

	flush := func() {
		if haveID && haveStr {
			t.entries[tableKey{context: ctx, id: id}] = str
		}
		ctx, id, str = "", "", ""
		haveID, haveStr = false, false
		field = nil
	}

	lines := strings.Split(string(content), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		lineNo := i + 1

		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
			// comment, ignored
		case strings.HasPrefix(line, "msgctxt "):
			v, err := decodeLiteral(line[len("msgctxt "):])
			if err != nil {
				collect(poIssue(sourceID, lineNo, "malformed msgctxt: "+err.Error()))
				continue
			}
			ctx = v
			field = &ctx
		case strings.HasPrefix(line, "msgid "):
			v, err := decodeLiteral(line[len("msgid "):])
			if err != nil {
				collect(poIssue(sourceID, lineNo, "malformed msgid: "+err.Error()))
				continue
			}
			id = v
			haveID = true
			field = &id
		case strings.HasPrefix(line, "msgstr "):
			v, err := decodeLiteral(line[len("msgstr "):])
			if err != nil {
				collect(poIssue(sourceID, lineNo, "malformed msgstr: "+err.Error()))
				continue
			}
			str = v
			haveStr = true
			field = &str
		case strings.HasPrefix(line, `"`):
			if field == nil {
				collect(poIssue(sourceID, lineNo, "continuation string with no preceding directive"))
				continue
			}
			v, err := decodeLiteral(line)
			if err != nil {
				collect(poIssue(sourceID, lineNo, "malformed continuation string: "+err.Error()))
				continue
			}
			*field += v
		default:
			collect(poIssue(sourceID, lineNo, "unrecognized PO line"))
		}
	}
	flush()

	return t
}

func decodeLiteral(s string) (string, error) {
	return textlit.ConvertString(strings.TrimSpace(s))
}

func poIssue(sourceID location.SourceID, line int, msg string) diag.Issue {
	return diag.NewIssue(diag.Error, diag.E_PO_PARSE, msg).
		WithSpan(location.Point(sourceID, line, 1)).
		Build()
}
