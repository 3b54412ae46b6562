package library

import (
	"log/slog"

	"github.com/modc-lang/modc/parsetree"
	"github.com/modc-lang/modc/translator"
)

// Option configures Load, grounded on schema/load/options.go's functional
// options shape.
type Option func(*config)

type config struct {
	fs         FileSystem
	parser     parsetree.Parser
	translator *translator.Table
	issueLimit int
	logger     *slog.Logger
	requestID  string
}

func defaultConfig() *config {
	return &config{
		fs:         OSFileSystem{},
		issueLimit: 100,
	}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithFileSystem overrides the default OSFileSystem, e.g. with an in-memory
// fixture for tests.
func WithFileSystem(fsys FileSystem) Option {
	return func(c *config) { c.fs = fsys }
}

// WithParser supplies the parser collaborator (spec §6). Load has no
// usable default: without a parser, every file load fails with
// ErrNoParser.
func WithParser(p parsetree.Parser) Option {
	return func(c *config) { c.parser = p }
}

// WithTranslator attaches a message table to the returned Library as
// Library.Translator (spec §6's Translator collaborator). Load does not
// apply it to the diagnostics it reports; they stay untranslated.
func WithTranslator(t *translator.Table) Option {
	return func(c *config) { c.translator = t }
}

// WithIssueLimit sets the maximum number of diagnostic issues to collect.
// Set to 0 for unlimited. Default is 100.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}

// WithLogger provides a structured logger for load operation tracing. If
// not provided, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithRequestID tags this Load's trace span with id, so its start/end log
// lines carry the same correlation ID a caller attaches to the rest of its
// work (e.g. one ID per CLI invocation spanning both Load and a subsequent
// flatten.Run). See internal/trace.WithRequestID.
func WithRequestID(id string) Option {
	return func(c *config) { c.requestID = id }
}
