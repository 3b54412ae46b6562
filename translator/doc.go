// Package translator reads PO-style message tables (spec §6's Translator
// collaborator). A Table maps (msgctxt, msgid) pairs to msgstr
// translations; ReadPO builds one from .po-formatted content, reporting
// malformed entries through a
// diag.Collector rather than failing the whole read (the same
// partial-result-on-error shape ast.Builder and instance.Instantiate use).
package translator
