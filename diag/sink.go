package diag

import "github.com/modc-lang/modc/location"

// Sink is the legacy diagnostics callback shape spec §6 names:
// (severity, message, resourcePath, range). severity is "error" or
// "warning"; range is a byte/line interval. It exists for hosts that want
// a plain function instead of a Collector, adapting to/from Issue.
type Sink func(severity, message, resourcePath string, span location.Span)

// SinkFromCollector adapts collector into a Sink: every call appends one
// Issue built from the callback's arguments. Only "error" and "warning"
// severities are meaningful at this boundary; any other string collects
// as Warning rather than silently dropping the issue.
func SinkFromCollector(collector *Collector) Sink {
	return func(severity, message, resourcePath string, span location.Span) {
		sev := Warning
		if severity == "error" {
			sev = Error
		}
		b := NewIssue(sev, E_EXTERNAL, message).WithPath(resourcePath, "")
		if !span.IsZero() {
			b = b.WithSpan(span)
		}
		collector.Collect(b.Build())
	}
}

// CollectorSink adapts the other direction: a Sink that a host implements
// can be driven from Issues already in hand, for a component that only
// knows how to report through a Collector but whose caller only exposes
// a Sink.
func CollectorSink(sink Sink) func(Issue) {
	return func(issue Issue) {
		severity := "warning"
		if issue.Severity() == Error || issue.Severity() == Fatal {
			severity = "error"
		}
		sink(severity, issue.Message(), issue.SourceName(), issue.Span())
	}
}
