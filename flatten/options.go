package flatten

import "log/slog"

// Option configures Run, grounded on library.Option's functional options
// shape.
type Option func(*config)

type config struct {
	issueLimit int
	logger     *slog.Logger
	requestID  string
}

func defaultConfig() *config {
	return &config{issueLimit: 100}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithIssueLimit sets the maximum number of diagnostic issues to collect
// while instantiating root before flattening it. Set to 0 for unlimited.
// Default is 100.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}

// WithLogger provides a structured logger for flatten operation tracing.
// If not provided, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithRequestID tags this call's trace span with id, so Flatten/Run's
// start/end log lines correlate with a library.Load done under the same
// ID. See internal/trace.WithRequestID.
func WithRequestID(id string) Option {
	return func(c *config) { c.requestID = id }
}
