package locmatch

import "io"

// Option functions optionally alter how a Matcher operates.
type Option = func(*config)

type config struct {
	traceLogger io.Writer
}

// WithTraceLogs logs debugging information about the match walk to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) Option {
	return func(cfg *config) {
		cfg.traceLogger = out
	}
}
