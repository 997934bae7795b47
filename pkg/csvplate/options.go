package csvplate

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures parsing.
type Options struct {
	// Logger receives skip-and-continue diagnostics. Defaults to a discard logger.
	Logger *log.Logger
}

// WithDefaults returns a copy of o with zero fields filled in.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}
