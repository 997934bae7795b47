package plate

import (
	"io"

	"github.com/charmbracelet/log"
)

// Plate binds a validated size to its geometry and a diagnostics logger.
// A Plate is immutable and safe for concurrent use.
type Plate struct {
	size   Size
	geom   Geometry
	logger *log.Logger
}

// Option configures a [Plate].
type Option func(*Plate)

// WithLogger routes skip-and-continue diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(p *Plate) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Plate for size, or an INVALID_PLATE_SIZE error.
func New(size Size, opts ...Option) (*Plate, error) {
	geom, err := Dimensions(size)
	if err != nil {
		return nil, err
	}
	p := &Plate{size: size, geom: geom, logger: discardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Size returns the plate size.
func (p *Plate) Size() Size { return p.size }

// Geometry returns the row × column grid.
func (p *Plate) Geometry() Geometry { return p.geom }

// Logger returns the diagnostics logger.
func (p *Plate) Logger() *log.Logger { return p.logger }

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
