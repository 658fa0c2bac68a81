// Package builder provides options and error definitions for the
// synthetic mesh generators.
package builder

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh generation.
var (
	// ErrSize is returned when a generator dimension is below its minimum.
	ErrSize = errors.New("builder: size must be positive")

	// ErrOption is returned when an option carries an invalid value or an
	// option does not apply to the requested shape.
	ErrOption = errors.New("builder: invalid option")
)

// Option configures a generator. Options apply in call order; an invalid
// value is remembered and surfaced as ErrOption by the generator.
type Option func(*options)

type options struct {
	scale  float64
	offset r3.Vec
	uvGrid bool
	err    error
}

func defaultOptions() options {
	return options{scale: 1}
}

// WithScale multiplies all generated coordinates by s. s must be positive.
func WithScale(s float64) Option {
	return func(o *options) {
		if s <= 0 {
			o.err = errOption("scale must be positive")
			return
		}
		o.scale = s
	}
}

// WithOffset translates all generated coordinates by off, applied after
// scaling.
func WithOffset(off r3.Vec) Option {
	return func(o *options) { o.offset = off }
}

// WithUVGrid attaches a planar UV layer with one shared UV index per
// vertex, normalized to the unit square. Only flat sheets can carry it.
func WithUVGrid() Option {
	return func(o *options) { o.uvGrid = true }
}

func errOption(msg string) error {
	return fmt.Errorf("%w: %s", ErrOption, msg)
}
