// Package scale implements the domain-range scale convention shared by
// every colour-transform function in the library. A transform reads the
// current convention at entry (ToDomain*), computes in its reference
// domain, and re-scales at exit (FromRange*), so callers can work in
// reference units, 0-1, 0-100, degrees or 8-bit integer codes without the
// transform knowing which.
package scale

import (
	"errors"
	"fmt"

	"github.com/zjrosen/prism/structures"
)

// Scale names one numeric convention for caller-facing values.
type Scale string

const (
	// Reference leaves values in each function's reference domain.
	Reference Scale = "reference"
	// Unity scales values to the unit range.
	Unity Scale = "1"
	// Percent scales values to the 0-100 range.
	Percent Scale = "100"
	// Degrees scales circular values to 0-360.
	Degrees Scale = "degrees"
	// Integer scales values to 8-bit integer codes (0-255).
	Integer Scale = "int"
)

// ErrInvalidScale reports an unrecognized convention.
var ErrInvalidScale = errors.New("invalid domain-range scale")

// scales is the closed set of recognized conventions, keyed
// case-insensitively for parsing.
var scales = structures.CaseInsensitiveMapOf(map[string]Scale{
	string(Reference): Reference,
	string(Unity):     Unity,
	string(Percent):   Percent,
	string(Degrees):   Degrees,
	string(Integer):   Integer,
})

// All returns the recognized conventions.
func All() []Scale {
	return scales.Values()
}

// Parse resolves a convention name, case-insensitively.
func Parse(name string) (Scale, error) {
	s, ok := scales.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidScale, name)
	}
	return s, nil
}

// Valid reports whether s is a recognized convention.
func (s Scale) Valid() bool {
	return scales.Contains(string(s))
}

func (s Scale) String() string {
	return string(s)
}
