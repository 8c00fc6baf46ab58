package scale

import "math"

// Full-scale values per convention and conversion family. The reference
// behaviour for every pairing reduces to v / fullScale(from) * fullScale(to):
// e.g. a 0-100 value entering a domain-10 function divides by 10, a unit
// value entering a degree function multiplies by 360.
const (
	degreeFullScale = 360
	intBitDepth     = 8
	intFullScale    = 1<<intBitDepth - 1
)

func fullScale(s Scale) float64 {
	switch s {
	case Unity:
		return 1
	case Percent:
		return 100
	case Degrees:
		return degreeFullScale
	case Integer:
		return intFullScale
	default:
		// Reference: unused, conversions short-circuit to identity.
		return 1
	}
}

// resolve returns the explicit convention when one is given, else the
// ambient convention of the default controller. An unrecognized explicit
// convention passes values through unchanged, matching the reference
// behaviour for unmatched conventions.
func resolve(explicit []Scale) Scale {
	if len(explicit) > 0 {
		s, err := Parse(string(explicit[0]))
		if err != nil {
			return Reference
		}
		return s
	}
	return Get()
}

func toDomain(v, full float64, s Scale) float64 {
	if s == Reference {
		return v
	}
	return v / fullScale(s) * full
}

func fromRange(v, full float64, s Scale) float64 {
	if s == Reference {
		return v
	}
	return v / full * fullScale(s)
}

// ToDomain1 maps a value expressed in the caller's convention into a unit
// reference domain. An explicit convention overrides the ambient one for
// this call only.
func ToDomain1(v float64, explicit ...Scale) float64 {
	return toDomain(v, 1, resolve(explicit))
}

// ToDomain10 maps a value into a 0-10 reference domain.
func ToDomain10(v float64, explicit ...Scale) float64 {
	return toDomain(v, 10, resolve(explicit))
}

// ToDomain100 maps a value into a 0-100 reference domain.
func ToDomain100(v float64, explicit ...Scale) float64 {
	return toDomain(v, 100, resolve(explicit))
}

// ToDomainDegrees maps a circular value into a 0-360 degree domain.
func ToDomainDegrees(v float64, explicit ...Scale) float64 {
	return toDomain(v, degreeFullScale, resolve(explicit))
}

// ToDomainInt maps a value into the 8-bit integer-code domain, rounding to
// the nearest code. A result beyond what the configured float precision can
// represent exactly raises a precision warning; the rounded value is still
// returned, never silently truncated further.
func ToDomainInt(v float64, explicit ...Scale) float64 {
	scaled := toDomain(v, intFullScale, resolve(explicit))
	return roundToCode("ToDomainInt", scaled)
}

// FromRange1 maps a unit-domain result back into the caller's convention.
func FromRange1(v float64, explicit ...Scale) float64 {
	return fromRange(v, 1, resolve(explicit))
}

// FromRange10 maps a 0-10 domain result back into the caller's convention.
func FromRange10(v float64, explicit ...Scale) float64 {
	return fromRange(v, 10, resolve(explicit))
}

// FromRange100 maps a 0-100 domain result back into the caller's
// convention.
func FromRange100(v float64, explicit ...Scale) float64 {
	return fromRange(v, 100, resolve(explicit))
}

// FromRangeDegrees maps a degree-domain result back into the caller's
// convention.
func FromRangeDegrees(v float64, explicit ...Scale) float64 {
	return fromRange(v, degreeFullScale, resolve(explicit))
}

// FromRangeInt maps an integer-code result back into the caller's
// convention. When that convention is itself Integer the result is rounded
// to the nearest code, with the same precision policy as ToDomainInt.
func FromRangeInt(v float64, explicit ...Scale) float64 {
	s := resolve(explicit)
	out := fromRange(v, intFullScale, s)
	if s == Integer {
		return roundToCode("FromRangeInt", out)
	}
	return out
}

func roundToCode(op string, v float64) float64 {
	rounded := math.Round(v)
	checkPrecision(op, v, rounded)
	return rounded
}

// MapSlice applies a conversion across values, returning a new slice.
//
//	out := scale.MapSlice(xyz, func(v float64) float64 { return scale.ToDomain1(v) })
func MapSlice(values []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}
