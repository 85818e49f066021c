// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package fixtime implements the signed 64-bit fixed-point time scalar used
// by go-eventsched. The integer part is whole seconds, and the low 30 bits
// are the fractional part, giving a resolution of roughly 0.93ns over a range
// of approximately +-272 years. Instants and intervals share the same scalar
// domain, and arithmetic on them is ordinary integer arithmetic.
package fixtime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// Shift is the number of fractional bits.
	Shift = 30

	// Second is one second.
	Second Time = 1 << Shift

	// Min is the minimum representable value, reserved as the "no time"
	// sentinel. It never results from converting a valid input.
	Min Time = math.MinInt64

	// Max is the maximum representable value.
	Max Time = math.MaxInt64

	nanosPerSecond = 1_000_000_000
)

type (
	// Time is a fixed-point instant or interval, in seconds scaled by 2^Shift.
	Time int64

	// Clock is a pluggable timestamp source. See Mono and Wall.
	Clock func() Time
)

// FromDuration converts a duration to fixed point, rounding toward zero.
//
// Seconds and the sub-second remainder are converted separately, so the
// conversion is exact to within one fractional bit for the full range of
// time.Duration.
func FromDuration(d time.Duration) Time {
	sec := int64(d / time.Second)
	rem := int64(d % time.Second)
	return Time(sec)<<Shift + Time(rem<<Shift/nanosPerSecond)
}

// AsDuration converts to a time.Duration, rounding toward zero.
func (x Time) AsDuration() time.Duration {
	sec := int64(x / Second)
	frac := int64(x % Second)
	return time.Duration(sec)*time.Second + time.Duration(frac*nanosPerSecond>>Shift)
}

// FromTime converts an absolute time to fixed point, relative to the Unix
// epoch in UTC. The zero time.Time maps to Min. Inputs more than about 272
// years from the epoch are outside the representable range.
func FromTime(t time.Time) Time {
	if t.IsZero() {
		return Min
	}
	return Time(t.Unix())<<Shift + Time(int64(t.Nanosecond())<<Shift/nanosPerSecond)
}

// AsTime converts to a time.Time in UTC, treating the value as seconds since
// the Unix epoch. Min maps to the zero time.Time.
func (x Time) AsTime() time.Time {
	if x == Min {
		return time.Time{}
	}
	sec := int64(x) >> Shift
	frac := int64(x) & (int64(Second) - 1)
	return time.Unix(sec, frac*nanosPerSecond>>Shift).UTC()
}

// FromSeconds converts floating-point seconds, rounding to nearest. NaN maps
// to zero, and out-of-range values clamp to the representable range (never
// the Min sentinel).
func FromSeconds(s float64) Time {
	f := math.Round(s * float64(Second))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(Max):
		return Max
	case f <= float64(Min):
		return Min + 1
	}
	return Time(f)
}

// AsSeconds converts to floating-point seconds.
func (x Time) AsSeconds() float64 {
	return float64(x) / float64(Second)
}

// ParseDuration parses a Go duration string (e.g. "150ms", "1.5s") as a fixed
// point interval.
func ParseDuration(s string) (Time, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf(`fixtime: parse duration %q: %w`, s, err)
	}
	return FromDuration(d), nil
}

// String formats the value as decimal seconds with up to nine fractional
// digits, e.g. "1.5s" or "-0.25s". Min formats as "min".
func (x Time) String() string {
	if x == Min {
		return `min`
	}
	v := x
	neg := v < 0
	if neg {
		v = -v
	}
	sec := int64(v) >> Shift
	ns := (int64(v) & (int64(Second) - 1)) * nanosPerSecond >> Shift
	s := strconv.FormatInt(sec, 10)
	if ns != 0 {
		f := strings.TrimRight(fmt.Sprintf(`%09d`, ns), `0`)
		s += `.` + f
	}
	s += `s`
	if neg {
		s = `-` + s
	}
	return s
}
