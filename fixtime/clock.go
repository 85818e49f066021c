package fixtime

import (
	"time"
)

// for testing purposes
var timeNow = time.Now

// monoEpoch anchors Mono. It carries a monotonic reading, so Mono is immune
// to wall clock adjustments.
var monoEpoch = time.Now()

// Mono returns the elapsed time since an unspecified process-local epoch. It
// is non-decreasing and unrelated to wall time, and is the default scheduler
// clock. Values are small positive numbers starting near zero at process
// start.
func Mono() Time {
	return FromDuration(timeNow().Sub(monoEpoch))
}

// Wall returns the current UTC wall time relative to the Unix epoch. It may
// jump backward or forward if the system clock is adjusted.
func Wall() Time {
	return FromTime(timeNow())
}
