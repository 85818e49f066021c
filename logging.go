package eventsched

import (
	"time"

	"golang.org/x/time/rate"
)

// warnLimiter rate limits repetitive warnings, such as the pump reporting
// that it is running behind, so a sustained condition does not flood the
// log sink.
type warnLimiter struct {
	limiter *rate.Limiter
}

// newWarnLimiter allows one warning per interval, with a burst of one.
func newWarnLimiter(interval time.Duration) *warnLimiter {
	return &warnLimiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (x *warnLimiter) allow() bool {
	return x.limiter.Allow()
}
