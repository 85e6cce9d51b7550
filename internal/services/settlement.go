package services

import (
	"context"
	"time"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/utils"
)

const (
	defaultSettlementDelay   = 5 * time.Second
	defaultSettlementTimeout = 30 * time.Second
)

// SettlementScheduler runs one-shot delayed units of work detached from the
// originating request. The delay stands in for gateway latency; there is no
// retry and no cancellation, so a payment stays PENDING if the process dies
// mid-delay.
type SettlementScheduler struct {
	Delay   time.Duration
	Timeout time.Duration
}

// Schedule spawns the unit of work. The request that called it has already
// responded, so failures have no client channel: they are logged and
// swallowed. The returned channel closes once the work finishes.
func (s SettlementScheduler) Schedule(requestID, label string, fn func(ctx context.Context) error) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(s.delay())

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
		defer cancel()

		if err := fn(ctx); err != nil {
			utils.LogEvent(requestID, "settlement", label, "deferred work failed: "+err.Error())
		}
	}()
	return done
}

func (s SettlementScheduler) delay() time.Duration {
	if s.Delay > 0 {
		return s.Delay
	}
	return defaultSettlementDelay
}

func (s SettlementScheduler) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return defaultSettlementTimeout
}
