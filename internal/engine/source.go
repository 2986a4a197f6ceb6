package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// CancelFunc stops a running TimeSource.
// Once it returns, no callback is in flight and none will start.
// It is safe to call more than once but must not be called from the callback itself.
type CancelFunc func()

// TimeSource drives a callback at a fixed period.
type TimeSource struct {
	clock  Clock
	period time.Duration
	log    *slog.Logger
}

// NewTimeSource creates a source ticking every period on clock.
// A non-positive period falls back to config.TickPeriod.
func NewTimeSource(clock Clock, period time.Duration) *TimeSource {
	if period <= 0 {
		period = config.TickPeriod
	}
	return &TimeSource{
		clock:  clock,
		period: period,
		log:    slog.With(config.LogKeyComponent, config.CompSource),
	}
}

// Period returns the tick interval.
func (s *TimeSource) Period() time.Duration {
	return s.period
}

// Start invokes fn once per period, the first time after one full period.
// The ticker is registered before Start returns.
func (s *TimeSource) Start(fn func()) CancelFunc {
	ticker := s.clock.NewTicker(s.period)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case <-ticker.Chan():
				// A tick and a cancel may be ready together; cancel wins.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	s.log.Debug(config.MsgSourceStart, config.LogKeyInterval, s.period)

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
			wg.Wait()
			s.log.Debug(config.MsgSourceStop, config.LogKeyInterval, s.period)
		})
	}
}
