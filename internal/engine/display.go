package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// State is the lifecycle stage of a Display.
type State int

const (
	// StateIdle is a constructed display that has not been mounted yet.
	StateIdle State = iota
	// StateMounted displays are ticking.
	StateMounted
	// StateUnmounted is terminal: the source is cancelled and state is frozen.
	StateUnmounted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMounted:
		return "mounted"
	case StateUnmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// DisplayOption customizes a Display.
type DisplayOption func(*Display)

// WithPeriod overrides the tick interval.
func WithPeriod(d time.Duration) DisplayOption {
	return func(dp *Display) {
		dp.period = d
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) DisplayOption {
	return func(dp *Display) {
		if l != nil {
			dp.log = l
		}
	}
}

// Display holds the current moment of one clock and replaces it on every tick.
// It knows nothing about the toolkit rendering it; renderers subscribe with OnChange.
type Display struct {
	clock  Clock
	period time.Duration
	log    *slog.Logger

	mu        sync.Mutex
	state     State
	current   Moment
	updates   uint64
	cancel    CancelFunc
	listeners []func(Moment)
}

// NewDisplay creates an idle display reading from clock.
func NewDisplay(clock Clock, opts ...DisplayOption) *Display {
	d := &Display{
		clock:  clock,
		period: config.TickPeriod,
		log:    slog.With(config.LogKeyComponent, config.CompEngine),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnChange registers fn to run after every tick-driven replacement.
// Listeners run on the ticker goroutine, outside the display lock.
func (d *Display) OnChange(fn func(Moment)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, fn)
}

// Mount reads the clock for the initial moment and starts ticking.
// Only an idle display can be mounted; other calls are ignored.
func (d *Display) Mount() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateIdle {
		return
	}

	d.current = NewMoment(d.clock.Now())
	d.state = StateMounted
	d.cancel = NewTimeSource(d.clock, d.period).Start(d.tick)

	d.log.Info(config.MsgMounted,
		config.LogKeyMoment, d.current.String(),
		config.LogKeyInterval, d.period)
}

// Unmount stops the time source and freezes the display for good.
// The source is cancelled before Unmount returns.
func (d *Display) Unmount() {
	d.mu.Lock()
	if d.state == StateUnmounted {
		d.mu.Unlock()
		return
	}
	d.state = StateUnmounted
	cancel := d.cancel
	d.cancel = nil
	updates := d.updates
	d.mu.Unlock()

	// The tick callback takes the lock, so cancel runs outside it.
	if cancel != nil {
		cancel()
	}

	d.log.Info(config.MsgUnmounted, config.LogKeyUpdates, updates)
}

// Current returns the moment on display. It is the zero Moment before Mount.
func (d *Display) Current() Moment {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// State returns the lifecycle stage.
func (d *Display) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Updates counts tick-driven replacements. The initial mount read is not counted.
func (d *Display) Updates() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updates
}

func (d *Display) tick() {
	d.mu.Lock()
	if d.state != StateMounted {
		d.mu.Unlock()
		d.log.Debug(config.MsgTickDropped)
		return
	}
	m := NewMoment(d.clock.Now())
	d.current = m
	d.updates++
	listeners := make([]func(Moment), len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.Unlock()

	d.log.Debug(config.MsgTick, config.LogKeyMoment, m.String())

	for _, fn := range listeners {
		fn(m)
	}
}
