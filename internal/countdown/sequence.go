// Package countdown produces the descending minute sequence that walks the dial
// back to zero, one value per tick.
package countdown

import (
	"context"
	"time"
)

// DefaultInterval is the pause between two emitted values.
const DefaultInterval = time.Second

// Clock abstracts waiting so tests can run a countdown without sleeping.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RealClock waits on the wall clock.
var RealClock Clock = realClock{}

// Sequence yields start, start-1, ..., 0. The first value is due immediately,
// every later one after the interval. A Sequence is single-use.
type Sequence struct {
	next     int
	started  bool
	done     bool
	interval time.Duration
}

// New creates a sequence counting down from start minutes. Negative starts are
// treated as zero.
func New(start int, interval time.Duration) *Sequence {
	if start < 0 {
		start = 0
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sequence{next: start, interval: interval}
}

// Next returns the next value and how long the consumer must wait before
// applying it. ok is false once zero has been handed out.
func (s *Sequence) Next() (value int, delay time.Duration, ok bool) {
	if s.done {
		return 0, 0, false
	}
	value = s.next
	if s.started {
		delay = s.interval
	}
	s.started = true
	if value == 0 {
		s.done = true
	} else {
		s.next--
	}
	return value, delay, true
}

// Done reports whether the terminal zero has been emitted.
func (s *Sequence) Done() bool { return s.done }

// Interval is the pause between emissions after the first. Consumers that
// schedule values themselves read it instead of the second value's delay.
func (s *Sequence) Interval() time.Duration { return s.interval }

// Values lists every value a countdown from start emits. It is a library
// entry point for callers that render the whole sequence up front.
func Values(start int) []int {
	seq := New(start, DefaultInterval)
	var out []int
	for {
		v, _, ok := seq.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Option configures Run.
type Option func(*runner)

type runner struct {
	interval time.Duration
	clock    Clock
}

// WithInterval sets the pause between values.
func WithInterval(d time.Duration) Option {
	return func(r *runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(r *runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// Run emits the countdown from start on the returned channel from a background
// goroutine. The channel is closed after zero or when ctx is cancelled; a
// cancelled run never emits again.
func Run(ctx context.Context, start int, opts ...Option) <-chan int {
	r := &runner{interval: DefaultInterval, clock: RealClock}
	for _, opt := range opts {
		opt(r)
	}
	out := make(chan int)
	seq := New(start, r.interval)

	go func() {
		defer close(out)
		for {
			v, delay, ok := seq.Next()
			if !ok {
				return
			}
			if delay > 0 {
				select {
				case <-ctx.Done():
					return
				case <-r.clock.After(delay):
				}
			}
			select {
			case <-ctx.Done():
				return
			case out <- v:
			}
		}
	}()
	return out
}
