package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type Option func(cb *circuitBreaker)

// WithFailure decides which errors count against the breaker.
// By default every non-nil error does.
func WithFailure(isFailure func(err error) bool) Option {
	return func(cb *circuitBreaker) {
		cb.isFailure = isFailure
	}
}

// WithClock is for tests.
func WithClock(now func() time.Time) Option {
	return func(cb *circuitBreaker) {
		cb.now = now
	}
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status
	// size of the tracked tail of calls
	recordLength int
	// how long an open breaker rejects calls before probing
	timeout         time.Duration
	lastAttemptedAt time.Time
	// failure ratio that opens the breaker
	percentile float64
	// ring of call outcomes, true = failed
	buffer []bool
	pos    int
	// consecutive half-open successes needed to close again
	recoveryRequests int
	successCount     int

	isFailure func(err error) bool
	now       func() time.Time
}

func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int, opts ...Option) CircuitBreaker {
	cb := &circuitBreaker{
		state:            Closed,
		recordLength:     recordLength,
		timeout:          timeout,
		percentile:       percentile,
		buffer:           make([]bool, recordLength),
		recoveryRequests: recoveryRequests,
		isFailure:        func(err error) bool { return err != nil },
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.lastAttemptedAt) > cb.timeout {
			cb.state = HalfOpen
			cb.successCount = 0
		} else {
			cb.mu.Unlock()
			return ErrOpenCB
		}
	}
	cb.mu.Unlock()

	err := service()
	failed := err != nil && cb.isFailure(err)

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.buffer[cb.pos] = failed
	cb.pos = (cb.pos + 1) % cb.recordLength

	if cb.state == HalfOpen {
		if failed {
			cb.trip()
		} else {
			cb.successCount++
			if cb.successCount >= cb.recoveryRequests {
				cb.reset()
			}
		}
		return err
	}

	fails := 0
	for _, f := range cb.buffer {
		if f {
			fails++
		}
	}
	if float64(fails)/float64(cb.recordLength) >= cb.percentile {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.lastAttemptedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.buffer {
		cb.buffer[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
