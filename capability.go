package droidglue

import "sync"

// State describes the lifecycle of a single platform capability.
type State uint8

const (
	// Uninitialized means no resolution attempt was made yet.
	Uninitialized State = iota
	// Resolving is the transient state while handle lookups are in flight.
	Resolving
	// Resolved means every required platform handle was looked up successfully.
	Resolved
	// Failed is terminal: a required handle could not be resolved and the
	// capability stays disabled for the rest of the process lifetime.
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// capability tracks the resolution state and the most recent diagnostic of
// one optional platform feature. The zero value is ready to use.
type capability struct {
	mu      sync.Mutex
	state   State
	lastErr string
}

// initialize resolves the capability handles at most once. Calling it again
// once resolved is a no-op, and a failed resolution is never retried.
func (c *capability) initialize(resolve func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Resolved || c.state == Failed {
		return
	}
	c.state = Resolving
	if err := resolve(); err != nil {
		c.state = Failed
		c.lastErr = err.Error()
		return
	}
	c.state = Resolved
	c.lastErr = ""
}

// perform runs op if the capability is usable and reports whether op ran
// successfully. A failing op only updates the diagnostic: unlike resolution
// faults, call-time faults are retryable and never disable the capability.
func (c *capability) perform(op func() error) bool {
	c.mu.Lock()
	if c.state != Resolved {
		c.mu.Unlock()
		return false
	}
	c.mu.Unlock()

	err := op()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return false
	}
	c.lastErr = ""
	return true
}

func (c *capability) lastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *capability) currentState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
