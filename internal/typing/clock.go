package typing

// ClockState is the lifecycle state of a session clock.
type ClockState int

const (
	// ClockIdle means the session has not started; the first keystroke
	// starts the clock.
	ClockIdle ClockState = iota
	// ClockRunning means the clock advances one second per tick.
	ClockRunning
	// ClockStopped is terminal. A new session needs a new clock.
	ClockStopped
)

// Clock is the session timer. It counts whole seconds from the first
// accepted keystroke up to a fixed limit. Countdown clocks display the
// remaining time, count-up clocks (endurance) display the elapsed time;
// both stop when elapsed reaches the limit.
type Clock struct {
	limit   int
	elapsed int
	countUp bool
	state   ClockState
}

// NewCountdown creates a clock that runs for limit seconds, displayed as
// time remaining.
func NewCountdown(limit int) *Clock {
	return &Clock{limit: limit}
}

// NewCountUp creates an endurance clock that runs for limit seconds,
// displayed as time elapsed.
func NewCountUp(limit int) *Clock {
	return &Clock{limit: limit, countUp: true}
}

// Start transitions the clock from idle to running. It is a no-op in any
// other state.
func (c *Clock) Start() {
	if c.state == ClockIdle {
		c.state = ClockRunning
	}
}

// Stop halts the clock permanently.
func (c *Clock) Stop() {
	c.state = ClockStopped
}

// Tick advances the clock by one second while running. It returns true
// exactly once, on the tick that reaches the limit; the clock stops itself
// at that point.
func (c *Clock) Tick() bool {
	if c.state != ClockRunning {
		return false
	}
	c.elapsed++
	if c.elapsed >= c.limit {
		c.elapsed = c.limit
		c.state = ClockStopped
		return true
	}
	return false
}

// State returns the current lifecycle state.
func (c *Clock) State() ClockState {
	return c.state
}

// Running reports whether the clock is running.
func (c *Clock) Running() bool {
	return c.state == ClockRunning
}

// Elapsed returns the number of seconds the session has run.
func (c *Clock) Elapsed() int {
	return c.elapsed
}

// Remaining returns the seconds left before the limit.
func (c *Clock) Remaining() int {
	return c.limit - c.elapsed
}

// Limit returns the configured limit in seconds.
func (c *Clock) Limit() int {
	return c.limit
}

// Display returns the number the UI should show: remaining seconds for a
// countdown, elapsed seconds for a count-up.
func (c *Clock) Display() int {
	if c.countUp {
		return c.elapsed
	}
	return c.limit - c.elapsed
}

// CountUp reports whether this is an endurance-style clock.
func (c *Clock) CountUp() bool {
	return c.countUp
}
