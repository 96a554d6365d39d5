package typing

import "testing"

func TestClockStates(t *testing.T) {
	c := NewCountdown(60)
	if c.State() != ClockIdle {
		t.Fatalf("new clock state = %v, want idle", c.State())
	}

	// Ticks before Start must not advance time.
	c.Tick()
	if c.Elapsed() != 0 {
		t.Errorf("elapsed advanced while idle: %d", c.Elapsed())
	}

	c.Start()
	if c.State() != ClockRunning {
		t.Fatalf("state after Start = %v, want running", c.State())
	}
	c.Tick()
	c.Tick()
	if c.Elapsed() != 2 {
		t.Errorf("elapsed = %d, want 2", c.Elapsed())
	}
	if c.Remaining() != 58 {
		t.Errorf("remaining = %d, want 58", c.Remaining())
	}

	c.Stop()
	if c.State() != ClockStopped {
		t.Fatalf("state after Stop = %v, want stopped", c.State())
	}
	c.Tick()
	if c.Elapsed() != 2 {
		t.Errorf("elapsed advanced while stopped: %d", c.Elapsed())
	}

	// A stopped clock cannot be restarted.
	c.Start()
	if c.State() != ClockStopped {
		t.Errorf("Start restarted a stopped clock")
	}
}

func TestClockExpiry(t *testing.T) {
	c := NewCountdown(3)
	c.Start()

	for i := 0; i < 2; i++ {
		if c.Tick() {
			t.Fatalf("clock expired early at tick %d", i+1)
		}
	}
	if !c.Tick() {
		t.Fatal("clock did not report expiry on final tick")
	}
	if c.State() != ClockStopped {
		t.Errorf("state after expiry = %v, want stopped", c.State())
	}
	if c.Tick() {
		t.Error("expiry reported twice")
	}
}

func TestClockCountUpDisplay(t *testing.T) {
	c := NewCountUp(600)
	c.Start()
	c.Tick()
	c.Tick()
	c.Tick()

	if got := c.Display(); got != 3 {
		t.Errorf("count-up Display() = %d, want 3", got)
	}

	d := NewCountdown(60)
	d.Start()
	d.Tick()
	if got := d.Display(); got != 59 {
		t.Errorf("countdown Display() = %d, want 59", got)
	}
}
