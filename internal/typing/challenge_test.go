package typing

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		ctype  ChallengeType
		target float64
		result SessionResult
		want   bool
	}{
		{"speed below target", ChallengeSpeed, 80, SessionResult{WPM: 79, Accuracy: 100, Completed: true}, false},
		{"speed at target", ChallengeSpeed, 80, SessionResult{WPM: 80, Accuracy: 100, Completed: true}, true},
		{"speed above target", ChallengeSpeed, 80, SessionResult{WPM: 95, Accuracy: 40, Completed: true}, true},
		{"accuracy below target", ChallengeAccuracy, 98, SessionResult{WPM: 120, Accuracy: 97.99, Completed: true}, false},
		{"accuracy at target", ChallengeAccuracy, 98, SessionResult{WPM: 10, Accuracy: 98, Completed: true}, true},
		{"precision uses accuracy", ChallengePrecision, 100, SessionResult{WPM: 30, Accuracy: 100, Completed: true}, true},
		{"precision misses", ChallengePrecision, 100, SessionResult{WPM: 30, Accuracy: 99.5, Completed: true}, false},
		{"code uses accuracy", ChallengeCode, 95, SessionResult{WPM: 30, Accuracy: 96.2, Completed: true}, true},
		{"endurance passes on full text", ChallengeEndurance, 10, SessionResult{WPM: 5, Accuracy: 12, Completed: true}, true},
		{"endurance passes on timeout", ChallengeEndurance, 10, SessionResult{WPM: 90, Accuracy: 100, Completed: false}, true},
		{"unknown type fails closed", ChallengeType("marathon"), 1, SessionResult{WPM: 200, Accuracy: 100, Completed: true}, false},
	}

	for _, tt := range tests {
		c := Challenge{ID: "c1", Type: tt.ctype, Target: tt.target}
		if got := Evaluate(c, tt.result); got != tt.want {
			t.Errorf("%s: Evaluate() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClockFor(t *testing.T) {
	c := ClockFor(&Challenge{Type: ChallengeEndurance, Target: 10}, 60)
	if !c.CountUp() {
		t.Error("endurance clock should count up")
	}
	if c.Limit() != 600 {
		t.Errorf("endurance limit = %d, want 600", c.Limit())
	}

	c = ClockFor(&Challenge{Type: ChallengeSpeed, Target: 80}, 60)
	if c.CountUp() {
		t.Error("speed clock should count down")
	}
	if c.Limit() != 60 {
		t.Errorf("speed limit = %d, want 60", c.Limit())
	}

	c = ClockFor(nil, 30)
	if c.Limit() != 30 || c.CountUp() {
		t.Errorf("nil challenge clock = limit %d countUp %v, want 30s countdown", c.Limit(), c.CountUp())
	}
}
