package typing

// ChallengeType tags a challenge with the metric it targets.
type ChallengeType string

const (
	ChallengeSpeed     ChallengeType = "speed"     // target is WPM
	ChallengeAccuracy  ChallengeType = "accuracy"  // target is accuracy %
	ChallengeEndurance ChallengeType = "endurance" // target is minutes
	ChallengePrecision ChallengeType = "precision" // target is accuracy %
	ChallengeCode      ChallengeType = "code"      // target is accuracy %
)

// Challenge is a named goal evaluated against the final session metrics.
// It is immutable for the lifetime of a session.
type Challenge struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        ChallengeType `json:"type"`
	Target      float64       `json:"target"`
	Reward      string        `json:"reward"`
	Content     string        `json:"content,omitempty"`
}

// ClockFor builds the session clock a challenge demands. Endurance
// challenges count up toward their target expressed in minutes; every
// other type counts down from defaultLimit seconds.
func ClockFor(c *Challenge, defaultLimit int) *Clock {
	if c != nil && c.Type == ChallengeEndurance {
		return NewCountUp(int(c.Target) * 60)
	}
	return NewCountdown(defaultLimit)
}

// Evaluate maps a challenge onto a pass/fail verdict over the final
// session result. A challenge of unknown type never passes.
func Evaluate(c Challenge, r SessionResult) bool {
	switch c.Type {
	case ChallengeSpeed:
		return float64(r.WPM) >= c.Target
	case ChallengeAccuracy:
		return r.Accuracy >= c.Target
	case ChallengeEndurance:
		// Evaluate only runs at session end; surviving to it is the
		// only bar.
		return true
	case ChallengePrecision:
		// Speed is informational only; the accuracy bar decides.
		return r.Accuracy >= c.Target
	case ChallengeCode:
		return r.Accuracy >= c.Target
	default:
		return false
	}
}
