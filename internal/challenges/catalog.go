// Package challenges holds the premium challenge catalog and tracks
// completions against the local store.
package challenges

import "github.com/typerush/typerush/internal/typing"

// catalog is the built-in challenge set. Daily challenges rotate their
// content per session; the targets are fixed.
var catalog = []typing.Challenge{
	{
		ID:          "daily-1",
		Title:       "Speed Demon",
		Description: "Reach 80 WPM on a standard paragraph test",
		Type:        typing.ChallengeSpeed,
		Target:      80,
		Reward:      "Speed Master Badge",
	},
	{
		ID:          "daily-2",
		Title:       "Accuracy Ace",
		Description: "Complete a typing test with 98% accuracy or higher",
		Type:        typing.ChallengeAccuracy,
		Target:      98,
		Reward:      "Precision Badge",
	},
	{
		ID:          "daily-3",
		Title:       "Marathon Typist",
		Description: "Type continuously for 10 minutes without stopping",
		Type:        typing.ChallengeEndurance,
		Target:      10,
		Reward:      "Endurance Trophy",
	},
	{
		ID:          "weekly-1",
		Title:       "Code Ninja",
		Description: "Type a complete function with 95% accuracy",
		Type:        typing.ChallengeCode,
		Target:      95,
		Reward:      "Code Master Badge",
	},
	{
		ID:          "weekly-2",
		Title:       "Words of Wisdom",
		Description: "Type famous passages at 60 WPM or better",
		Type:        typing.ChallengeSpeed,
		Target:      60,
		Reward:      "15 XP Bonus",
	},
	{
		ID:          "weekly-3",
		Title:       "Surgeon's Hands",
		Description: "Type symbol-heavy text with 99% accuracy",
		Type:        typing.ChallengePrecision,
		Target:      99,
		Reward:      "Precision Trophy",
	},
}

// Catalog returns a copy of the built-in challenge set.
func Catalog() []typing.Challenge {
	out := make([]typing.Challenge, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a challenge by ID.
func Lookup(id string) (typing.Challenge, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return typing.Challenge{}, false
}
