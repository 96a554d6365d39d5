package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/challenges"
	"github.com/typerush/typerush/internal/screen"
	sessionscreen "github.com/typerush/typerush/internal/screens/session"
	"github.com/typerush/typerush/internal/store"
	"github.com/typerush/typerush/internal/textgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a typing session right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		challengeID, _ := cmd.Flags().GetString("challenge")
		topic, _ := cmd.Flags().GetString("topic")

		// Generated practice needs the text before the TUI starts.
		var generated string
		if topic != "" {
			text, err := generateParagraph(cmd.Context(), topic)
			if err != nil {
				return fmt.Errorf("generate practice text: %w", err)
			}
			generated = text
		}

		return runApp(cmd, func(deps sessionscreen.Deps) screen.Screen {
			params := sessionscreen.Params{DurationSec: duration}

			switch {
			case challengeID != "":
				c, ok := challenges.Lookup(challengeID)
				if !ok {
					return sessionscreen.NewSetup(deps, deps.Settings.Duration)
				}
				params.Challenge = &c
				params.Mode = store.ModeChallenge
				params.Text = deps.Challenges.SessionText(&c)
			case generated != "":
				params.Mode = store.ModeGenerated
				params.Text = generated
			default:
				if duration == 0 {
					return sessionscreen.NewSetup(deps, deps.Settings.Duration)
				}
			}

			return sessionscreen.New(deps, params)
		})
	},
}

func init() {
	playCmd.Flags().Int("duration", 0, "Session duration in seconds (15, 30 or 60)")
	playCmd.Flags().String("challenge", "", "Challenge ID to attempt")
	playCmd.Flags().String("topic", "", "Generate a practice paragraph about this topic")
}

// generateParagraph asks the configured LLM provider for practice text.
func generateParagraph(ctx context.Context, topic string) (string, error) {
	cfg, ok := textgen.DiscoverConfig()
	if !ok {
		return "", fmt.Errorf("no text generation provider configured (set ANTHROPIC_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY)")
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	provider, err := textgen.NewProvider(ctx, cfg)
	if err != nil {
		return "", err
	}

	p, err := provider.Paragraph(ctx, textgen.Request{Topic: topic})
	if err != nil {
		return "", err
	}
	return p.Text, nil
}
