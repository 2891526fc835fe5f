// Package advisor generates short encouragement text for habits using the
// Gemini API. Failures never escape this package: every call degrades to a
// fixed fallback string, so callers can render the result directly.
package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/stats"
)

const defaultModel = "gemini-3-flash-preview"

// Fallbacks returned when a request fails or the model answers with an
// empty response.
const (
	FallbackMotivationError = "Every small step counts towards your blooming future!"
	FallbackMotivationEmpty = "You're doing amazing, keep growing!"
	FallbackSummaryError    = "You've made progress this week! Every habit is a seed for tomorrow."
	FallbackSummaryEmpty    = "Your garden is growing beautifully. Keep tending to your habits!"
	FallbackNudgeError      = "Thinking of you! Your habits miss you. 🌸"
	FallbackNudgeEmpty      = "Missed you in the garden today! Let's plant a new seed tomorrow? 🌷"
)

// Client talks to the text-generation service.
type Client struct {
	api *geminiAPI
}

// NewFromEnv builds a client configured from the environment. A .env file
// in the working directory is honored when present. Without GEMINI_API_KEY
// the client stays usable and every call returns its fallback.
func NewFromEnv() *Client {
	_ = godotenv.Load()

	model := os.Getenv("BLOOM_AI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return New(os.Getenv("GEMINI_API_KEY"), model)
}

// New builds a client with an explicit key and model.
func New(apiKey, model string) *Client {
	return &Client{api: newGeminiAPI(apiKey, model)}
}

// Available reports whether an API key is configured. When false, calls
// skip the network entirely and return fallbacks.
func (c *Client) Available() bool {
	return c.api.key != ""
}

// Motivation returns a one-sentence encouragement for a habit, toned by
// its personality.
func (c *Client) Motivation(ctx context.Context, habit models.Habit, streak int, logs []models.HabitLog) string {
	recent := logs
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}
	var activity strings.Builder
	for _, l := range recent {
		if l.Completed {
			activity.WriteString("✅")
		} else {
			activity.WriteString("❌")
		}
	}

	prompt := fmt.Sprintf(`Habit: %s (%s)
Personality: %s
Current Streak: %d days
Recent activity: %s

Generate a short, one-sentence motivational message for this user.
If personality is 'soft', be very gentle and nurturing.
If 'strict', be high-energy and a bit pushy.
If 'funny', use a pun or a lighthearted joke.
The tone should always be encouraging overall. Use pink/floral/growth metaphors if possible.`,
		habit.Name, habit.Emoji, habit.Personality, streak, activity.String())

	text, err := c.api.generate(ctx, prompt, &generationConfig{Temperature: 0.8, TopP: 0.95})
	if err != nil {
		return FallbackMotivationError
	}
	if text == "" {
		return FallbackMotivationEmpty
	}
	return text
}

// WeeklySummary returns a short multi-sentence review of all habits,
// derived from per-habit completion ratios.
func (c *Client) WeeklySummary(ctx context.Context, habits []models.Habit, logs []models.HabitLog) string {
	parts := make([]string, 0, len(habits))
	for _, h := range habits {
		total, completed := 0, 0
		for _, l := range logs {
			if l.HabitID != h.ID {
				continue
			}
			total++
			if l.Completed {
				completed++
			}
		}
		parts = append(parts, fmt.Sprintf("%s: %d/%d completions", h.Name, completed, total))
	}

	prompt := fmt.Sprintf(`User's Weekly Habit Data: %s

Provide a concise weekly summary (3-4 sentences).
1. Identify a success pattern.
2. Gently point out a problem area if any.
3. Suggest one small, actionable improvement.
Use a calming, "Zen gardener" tone. Use emojis like 🌸, 🌿, ✨.`,
		strings.Join(parts, ", "))

	text, err := c.api.generate(ctx, prompt, nil)
	if err != nil {
		return FallbackSummaryError
	}
	if text == "" {
		return FallbackSummaryEmpty
	}
	return text
}

// DropOffNudge returns a short get-back-on-track message when the habit's
// recent history warrants one. The ok result is false when no nudge is
// due, in which case no network call is made.
func (c *Client) DropOffNudge(ctx context.Context, habit models.Habit, logs []models.HabitLog) (string, bool) {
	if !stats.ShouldNudge(logs) {
		return "", false
	}

	recent := logs
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	missed := 0
	for _, l := range recent {
		if !l.Completed {
			missed++
		}
	}

	tone := "Funny friend"
	switch habit.Personality {
	case models.PersonalitySoft:
		tone = "Warm hug"
	case models.PersonalityStrict:
		tone = "Coach pep talk"
	}

	prompt := fmt.Sprintf(`The user has missed %d out of the last 5 days for the habit: %s.
Generate a gentle "nudge" message to help them get back on track without making them feel guilty.
Tone: %s.
Keep it under 100 characters.`,
		missed, habit.Name, tone)

	text, err := c.api.generate(ctx, prompt, nil)
	if err != nil {
		return FallbackNudgeError, true
	}
	if text == "" {
		return FallbackNudgeEmpty, true
	}
	return text, true
}
