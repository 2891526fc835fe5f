package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kavocado/bloom/internal/models"
)

// newTestClient points a configured client at a stub generateContent
// endpoint.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key", "test-model")
	c.api.baseURL = srv.URL
	return c
}

func respondWith(t *testing.T, text string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []part{{Text: text}}}})
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("failed to encode stub response: %v", err)
		}
	}
}

func sampleHabit() models.Habit {
	return models.Habit{
		ID:          "h1",
		Name:        "Read",
		Emoji:       "📚",
		Personality: models.PersonalitySoft,
	}
}

func logRun(completed ...bool) []models.HabitLog {
	logs := make([]models.HabitLog, len(completed))
	for i, done := range completed {
		logs[i] = models.HabitLog{ID: "l", HabitID: "h1", Completed: done}
	}
	return logs
}

func TestAvailable(t *testing.T) {
	if New("", defaultModel).Available() {
		t.Error("client without key must report unavailable")
	}
	if !New("key", defaultModel).Available() {
		t.Error("client with key must report available")
	}
}

func TestMotivation_ReturnsModelText(t *testing.T) {
	c := newTestClient(t, respondWith(t, "  Keep blooming! 🌸  "))

	got := c.Motivation(context.Background(), sampleHabit(), 3, logRun(true, true, true))
	if got != "Keep blooming! 🌸" {
		t.Errorf("Motivation = %q, want trimmed model text", got)
	}
}

func TestMotivation_PromptCarriesHabitContext(t *testing.T) {
	var prompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
			return
		}
		prompt = req.Contents[0].Parts[0].Text
		respondWith(t, "ok")(w, r)
	})

	c.Motivation(context.Background(), sampleHabit(), 3, logRun(true, false, true))

	for _, want := range []string{"Read", "soft", "Current Streak: 3", "✅❌✅"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestMotivation_FallbackOnServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	got := c.Motivation(context.Background(), sampleHabit(), 0, nil)
	if got != FallbackMotivationError {
		t.Errorf("Motivation = %q, want error fallback", got)
	}
}

func TestMotivation_FallbackOnEmptyResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(generateResponse{}); err != nil {
			t.Errorf("failed to encode stub response: %v", err)
		}
	})

	got := c.Motivation(context.Background(), sampleHabit(), 0, nil)
	if got != FallbackMotivationEmpty {
		t.Errorf("Motivation = %q, want empty fallback", got)
	}
}

func TestMotivation_NoKeySkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	c := New("", defaultModel)
	c.api.baseURL = srv.URL

	got := c.Motivation(context.Background(), sampleHabit(), 0, nil)
	if got != FallbackMotivationError {
		t.Errorf("Motivation = %q, want error fallback", got)
	}
	if called {
		t.Error("unconfigured client must not hit the network")
	}
}

func TestWeeklySummary_PromptCarriesRatios(t *testing.T) {
	var prompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
			return
		}
		prompt = req.Contents[0].Parts[0].Text
		respondWith(t, "A calm week. 🌿")(w, r)
	})

	habits := []models.Habit{{ID: "h1", Name: "Read"}, {ID: "h2", Name: "Gym"}}
	logs := []models.HabitLog{
		{HabitID: "h1", Completed: true},
		{HabitID: "h1", Completed: true},
		{HabitID: "h1", Completed: false},
		{HabitID: "h2", Completed: true},
	}

	got := c.WeeklySummary(context.Background(), habits, logs)
	if got != "A calm week. 🌿" {
		t.Errorf("WeeklySummary = %q", got)
	}
	if !strings.Contains(prompt, "Read: 2/3 completions") {
		t.Errorf("prompt missing Read ratio:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Gym: 1/1 completions") {
		t.Errorf("prompt missing Gym ratio:\n%s", prompt)
	}
}

func TestWeeklySummary_Fallbacks(t *testing.T) {
	errClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	if got := errClient.WeeklySummary(context.Background(), nil, nil); got != FallbackSummaryError {
		t.Errorf("WeeklySummary = %q, want error fallback", got)
	}

	emptyClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(generateResponse{}); err != nil {
			t.Errorf("failed to encode stub response: %v", err)
		}
	})
	if got := emptyClient.WeeklySummary(context.Background(), nil, nil); got != FallbackSummaryEmpty {
		t.Errorf("WeeklySummary = %q, want empty fallback", got)
	}
}

func TestDropOffNudge_NotWarranted(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	// Two misses in the last five days: below the threshold.
	text, ok := c.DropOffNudge(context.Background(), sampleHabit(), logRun(true, false, true, false, true))
	if ok {
		t.Errorf("expected no nudge, got %q", text)
	}
	if called {
		t.Error("no network call should happen when a nudge is not warranted")
	}
}

func TestDropOffNudge_Warranted(t *testing.T) {
	var prompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
			return
		}
		prompt = req.Contents[0].Parts[0].Text
		respondWith(t, "The garden misses you 🌷")(w, r)
	})

	text, ok := c.DropOffNudge(context.Background(), sampleHabit(), logRun(false, false, true, false, true))
	if !ok {
		t.Fatal("expected a nudge for 3 misses out of 5")
	}
	if text != "The garden misses you 🌷" {
		t.Errorf("DropOffNudge = %q", text)
	}
	if !strings.Contains(prompt, "missed 3 out of the last 5 days") {
		t.Errorf("prompt missing miss count:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Warm hug") {
		t.Errorf("prompt missing personality tone:\n%s", prompt)
	}
}

func TestDropOffNudge_FallbackOnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	text, ok := c.DropOffNudge(context.Background(), sampleHabit(), logRun(false, false, false))
	if !ok {
		t.Fatal("expected a nudge for 3 misses")
	}
	if text != FallbackNudgeError {
		t.Errorf("DropOffNudge = %q, want error fallback", text)
	}
}
