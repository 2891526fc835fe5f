package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/storage"
)

func newTestTracker(t *testing.T) (*Tracker, storage.Provider) {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "bloom.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	tr, err := Open(store)
	if err != nil {
		t.Fatalf("failed to open tracker: %v", err)
	}
	return tr, store
}

func testHabit(name string) models.Habit {
	return models.Habit{
		ID:          models.NewID(),
		Name:        name,
		Emoji:       "🌱",
		Color:       "#ec4899",
		Personality: models.PersonalitySoft,
		Frequency:   models.FrequencyDaily,
		GoalType:    models.GoalCount,
		GoalTarget:  1,
		Unit:        "times",
		CreatedAt:   models.NowMillis(time.Now()),
	}
}

func TestAddHabit_AppendsInInsertionOrder(t *testing.T) {
	tr, _ := newTestTracker(t)

	for _, name := range []string{"Read", "Run", "Write"} {
		added, err := tr.AddHabit(testHabit(name))
		if err != nil {
			t.Fatalf("AddHabit failed: %v", err)
		}
		if !added {
			t.Fatalf("expected habit %q to be added", name)
		}
	}

	habits := tr.Habits()
	if len(habits) != 3 {
		t.Fatalf("expected 3 habits, got %d", len(habits))
	}
	for i, want := range []string{"Read", "Run", "Write"} {
		if habits[i].Name != want {
			t.Errorf("habit %d = %q, want %q", i, habits[i].Name, want)
		}
	}
}

func TestAddHabit_RejectsInvalidInput(t *testing.T) {
	tr, _ := newTestTracker(t)

	empty := testHabit("  ")
	if added, err := tr.AddHabit(empty); err != nil || added {
		t.Errorf("expected blank-name habit to be declined, added=%v err=%v", added, err)
	}

	zeroTarget := testHabit("Meditate")
	zeroTarget.GoalTarget = 0
	if added, err := tr.AddHabit(zeroTarget); err != nil || added {
		t.Errorf("expected zero-target habit to be declined, added=%v err=%v", added, err)
	}

	if len(tr.Habits()) != 0 {
		t.Errorf("expected no habits after rejected adds, got %d", len(tr.Habits()))
	}
}

func TestUpdateHabit_UnknownIDIsNoOp(t *testing.T) {
	tr, _ := newTestTracker(t)

	h := testHabit("Read")
	if _, err := tr.AddHabit(h); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	ghost := testHabit("Ghost")
	if err := tr.UpdateHabit(ghost); err != nil {
		t.Fatalf("UpdateHabit on unknown ID should be a no-op, got %v", err)
	}
	if len(tr.Habits()) != 1 || tr.Habits()[0].Name != "Read" {
		t.Errorf("collection changed by a no-op update")
	}

	h.Name = "Read more"
	if err := tr.UpdateHabit(h); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}
	if got, _ := tr.Habit(h.ID); got.Name != "Read more" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
}

func TestDeleteHabit_CascadesLogs(t *testing.T) {
	tr, _ := newTestTracker(t)

	read := testHabit("Read")
	run := testHabit("Run")
	if _, err := tr.AddHabit(read); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddHabit(run); err != nil {
		t.Fatal(err)
	}

	for _, day := range []string{"2025-08-28", "2025-08-29", "2025-08-30"} {
		if err := tr.ToggleHabitCompletion(read.ID, 1, day); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
	}
	if err := tr.ToggleHabitCompletion(run.ID, 1, "2025-08-30"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if err := tr.DeleteHabit(read.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	if _, ok := tr.Habit(read.ID); ok {
		t.Error("habit still present after delete")
	}
	for _, l := range tr.Logs() {
		if l.HabitID == read.ID {
			t.Errorf("log %s still references deleted habit", l.ID)
		}
	}
	if len(tr.LogsFor(run.ID)) != 1 {
		t.Errorf("unrelated habit's logs were disturbed")
	}
}

func TestToggleHabitCompletion_ToggleParity(t *testing.T) {
	tr, _ := newTestTracker(t)

	h := testHabit("Read")
	if _, err := tr.AddHabit(h); err != nil {
		t.Fatal(err)
	}

	today := "2025-08-30"
	if err := tr.ToggleHabitCompletion(h.ID, 2, today); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}

	log, ok := tr.LogFor(h.ID, today)
	if !ok {
		t.Fatal("expected a log after the first toggle")
	}
	if !log.Completed || log.Value != 2 {
		t.Errorf("expected completed log with value 2, got %+v", log)
	}

	if err := tr.ToggleHabitCompletion(h.ID, 99, today); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}

	log, ok = tr.LogFor(h.ID, today)
	if !ok {
		t.Fatal("log disappeared after second toggle")
	}
	if log.Completed {
		t.Error("expected toggle parity: two toggles should end incomplete")
	}
	if log.Value != 2 {
		t.Errorf("toggling must not rewrite the value, got %g", log.Value)
	}
	if len(tr.LogsFor(h.ID)) != 1 {
		t.Errorf("expected exactly one log row for the day, got %d", len(tr.LogsFor(h.ID)))
	}
}

func TestAddTodo_TrimsAndPrepends(t *testing.T) {
	tr, _ := newTestTracker(t)
	now := time.Now()

	if added, err := tr.AddTodo("", now); err != nil || added {
		t.Errorf("expected empty todo to be declined, added=%v err=%v", added, err)
	}
	if added, err := tr.AddTodo("   ", now); err != nil || added {
		t.Errorf("expected whitespace todo to be declined, added=%v err=%v", added, err)
	}
	if len(tr.Todos()) != 0 {
		t.Fatalf("expected no todos, got %d", len(tr.Todos()))
	}

	if _, err := tr.AddTodo("  water plants  ", now); err != nil {
		t.Fatalf("AddTodo failed: %v", err)
	}
	if _, err := tr.AddTodo("buy soil", now); err != nil {
		t.Fatalf("AddTodo failed: %v", err)
	}

	todos := tr.Todos()
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(todos))
	}
	if todos[0].Text != "buy soil" {
		t.Errorf("expected most-recent-first ordering, got %q first", todos[0].Text)
	}
	if todos[1].Text != "water plants" {
		t.Errorf("expected trimmed text %q, got %q", "water plants", todos[1].Text)
	}
}

func TestToggleAndDeleteTodo_UnknownIDIsNoOp(t *testing.T) {
	tr, _ := newTestTracker(t)

	if _, err := tr.AddTodo("water plants", time.Now()); err != nil {
		t.Fatal(err)
	}

	if err := tr.ToggleTodo("nope"); err != nil {
		t.Errorf("ToggleTodo on unknown ID should be a no-op, got %v", err)
	}
	if err := tr.DeleteTodo("nope"); err != nil {
		t.Errorf("DeleteTodo on unknown ID should be a no-op, got %v", err)
	}
	if len(tr.Todos()) != 1 {
		t.Errorf("collection changed by no-op operations")
	}

	id := tr.Todos()[0].ID
	if err := tr.ToggleTodo(id); err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}
	if !tr.Todos()[0].Completed {
		t.Error("expected todo to be completed after toggle")
	}

	if err := tr.DeleteTodo(id); err != nil {
		t.Fatalf("DeleteTodo failed: %v", err)
	}
	if len(tr.Todos()) != 0 {
		t.Error("expected todo to be removed")
	}
}

func TestMutations_PersistAcrossReopen(t *testing.T) {
	tr, store := newTestTracker(t)

	h := testHabit("Read")
	if _, err := tr.AddHabit(h); err != nil {
		t.Fatal(err)
	}
	if err := tr.ToggleHabitCompletion(h.ID, 1, "2025-08-30"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddTodo("water plants", time.Now()); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(store)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	if len(reopened.Habits()) != 1 || reopened.Habits()[0].Name != "Read" {
		t.Errorf("habits did not survive reopen: %+v", reopened.Habits())
	}
	if len(reopened.Logs()) != 1 || !reopened.Logs()[0].Completed {
		t.Errorf("logs did not survive reopen: %+v", reopened.Logs())
	}
	if len(reopened.Todos()) != 1 || reopened.Todos()[0].Text != "water plants" {
		t.Errorf("todos did not survive reopen: %+v", reopened.Todos())
	}
}

func TestClearAll_EmptiesEverything(t *testing.T) {
	tr, store := newTestTracker(t)

	h := testHabit("Read")
	if _, err := tr.AddHabit(h); err != nil {
		t.Fatal(err)
	}
	if err := tr.ToggleHabitCompletion(h.ID, 1, "2025-08-30"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddTodo("water plants", time.Now()); err != nil {
		t.Fatal(err)
	}

	if err := tr.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	if len(tr.Habits()) != 0 || len(tr.Logs()) != 0 || len(tr.Todos()) != 0 {
		t.Error("expected all collections to be empty")
	}

	reopened, err := Open(store)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if len(reopened.Habits()) != 0 || len(reopened.Logs()) != 0 || len(reopened.Todos()) != 0 {
		t.Error("expected durable copy to be empty after ClearAll")
	}
}

func TestTotalCompleted_CountsAcrossHabits(t *testing.T) {
	tr, _ := newTestTracker(t)

	read := testHabit("Read")
	run := testHabit("Run")
	if _, err := tr.AddHabit(read); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddHabit(run); err != nil {
		t.Fatal(err)
	}

	if err := tr.ToggleHabitCompletion(read.ID, 1, "2025-08-29"); err != nil {
		t.Fatal(err)
	}
	if err := tr.ToggleHabitCompletion(read.ID, 1, "2025-08-30"); err != nil {
		t.Fatal(err)
	}
	if err := tr.ToggleHabitCompletion(run.ID, 1, "2025-08-30"); err != nil {
		t.Fatal(err)
	}
	// Toggle one back off.
	if err := tr.ToggleHabitCompletion(run.ID, 1, "2025-08-30"); err != nil {
		t.Fatal(err)
	}

	if got := tr.TotalCompleted(); got != 2 {
		t.Errorf("expected 2 completions across habits, got %d", got)
	}
}
