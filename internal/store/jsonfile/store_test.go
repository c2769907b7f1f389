package jsonfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hay-kot/activityboard/internal/core/activity"
)

func testActivities() []activity.Activity {
	return []activity.Activity{
		{Name: "Chess Club", Description: "d", Schedule: "s", MaxParticipants: 2, Participants: []string{"a@x.com"}},
		{Name: "Art Club", Description: "d", Schedule: "s", MaxParticipants: 1},
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	stores := map[string]func(t *testing.T) *Store{
		"file":   func(t *testing.T) *Store { return New(filepath.Join(t.TempDir(), "activities.json")) },
		"memory": func(t *testing.T) *Store { return New("") },
	}

	for kind, newStore := range stores {
		t.Run(kind, func(t *testing.T) {
			t.Run("empty list", func(t *testing.T) {
				store := newStore(t)

				got, err := store.List(ctx)
				if err != nil {
					t.Fatalf("List: %v", err)
				}
				if len(got) != 0 {
					t.Errorf("got %d activities, want 0", len(got))
				}
			})

			t.Run("seed and get", func(t *testing.T) {
				store := newStore(t)

				if err := store.Seed(ctx, testActivities()); err != nil {
					t.Fatalf("Seed: %v", err)
				}

				got, err := store.Get(ctx, "Chess Club")
				if err != nil {
					t.Fatalf("Get: %v", err)
				}
				if got.MaxParticipants != 2 || len(got.Participants) != 1 {
					t.Errorf("got %+v", got)
				}
			})

			t.Run("seed keeps existing data", func(t *testing.T) {
				store := newStore(t)

				if err := store.Seed(ctx, testActivities()); err != nil {
					t.Fatalf("Seed: %v", err)
				}
				if err := store.Seed(ctx, activity.DefaultSeed()); err != nil {
					t.Fatalf("Seed again: %v", err)
				}

				got, err := store.List(ctx)
				if err != nil {
					t.Fatalf("List: %v", err)
				}
				if len(got) != 2 {
					t.Errorf("got %d activities, want 2", len(got))
				}
				if got[0].Name != "Chess Club" || got[1].Name != "Art Club" {
					t.Errorf("order not preserved: %+v", got)
				}
			})

			t.Run("get not found", func(t *testing.T) {
				store := newStore(t)

				_, err := store.Get(ctx, "nonexistent")
				if !errors.Is(err, activity.ErrNotFound) {
					t.Errorf("got %v, want ErrNotFound", err)
				}
			})

			t.Run("update saves on success", func(t *testing.T) {
				store := newStore(t)
				if err := store.Seed(ctx, testActivities()); err != nil {
					t.Fatalf("Seed: %v", err)
				}

				_, err := store.Update(ctx, "Chess Club", func(a *activity.Activity) error {
					return a.AddParticipant("b@x.com")
				})
				if err != nil {
					t.Fatalf("Update: %v", err)
				}

				got, _ := store.Get(ctx, "Chess Club")
				if len(got.Participants) != 2 {
					t.Errorf("got participants %v, want 2", got.Participants)
				}
			})

			t.Run("update discards on error", func(t *testing.T) {
				store := newStore(t)
				if err := store.Seed(ctx, testActivities()); err != nil {
					t.Fatalf("Seed: %v", err)
				}

				_, err := store.Update(ctx, "Chess Club", func(a *activity.Activity) error {
					a.Participants = append(a.Participants, "ghost@x.com")
					return activity.ErrFull
				})
				if !errors.Is(err, activity.ErrFull) {
					t.Fatalf("got %v, want ErrFull", err)
				}

				got, _ := store.Get(ctx, "Chess Club")
				if len(got.Participants) != 1 {
					t.Errorf("got participants %v, want unchanged", got.Participants)
				}
			})

			t.Run("update not found", func(t *testing.T) {
				store := newStore(t)

				_, err := store.Update(ctx, "nope", func(*activity.Activity) error { return nil })
				if !errors.Is(err, activity.ErrNotFound) {
					t.Errorf("got %v, want ErrNotFound", err)
				}
			})
		})
	}
}

func TestStore_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "activities.json")

	if err := New(path).Seed(ctx, testActivities()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	got, err := New(path).List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d activities after reopen, want 2", len(got))
	}
}
