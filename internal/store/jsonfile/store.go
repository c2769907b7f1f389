// Package jsonfile provides a JSON file-based activity store.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/hay-kot/activityboard/internal/core/activity"
)

// ActivityFile is the root JSON structure stored on disk.
type ActivityFile struct {
	Activities []activity.Activity `json:"activities"`
}

// Store implements activity.Store using a JSON file for persistence. With an
// empty path it keeps the data in memory only.
type Store struct {
	path string
	mu   sync.RWMutex
	mem  ActivityFile
}

// New creates a new JSON file store at the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// List returns all activities.
func (s *Store) List(ctx context.Context) ([]activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}

	return file.Activities, nil
}

// Get returns an activity by name. Returns ErrNotFound if not found.
func (s *Store) Get(ctx context.Context, name string) (activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return activity.Activity{}, err
	}

	for _, a := range file.Activities {
		if a.Name == name {
			return a, nil
		}
	}

	return activity.Activity{}, activity.ErrNotFound
}

// Update applies fn to the named activity and saves it when fn succeeds.
func (s *Store) Update(ctx context.Context, name string, fn func(*activity.Activity) error) (activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return activity.Activity{}, err
	}

	for i := range file.Activities {
		if file.Activities[i].Name != name {
			continue
		}

		a := file.Activities[i]
		a.Participants = slices.Clone(a.Participants)
		if err := fn(&a); err != nil {
			return activity.Activity{}, err
		}

		file.Activities[i] = a
		if err := s.save(file); err != nil {
			return activity.Activity{}, err
		}
		return a, nil
	}

	return activity.Activity{}, activity.ErrNotFound
}

// Seed stores activities if the store holds none yet.
func (s *Store) Seed(ctx context.Context, activities []activity.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}
	if len(file.Activities) > 0 {
		return nil
	}

	return s.save(ActivityFile{Activities: slices.Clone(activities)})
}

// load reads the activity file from disk.
// Returns empty ActivityFile if file doesn't exist.
func (s *Store) load() (ActivityFile, error) {
	if s.path == "" {
		return ActivityFile{Activities: cloneAll(s.mem.Activities)}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ActivityFile{}, nil
		}
		return ActivityFile{}, fmt.Errorf("read activities file: %w", err)
	}

	if len(data) == 0 {
		return ActivityFile{}, nil
	}

	var file ActivityFile
	if err := json.Unmarshal(data, &file); err != nil {
		return ActivityFile{}, fmt.Errorf("parse activities file: %w", err)
	}

	return file, nil
}

// save writes the activity file to disk atomically.
func (s *Store) save(file ActivityFile) error {
	if s.path == "" {
		s.mem = ActivityFile{Activities: cloneAll(file.Activities)}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create activities directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal activities: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// cloneAll deep-copies activities so callers never share participant slices
// with the in-memory copy.
func cloneAll(in []activity.Activity) []activity.Activity {
	if in == nil {
		return nil
	}
	out := make([]activity.Activity, len(in))
	for i, a := range in {
		a.Participants = slices.Clone(a.Participants)
		out[i] = a
	}
	return out
}
