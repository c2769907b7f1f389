package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_SpotsLeft(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		people   []string
		want     int
		wantFull bool
	}{
		{"empty", 2, nil, 2, false},
		{"one left", 2, []string{"a@x.com"}, 1, false},
		{"exactly full", 2, []string{"a@x.com", "b@x.com"}, 0, true},
		{"over capacity", 1, []string{"a@x.com", "b@x.com"}, -1, true},
		{"zero capacity", 0, nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Activity{MaxParticipants: tt.max, Participants: tt.people}
			assert.Equal(t, tt.want, a.SpotsLeft())
			assert.Equal(t, tt.wantFull, a.IsFull())
		})
	}
}

func TestActivity_AddParticipant(t *testing.T) {
	a := Activity{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.com"}}

	require.ErrorIs(t, a.AddParticipant("a@x.com"), ErrAlreadySignedUp)
	require.NoError(t, a.AddParticipant("b@x.com"))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, a.Participants)

	// full wins over duplicate
	require.ErrorIs(t, a.AddParticipant("a@x.com"), ErrFull)
	require.ErrorIs(t, a.AddParticipant("c@x.com"), ErrFull)
}

func TestActivity_RemoveParticipant(t *testing.T) {
	a := Activity{MaxParticipants: 3, Participants: []string{"a@x.com", "b@x.com", "c@x.com"}}

	require.NoError(t, a.RemoveParticipant("b@x.com"))
	assert.Equal(t, []string{"a@x.com", "c@x.com"}, a.Participants)
	require.ErrorIs(t, a.RemoveParticipant("b@x.com"), ErrNotSignedUp)
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	require.Len(t, seed, 9)

	seen := map[string]bool{}
	for _, a := range seed {
		assert.False(t, seen[a.Name], "duplicate name %q", a.Name)
		seen[a.Name] = true
		assert.False(t, a.IsFull(), "%s should start with open spots", a.Name)
	}
}
