package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/activityboard/internal/client"
	"github.com/hay-kot/activityboard/internal/core/activity"
	"github.com/hay-kot/activityboard/internal/store/jsonfile"
)

func newTestServer(t *testing.T, seed []activity.Activity) (*client.Client, string) {
	t.Helper()

	store := jsonfile.New("")
	require.NoError(t, store.Seed(context.Background(), seed))

	srv := httptest.NewServer(New(store, zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)

	return client.New(srv.URL), srv.URL
}

func TestServer_ListActivities(t *testing.T) {
	c, _ := newTestServer(t, activity.DefaultSeed())

	got, err := c.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 9)
	assert.Equal(t, "Chess Club", got[0].Name)
	assert.Equal(t, "Science Club", got[8].Name)
}

func TestServer_EmptyListIsArray(t *testing.T) {
	_, url := newTestServer(t, nil)

	resp, err := http.Get(url + "/activities")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestServer_Signup(t *testing.T) {
	ctx := context.Background()
	seed := []activity.Activity{
		{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.com"}},
		{Name: "Full Club", MaxParticipants: 1, Participants: []string{"a@x.com"}},
		{Name: "Arts/Crafts", MaxParticipants: 5},
	}

	tests := []struct {
		name       string
		activity   string
		email      string
		wantMsg    string
		wantStatus int
		wantDetail string
	}{
		{
			name:     "signs up",
			activity: "Chess Club",
			email:    "foo@bar.com",
			wantMsg:  "Student foo@bar.com signed up for Chess Club",
		},
		{
			name:     "name with slash",
			activity: "Arts/Crafts",
			email:    "foo@bar.com",
			wantMsg:  "Student foo@bar.com signed up for Arts/Crafts",
		},
		{
			name:       "unknown activity",
			activity:   "Nope",
			email:      "foo@bar.com",
			wantStatus: http.StatusNotFound,
			wantDetail: "Activity not found",
		},
		{
			name:       "already signed up",
			activity:   "Chess Club",
			email:      "a@x.com",
			wantStatus: http.StatusBadRequest,
			wantDetail: "Student already signed up",
		},
		{
			name:       "full",
			activity:   "Full Club",
			email:      "new@x.com",
			wantStatus: http.StatusBadRequest,
			wantDetail: "Activity is full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, seed)

			msg, err := c.Signup(ctx, tt.activity, tt.email)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.wantMsg, msg)
				return
			}

			se, ok := client.AsStatusError(err)
			require.True(t, ok, "expected StatusError, got %v", err)
			assert.Equal(t, tt.wantStatus, se.StatusCode)
			assert.Equal(t, tt.wantDetail, se.Detail)
		})
	}
}

func TestServer_SignupMissingEmail(t *testing.T) {
	_, url := newTestServer(t, activity.DefaultSeed())

	resp, err := http.Post(url+"/activities/Chess%20Club/signup", "", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServer_Unregister(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestServer(t, []activity.Activity{
		{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.com"}},
	})

	require.NoError(t, c.Unregister(ctx, "Chess Club", "a@x.com"))

	got, err := c.ListActivities(ctx)
	require.NoError(t, err)
	assert.Empty(t, got[0].Participants)

	err = c.Unregister(ctx, "Chess Club", "a@x.com")
	se, ok := client.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)

	err = c.Unregister(ctx, "Nope", "a@x.com")
	se, ok = client.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}
