package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/activityboard/internal/core/activity"
	"github.com/hay-kot/activityboard/internal/core/config"
)

type mockLister struct {
	activities []activity.Activity
	err        error
}

func (m *mockLister) ListActivities(_ context.Context) ([]activity.Activity, error) {
	return m.activities, m.err
}

func TestServiceCheck_Unreachable(t *testing.T) {
	check := NewServiceCheck(&mockLister{err: errors.New("connection refused")}, "http://localhost:8000")
	result := check.Run(context.Background())

	assert.Equal(t, "Activity Service", result.Name)
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusFail, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Detail, "connection refused")
}

func TestServiceCheck_Counts(t *testing.T) {
	tests := []struct {
		name       string
		activities []activity.Activity
		want       Status
		detail     string
	}{
		{
			name:       "empty listing",
			activities: nil,
			want:       StatusWarn,
			detail:     "service lists no activities",
		},
		{
			name: "some open",
			activities: []activity.Activity{
				{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.com"}},
				{Name: "Math Club", MaxParticipants: 1, Participants: []string{"b@x.com"}},
			},
			want:   StatusPass,
			detail: "2 listed, 1 open for signup",
		},
		{
			name: "all full",
			activities: []activity.Activity{
				{Name: "Math Club", MaxParticipants: 1, Participants: []string{"b@x.com"}},
			},
			want:   StatusWarn,
			detail: "1 listed, 0 open for signup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewServiceCheck(&mockLister{activities: tt.activities}, "http://svc").Run(context.Background())

			require.Len(t, result.Items, 2)
			assert.Equal(t, StatusPass, result.Items[0].Status)
			assert.Equal(t, tt.want, result.Items[1].Status)
			assert.Equal(t, tt.detail, result.Items[1].Detail)
		})
	}
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://localhost:8000\n"), 0o644))

	cfg := config.DefaultConfig()
	result := NewConfigCheck(&cfg, path).Run(context.Background())
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusPass, result.Items[0].Status)

	bad := config.DefaultConfig()
	bad.ServerURL = "ftp://example.com"
	result = NewConfigCheck(&bad, path).Run(context.Background())
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusFail, result.Items[0].Status)
	assert.Equal(t, "server_url", result.Items[0].Label)

	result = NewConfigCheck(nil, path).Run(context.Background())
	assert.Equal(t, StatusFail, result.Items[0].Status)
}

func TestRunAllAndSummary(t *testing.T) {
	checks := []Check{
		NewServiceCheck(&mockLister{err: errors.New("down")}, "http://svc"),
		NewServiceCheck(&mockLister{activities: []activity.Activity{{Name: "A", MaxParticipants: 1}}}, "http://svc"),
	}

	results := RunAll(context.Background(), checks)
	require.Len(t, results, 2)
	assert.Equal(t, "fail", results[0].Items[0].StatusStr)

	passed, warned, failed := Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 0, warned)
	assert.Equal(t, 1, failed)
}
