package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/activityboard/internal/board"
	"github.com/hay-kot/activityboard/internal/client"
	"github.com/hay-kot/activityboard/internal/core/activity"
	"github.com/hay-kot/activityboard/internal/core/config"
	"github.com/hay-kot/activityboard/internal/printer"
	"github.com/hay-kot/activityboard/internal/server"
	"github.com/hay-kot/activityboard/internal/store/jsonfile"
)

type testApp struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	store  *jsonfile.Store
	flags  *Flags
}

// newTestApp wires the commands to an in-memory stub service.
func newTestApp(t *testing.T, seed []activity.Activity) *testApp {
	t.Helper()

	store := jsonfile.New("")
	require.NoError(t, store.Seed(context.Background(), seed))

	srv := httptest.NewServer(server.New(store, zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.ServerURL = srv.URL
	c := client.New(srv.URL)

	return &testApp{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		store:  store,
		flags: &Flags{
			Config:     &cfg,
			Client:     c,
			Controller: board.New(c, zerolog.Nop()),
		},
	}
}

func (a *testApp) run(args ...string) error {
	app := &cli.Command{
		Name:      "board",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		// keep cli.Exit from ending the test binary
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = NewLsCmd(a.flags).Register(app)
	app = NewShowCmd(a.flags).Register(app)
	app = NewSignupCmd(a.flags).Register(app)
	app = NewUnregisterCmd(a.flags).Register(app)

	ctx := printer.NewContext(context.Background(), printer.New(a.stderr))
	return app.Run(ctx, append([]string{"board"}, args...))
}

func fixture() []activity.Activity {
	return []activity.Activity{
		{Name: "Chess Club", Description: "Strategy", Schedule: "Fridays", MaxParticipants: 2, Participants: []string{"a@x.com"}},
		{Name: "Math Club", Description: "Numbers", Schedule: "Tuesdays", MaxParticipants: 1, Participants: []string{"b@x.com"}},
		{Name: "Art Studio", Description: "Paint", Schedule: "Mondays", MaxParticipants: 10},
	}
}

func TestLsCmd_Table(t *testing.T) {
	app := newTestApp(t, fixture())

	require.NoError(t, app.run("ls"))

	lines := strings.Split(strings.TrimSpace(app.stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"NAME", "SPOTS", "SCHEDULE"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[1], "Chess Club")
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[2], "FULL")
	assert.Contains(t, lines[2], "Tuesdays")
	assert.Contains(t, lines[3], "10")
}

func TestLsCmd_FilterJSON(t *testing.T) {
	app := newTestApp(t, fixture())

	require.NoError(t, app.run("ls", "--filter", "*Club", "--json"))

	var got []activity.Activity
	require.NoError(t, json.Unmarshal(app.stdout.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Chess Club", got[0].Name)
	assert.Equal(t, "Math Club", got[1].Name)
}

func TestLsCmd_InvalidFilter(t *testing.T) {
	app := newTestApp(t, fixture())

	err := app.run("ls", "--filter", "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}

func TestShowCmd_Raw(t *testing.T) {
	app := newTestApp(t, fixture())

	require.NoError(t, app.run("show", "--raw", "Math", "Club"))

	out := app.stdout.String()
	assert.Contains(t, out, "# Math Club (FULL)")
	assert.Contains(t, out, "**Availability:** 0 spots left")
	assert.Contains(t, out, "- b@x.com")
}

func TestShowCmd_NotFound(t *testing.T) {
	app := newTestApp(t, fixture())

	err := app.run("show", "Drama")
	require.ErrorIs(t, err, activity.ErrNotFound)
}

func TestSignupCmd(t *testing.T) {
	app := newTestApp(t, fixture())

	require.NoError(t, app.run("signup", "--email", "new@x.com", "Chess Club"))
	assert.Contains(t, app.stderr.String(), "Student new@x.com signed up for Chess Club")

	got, err := app.store.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "new@x.com"}, got.Participants)
}

func TestSignupCmd_RejectedPrintsDetail(t *testing.T) {
	app := newTestApp(t, fixture())

	err := app.run("signup", "--email", "new@x.com", "Math Club")
	require.Error(t, err)
	assert.Contains(t, app.stderr.String(), "Activity is full")
}

func TestUnregisterCmd(t *testing.T) {
	app := newTestApp(t, fixture())

	require.NoError(t, app.run("unregister", "--email", "a@x.com", "Chess Club"))
	assert.Contains(t, app.stderr.String(), board.UnregisteredText)

	got, err := app.store.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Empty(t, got.Participants)

	err = app.run("unregister", "--email", "a@x.com", "Chess Club")
	require.Error(t, err)
	assert.Contains(t, app.stderr.String(), board.UnregisterFailedText)
}
