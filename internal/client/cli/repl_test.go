package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/homefinder/internal/client/navigator"
)

type fakeExec struct {
	group navigator.Group
	calls []string
	err   error
}

func (f *fakeExec) currentGroup() navigator.Group { return f.group }
func (f *fakeExec) status() string                { return "" }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) Login(ctx context.Context) error {
	f.group = navigator.GroupRenterHome
	return f.record("login")
}
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Forgot(ctx context.Context) error   { return f.record("forgot") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.group = navigator.GroupUnauthenticated
	return f.record("logout")
}
func (f *fakeExec) Explore(ctx context.Context) error         { return f.record("explore") }
func (f *fakeExec) Search(ctx context.Context) error          { return f.record("search") }
func (f *fakeExec) Show(ctx context.Context, id string) error { return f.record("show " + id) }
func (f *fakeExec) Fav(ctx context.Context, id string) error  { return f.record("fav " + id) }
func (f *fakeExec) Favorites(ctx context.Context) error       { return f.record("favorites") }
func (f *fakeExec) Properties(ctx context.Context) error      { return f.record("properties") }
func (f *fakeExec) Reservations(ctx context.Context, status string) error {
	return f.record("reservations " + status)
}
func (f *fakeExec) Profile(ctx context.Context) error { return f.record("profile") }
func (f *fakeExec) Edit(ctx context.Context) error    { return f.record("edit") }

func TestRunREPL_OnlyMountedCommandsAreReachable(t *testing.T) {
	input := rdr("explore\nlogout\nforgot\nlogin\nexplore\nshow 3\nshow\nfav 2\nproperties\nlogin\nlogout\nexit\nexplore\n")
	exec := &fakeExec{}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), exec, input, &out))

	assert.Equal(t, []string{"forgot", "login", "explore", "show 3", "fav 2", "logout"}, exec.calls)
	assert.Contains(t, out.String(), "Unknown command: explore")
	assert.Contains(t, out.String(), "Unknown command: properties")
	assert.Contains(t, out.String(), "Usage: show <id>")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_OwnerCommands(t *testing.T) {
	exec := &fakeExec{group: navigator.GroupOwnerHome}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), exec, rdr("help\nproperties\nreservations\nreservations cancelled\nfavorites\nsearch\nquit\n"), &out))

	assert.Equal(t, []string{"properties", "reservations ", "reservations cancelled"}, exec.calls)
	assert.Contains(t, out.String(), "properties    your properties")
	assert.Contains(t, out.String(), "Unknown command: favorites")
	assert.Contains(t, out.String(), "Unknown command: search")
}

func TestRunREPL_HandlerErrorsDoNotStopLoop(t *testing.T) {
	exec := &fakeExec{group: navigator.GroupRenterHome, err: errors.New("db gone")}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), exec, rdr("explore\nprofile\n"), &out))

	assert.Equal(t, []string{"explore", "profile"}, exec.calls)
	assert.Contains(t, out.String(), "Error: db gone")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runREPL(ctx, &fakeExec{}, rdr("help\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}
