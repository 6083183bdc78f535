package navigator

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/logging"
)

// SessionSource is the part of the session store the guard observes.
type SessionSource interface {
	Session() models.Session
	Subscribe(fn func(models.Session)) (unsubscribe func())
}

// Guard keeps the mounted screen group equal to Resolve(current session).
type Guard struct {
	store   SessionSource
	mounter Mounter
	log     logging.Logger

	mu          sync.Mutex
	current     Group
	started     bool
	unsubscribe func()
}

func NewGuard(store SessionSource, mounter Mounter, log logging.Logger) *Guard {
	return &Guard{store: store, mounter: mounter, log: log.With("component", "guard")}
}

// Start subscribes to the store and then mounts the initial group, decided
// from the already loaded session. It must be called after the session
// store has been loaded.
func (g *Guard) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return errors.New("guard already started")
	}

	// Changes committed after Subscribe wait on mu and are applied once the
	// initial group is mounted.
	unsubscribe := g.store.Subscribe(func(s models.Session) {
		g.onChange(ctx, s)
	})

	initial := g.resolve(ctx, g.store.Session())
	if err := g.mounter.Mount(ctx, initial); err != nil {
		unsubscribe()
		return err
	}
	g.current = initial
	g.started = true
	g.unsubscribe = unsubscribe
	return nil
}

// Current returns the mounted group.
func (g *Guard) Current() Group {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Stop detaches the guard from the store.
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	g.started = false
}

func (g *Guard) resolve(ctx context.Context, s models.Session) Group {
	next, err := Resolve(s)
	if err != nil {
		g.log.Error(ctx, "invalid session, falling back to auth screens", "error", err)
	}
	return next
}

func (g *Guard) onChange(ctx context.Context, s models.Session) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.started {
		return
	}

	next := g.resolve(ctx, s)
	if next == g.current {
		return
	}

	if !CanTransition(g.current, next) {
		g.log.Warn(ctx, "role changed without logout, passing through auth screens",
			"from", g.current.String(), "to", next.String())
		g.mount(ctx, GroupUnauthenticated)
	}
	g.mount(ctx, next)
}

// mount must be called with mu held. current follows the session even when
// the mounter fails.
func (g *Guard) mount(ctx context.Context, next Group) {
	prev := g.current
	g.current = next
	if err := g.mounter.Mount(ctx, next); err != nil {
		g.log.Error(ctx, "failed to mount screen group", "group", next.String(), "error", err)
		return
	}
	g.log.Debug(ctx, "mounted screen group", "from", prev.String(), "to", next.String())
}
