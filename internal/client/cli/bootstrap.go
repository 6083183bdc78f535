package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/homefinder/internal/client/client"
	"github.com/dmitrijs2005/homefinder/internal/client/config"
	"github.com/dmitrijs2005/homefinder/internal/client/navigator"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/listings"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/reservations"
	"github.com/dmitrijs2005/homefinder/internal/client/services"
	"github.com/dmitrijs2005/homefinder/internal/logging"
)

// Runtime is a fully wired client: storage, stores, guard and App.
type Runtime struct {
	App     *App
	Guard   *navigator.Guard
	Session *services.SessionStore

	closers []func() error
}

// Close stops the guard, disposes the stores and releases storage.
func (r *Runtime) Close() error {
	r.Guard.Stop()
	r.Session.Close()

	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}

func openSlots(ctx context.Context, cfg *config.Config, db *sql.DB) (metadata.Repository, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return metadata.NewMemoryRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		r, err := metadata.NewRedisRepositoryFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	default:
		return metadata.NewSQLiteRepository(db), func() error { return nil }, nil
	}
}

// Bootstrap opens storage, loads the persisted stores and starts the route
// guard, which mounts the initial screen group on the returned App.
func Bootstrap(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log logging.Logger) (*Runtime, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	closers := []func() error{db.Close}
	fail := func(err error) (*Runtime, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
		return nil, err
	}

	slots, closeSlots, err := openSlots(ctx, cfg, db)
	if err != nil {
		return fail(fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err))
	}
	closers = append(closers, closeSlots)

	backend, err := client.NewLocalBackend(db, client.Options{
		Latency:       cfg.SimulatedLatency,
		ResetLatency:  cfg.ResetLatency,
		Strict:        cfg.StrictAuth,
		TokenSecret:   []byte(cfg.TokenSecret),
		TokenValidity: cfg.TokenValidity,
	}, log)
	if err != nil {
		return fail(err)
	}

	session := services.NewSessionStore(slots, backend, log)
	if err := session.Load(ctx); err != nil {
		return fail(err)
	}
	favorites := services.NewFavoritesStore(slots, log)
	if err := favorites.Load(ctx); err != nil {
		return fail(err)
	}
	catalogueRepo := listings.NewSQLiteRepository(db)
	catalogue := services.NewListingService(catalogueRepo)
	bookings := services.NewReservationService(reservations.NewSQLiteRepository(db), catalogueRepo)

	app := NewApp(session, favorites, catalogue, bookings, backend, in, out, log)
	guard := navigator.NewGuard(session, app, log)
	if err := guard.Start(ctx); err != nil {
		return fail(err)
	}

	log.Info(ctx, "client started",
		"storage", cfg.StorageDriver, "strict_auth", cfg.StrictAuth, "group", guard.Current().String())

	return &Runtime{App: app, Guard: guard, Session: session, closers: closers}, nil
}
