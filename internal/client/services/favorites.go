package services

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/homefinder/internal/common"
	"github.com/dmitrijs2005/homefinder/internal/logging"
)

// FavoritesStore is the persisted, insertion-ordered set of saved listing
// ids. It is independent of the session: favorites survive logout.
type FavoritesStore struct {
	repo metadata.Repository
	log  logging.Logger

	mu  sync.Mutex
	ids []string
}

func NewFavoritesStore(repo metadata.Repository, log logging.Logger) *FavoritesStore {
	return &FavoritesStore{repo: repo, log: log.With("component", "favorites")}
}

// Load reads the favorites-storage slot. An undecodable snapshot is
// discarded with a warning; duplicate and empty ids are dropped.
func (f *FavoritesStore) Load(ctx context.Context) error {
	data, err := f.repo.Get(ctx, common.FavoritesStorageKey)
	if err != nil {
		return persistenceError("load favorites", err)
	}

	var ids []string
	if data != nil {
		st, err := models.UnmarshalSnapshot[models.FavoritesState](data)
		if err != nil {
			f.log.Warn(ctx, "discarding undecodable favorites snapshot", "error", err)
		} else {
			ids = dedupe(st.Favorites)
		}
	}

	f.mu.Lock()
	f.ids = ids
	f.mu.Unlock()
	return nil
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, id := range in {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Add appends id. Adding a present id changes nothing and writes nothing.
func (f *FavoritesStore) Add(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id == "" || slices.Contains(f.ids, id) {
		return nil
	}
	return f.save(ctx, append(slices.Clone(f.ids), id))
}

// Remove deletes id. Removing an absent id changes nothing and writes nothing.
func (f *FavoritesStore) Remove(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.Index(f.ids, id)
	if i < 0 {
		return nil
	}
	return f.save(ctx, slices.Delete(slices.Clone(f.ids), i, i+1))
}

// Toggle adds id if absent, removes it otherwise, and reports whether id is
// a favorite afterwards.
func (f *FavoritesStore) Toggle(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id == "" {
		return false, nil
	}
	if i := slices.Index(f.ids, id); i >= 0 {
		if err := f.save(ctx, slices.Delete(slices.Clone(f.ids), i, i+1)); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := f.save(ctx, append(slices.Clone(f.ids), id)); err != nil {
		return false, err
	}
	return true, nil
}

func (f *FavoritesStore) IsFavorite(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Contains(f.ids, id)
}

// List returns a copy of the saved ids in insertion order.
func (f *FavoritesStore) List() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.ids)
}

// save must be called with mu held. f.ids is only replaced after the write
// succeeds.
func (f *FavoritesStore) save(ctx context.Context, next []string) error {
	if next == nil {
		next = []string{}
	}
	data, err := models.MarshalSnapshot(models.FavoritesState{Favorites: next})
	if err != nil {
		return persistenceError("encode favorites", err)
	}
	if err := f.repo.Set(ctx, common.FavoritesStorageKey, data); err != nil {
		f.log.Error(ctx, "failed to persist favorites", "error", err)
		return persistenceError("save favorites", err)
	}
	f.ids = next
	return nil
}
