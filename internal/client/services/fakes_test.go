package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/homefinder/internal/client/client"
	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/metadata"
)

// flakyRepo wraps a MemoryRepository and fails writes while failSet is set.
type flakyRepo struct {
	*metadata.MemoryRepository

	mu      sync.Mutex
	failSet bool
	failGet bool
	sets    int
}

var errDiskFull = errors.New("disk full")

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{MemoryRepository: metadata.NewMemoryRepository()}
}

func (r *flakyRepo) setFailing(v bool) {
	r.mu.Lock()
	r.failSet = v
	r.mu.Unlock()
}

func (r *flakyRepo) setCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets
}

func (r *flakyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	fail := r.failGet
	r.mu.Unlock()
	if fail {
		return nil, errDiskFull
	}
	return r.MemoryRepository.Get(ctx, key)
}

func (r *flakyRepo) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	fail := r.failSet
	if !fail {
		r.sets++
	}
	r.mu.Unlock()
	if fail {
		return errDiskFull
	}
	return r.MemoryRepository.Set(ctx, key, value)
}

// gatedBackend wraps a real LocalBackend and, when gate is non-nil, blocks
// Login/Register until the gate is closed.
type gatedBackend struct {
	client.Backend
	gate    chan struct{}
	entered chan struct{}
	err     error
}

func (b *gatedBackend) wait(ctx context.Context) error {
	if b.entered != nil {
		b.entered <- struct{}{}
	}
	if b.gate != nil {
		select {
		case <-b.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return b.err
}

func (b *gatedBackend) Login(ctx context.Context, email, password string, userType models.UserType) (*models.User, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.Backend.Login(ctx, email, password, userType)
}

func (b *gatedBackend) Register(ctx context.Context, name, email, password string, userType models.UserType) (*models.User, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.Backend.Register(ctx, name, email, password, userType)
}
