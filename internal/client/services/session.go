// Package services contains application services for the HomeFinder client:
// the session store, the favorites store and the listing catalogue.
package services

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrijs2005/homefinder/internal/client/client"
	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/homefinder/internal/common"
	"github.com/dmitrijs2005/homefinder/internal/logging"
)

// SessionStore is the single source of truth for who is logged in and as
// which role. Every mutation is written to the auth-storage slot before it
// becomes visible in memory.
//
// Lifecycle: NewSessionStore, Load once at startup, Close on shutdown.
//
// Observers registered with Subscribe are called synchronously after each
// committed mutation, before the mutating call returns. They may read the
// store but must not mutate it.
type SessionStore struct {
	repo    metadata.Repository
	backend client.Backend
	log     logging.Logger

	// writeMu serializes persist+commit+notify so observers see mutations in
	// the order they were persisted.
	writeMu sync.Mutex

	mu        sync.Mutex
	session   models.Session
	pending   bool
	observers map[int]func(models.Session)
	nextObs   int
}

func NewSessionStore(repo metadata.Repository, backend client.Backend, log logging.Logger) *SessionStore {
	return &SessionStore{
		repo:      repo,
		backend:   backend,
		log:       log.With("component", "session"),
		observers: make(map[int]func(models.Session)),
	}
}

// Load reads the persisted session. A missing slot yields the empty session.
// A snapshot that cannot be decoded, breaks the session invariant or carries
// a token the backend rejects is discarded with a warning.
func (s *SessionStore) Load(ctx context.Context) error {
	data, err := s.repo.Get(ctx, common.AuthStorageKey)
	if err != nil {
		return persistenceError("load session", err)
	}

	loaded := models.Session{}
	if data != nil {
		loaded = s.decode(ctx, data)
	}

	s.mu.Lock()
	s.session = loaded
	s.mu.Unlock()

	s.log.Debug(ctx, "session loaded", "authenticated", loaded.IsAuthenticated)
	return nil
}

func (s *SessionStore) decode(ctx context.Context, data []byte) models.Session {
	sess, err := models.UnmarshalSnapshot[models.Session](data)
	if err != nil {
		s.log.Warn(ctx, "discarding undecodable session snapshot", "error", err)
		return models.Session{}
	}
	if err := sess.Validate(); err != nil {
		s.log.Warn(ctx, "discarding inconsistent session snapshot", "error", err)
		return models.Session{}
	}
	if sess.IsAuthenticated && sess.Token != "" {
		if err := s.backend.VerifyToken(sess.Token, *sess.User); err != nil {
			s.log.Warn(ctx, "discarding session with rejected token", "error", err)
			return models.Session{}
		}
	}
	return sess
}

// Session returns a copy of the current session.
func (s *SessionStore) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// Pending reports whether a login or register call is outstanding.
func (s *SessionStore) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Subscribe registers fn and returns a function that removes it.
func (s *SessionStore) Subscribe(fn func(models.Session)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// Close drops every observer.
func (s *SessionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.observers)
}

// Login authenticates against the backend. Empty credentials or an unknown
// role return (false, nil) without touching state.
func (s *SessionStore) Login(ctx context.Context, email, password string, userType models.UserType) (bool, error) {
	if email == "" || password == "" || !userType.Valid() {
		return false, nil
	}

	if err := s.begin(userType); err != nil {
		return false, err
	}
	defer s.end()

	u, err := s.backend.Login(ctx, email, password, userType)
	if err != nil {
		s.log.Info(ctx, "login failed", "role", string(userType), "error", err)
		return false, err
	}

	if err := s.authenticate(ctx, *u); err != nil {
		return false, err
	}
	s.log.Info(ctx, "logged in", "user_id", u.ID, "role", string(u.UserType))
	return true, nil
}

// Register creates an account and logs it in. Any empty field or an unknown
// role returns (false, nil) without touching state.
func (s *SessionStore) Register(ctx context.Context, name, email, password string, userType models.UserType) (bool, error) {
	if name == "" || email == "" || password == "" || !userType.Valid() {
		return false, nil
	}

	if err := s.begin(userType); err != nil {
		return false, err
	}
	defer s.end()

	u, err := s.backend.Register(ctx, name, email, password, userType)
	if err != nil {
		s.log.Info(ctx, "register failed", "role", string(userType), "error", err)
		return false, err
	}

	if err := s.authenticate(ctx, *u); err != nil {
		return false, err
	}
	s.log.Info(ctx, "registered", "user_id", u.ID, "role", string(u.UserType))
	return true, nil
}

// Logout clears the session. It is rejected while a login or register call
// is outstanding.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()
	if pending {
		return ErrOperationInProgress
	}

	if err := s.persistAndCommit(ctx, models.Session{}); err != nil {
		return err
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// UpdateUser merges patch into the current user. Without a user it does
// nothing and writes nothing.
func (s *SessionStore) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	cur := s.session.Clone()
	s.mu.Unlock()

	if cur.User == nil {
		return nil
	}

	next := cur
	updated := patch.Apply(*cur.User)
	next.User = &updated

	if err := s.persistAndCommit(ctx, next); err != nil {
		return err
	}
	s.log.Debug(ctx, "profile updated", "user_id", updated.ID)
	return nil
}

// begin marks a login or register as pending. Re-authenticating under the
// current role replaces the session; switching roles requires a logout.
func (s *SessionStore) begin(userType models.UserType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return ErrOperationInProgress
	}
	if s.session.IsAuthenticated && *s.session.UserType != userType {
		return ErrAlreadyAuthenticated
	}
	s.pending = true
	return nil
}

func (s *SessionStore) end() {
	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()
}

func (s *SessionStore) authenticate(ctx context.Context, u models.User) error {
	token, err := s.backend.IssueToken(u)
	if err != nil {
		return err
	}
	return s.commit(ctx, models.NewAuthenticatedSession(u, token))
}

func (s *SessionStore) commit(ctx context.Context, next models.Session) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.persistAndCommit(ctx, next)
}

// persistAndCommit must be called with writeMu held.
func (s *SessionStore) persistAndCommit(ctx context.Context, next models.Session) error {
	data, err := models.MarshalSnapshot(next)
	if err != nil {
		return persistenceError("encode session", err)
	}
	if err := s.repo.Set(ctx, common.AuthStorageKey, data); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
		return persistenceError("save session", err)
	}

	s.mu.Lock()
	s.session = next
	observers := make([]func(models.Session), 0, len(s.observers))
	for _, id := range slices.Sorted(maps.Keys(s.observers)) {
		observers = append(observers, s.observers[id])
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next.Clone())
	}
	return nil
}
