package models

import (
	"encoding/json"
	"errors"
)

// ErrInvalidSession is returned when a Session breaks the authentication
// invariant (authenticated iff user iff role, and both roles agree).
var ErrInvalidSession = errors.New("invalid session state")

// Session is the process-wide record of who is logged in and as what role.
//
// Token is an opaque access token handed out by the backend on login or
// registration; it is empty whenever the session is not authenticated.
type Session struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	User            *User     `json:"user"`
	UserType        *UserType `json:"userType"`
	Token           string    `json:"token,omitempty"`
}

// NewAuthenticatedSession builds a session for u. The role is taken from the
// user record so the two can never disagree.
func NewAuthenticatedSession(u User, token string) Session {
	return Session{
		IsAuthenticated: true,
		User:            &u,
		UserType:        u.UserType.Ptr(),
		Token:           token,
	}
}

// Validate checks the session invariant.
func (s Session) Validate() error {
	if !s.IsAuthenticated {
		if s.User != nil || s.UserType != nil || s.Token != "" {
			return ErrInvalidSession
		}
		return nil
	}
	if s.User == nil || s.UserType == nil {
		return ErrInvalidSession
	}
	if !s.UserType.Valid() || s.User.UserType != *s.UserType {
		return ErrInvalidSession
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate store-owned records.
func (s Session) Clone() Session {
	c := Session{IsAuthenticated: s.IsAuthenticated, Token: s.Token}
	c.User = s.User.Clone()
	if s.UserType != nil {
		c.UserType = s.UserType.Ptr()
	}
	return c
}

// Snapshot is the envelope written to a storage slot. The layout matches the
// one produced by the mobile app's persist layer so existing slots load as-is.
type Snapshot[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// SnapshotVersion is the current schema version of persisted snapshots.
const SnapshotVersion = 0

// MarshalSnapshot wraps v in a Snapshot envelope and encodes it as JSON.
func MarshalSnapshot[T any](v T) ([]byte, error) {
	return json.Marshal(Snapshot[T]{State: v, Version: SnapshotVersion})
}

// UnmarshalSnapshot decodes a Snapshot envelope and returns its state.
func UnmarshalSnapshot[T any](data []byte) (T, error) {
	var s Snapshot[T]
	if err := json.Unmarshal(data, &s); err != nil {
		var zero T
		return zero, err
	}
	return s.State, nil
}

// FavoritesState is the persisted state of the favorites store.
type FavoritesState struct {
	Favorites []string `json:"favorites"`
}
