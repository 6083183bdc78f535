// Package navigator decides which screen group is reachable for a session
// and keeps the mounted group in step with session changes.
package navigator

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
)

// Group is one of the three mutually exclusive screen groups.
type Group int

const (
	GroupUnauthenticated Group = iota
	GroupRenterHome
	GroupOwnerHome
)

func (g Group) String() string {
	switch g {
	case GroupUnauthenticated:
		return "auth"
	case GroupRenterHome:
		return "renter"
	case GroupOwnerHome:
		return "owner"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// ErrInvalidSession is returned by Resolve for sessions that break the
// session invariant.
var ErrInvalidSession = models.ErrInvalidSession

// Resolve maps a session to its screen group. It is a pure function of
// IsAuthenticated and UserType. An invalid session resolves to
// GroupUnauthenticated together with ErrInvalidSession.
func Resolve(s models.Session) (Group, error) {
	if err := s.Validate(); err != nil {
		return GroupUnauthenticated, err
	}
	if !s.IsAuthenticated {
		return GroupUnauthenticated, nil
	}
	if *s.UserType == models.UserTypeOwner {
		return GroupOwnerHome, nil
	}
	return GroupRenterHome, nil
}

// CanTransition reports whether the state machine allows moving from one
// group to another directly. Staying in place is always allowed; renter and
// owner homes only connect through GroupUnauthenticated.
func CanTransition(from, to Group) bool {
	if from == to {
		return true
	}
	return from == GroupUnauthenticated || to == GroupUnauthenticated
}

// Mounter is the navigation mechanism that shows a screen group.
type Mounter interface {
	Mount(ctx context.Context, g Group) error
}

// Commands lists the commands available in a group, in help order.
func Commands(g Group) []string {
	switch g {
	case GroupRenterHome:
		return []string{"help", "explore", "search", "show", "fav", "favorites", "profile", "edit", "logout", "exit"}
	case GroupOwnerHome:
		return []string{"help", "properties", "reservations", "show", "profile", "edit", "logout", "exit"}
	default:
		return []string{"help", "login", "register", "forgot", "exit"}
	}
}
