package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/navigator"
	"github.com/dmitrijs2005/homefinder/internal/client/services"
	"github.com/dmitrijs2005/homefinder/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
)

// SessionStore is the part of services.SessionStore the CLI drives.
type SessionStore interface {
	Login(ctx context.Context, email, password string, userType models.UserType) (bool, error)
	Register(ctx context.Context, name, email, password string, userType models.UserType) (bool, error)
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, patch models.UserPatch) error
	Session() models.Session
}

// FavoritesStore is the part of services.FavoritesStore the CLI drives.
type FavoritesStore interface {
	Toggle(ctx context.Context, id string) (bool, error)
	IsFavorite(id string) bool
	List() []string
}

// Catalogue is the part of services.ListingService the CLI reads.
type Catalogue interface {
	All(ctx context.Context) ([]models.Apartment, error)
	Featured(ctx context.Context) ([]models.Apartment, error)
	Get(ctx context.Context, id string) (*models.Apartment, error)
	Cities(ctx context.Context) ([]string, error)
	Search(ctx context.Context, c models.SearchCriteria) ([]models.Apartment, error)
	ByIDs(ctx context.Context, ids []string) ([]models.Apartment, error)
}

// Reservations is the part of services.ReservationService the CLI reads.
type Reservations interface {
	ByStatus(ctx context.Context, status models.ReservationStatus) ([]services.ReservationEntry, error)
	Counts(ctx context.Context) (map[models.ReservationStatus]int, error)
}

// PasswordResetter sends password reset links.
type PasswordResetter interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// App is the interactive client. It is mounted by the route guard.
type App struct {
	session      SessionStore
	favorites    FavoritesStore
	catalogue    Catalogue
	reservations Reservations
	resetter     PasswordResetter
	log          logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu    sync.Mutex
	group navigator.Group
}

var _ navigator.Mounter = (*App)(nil)

func NewApp(session SessionStore, favorites FavoritesStore, catalogue Catalogue, reservations Reservations,
	resetter PasswordResetter, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		session:      session,
		favorites:    favorites,
		catalogue:    catalogue,
		reservations: reservations,
		resetter:     resetter,
		log:          log.With("component", "cli"),
		reader:       bufio.NewReader(in),
		out:          out,
	}
}

// Mount switches the active command set and shows the group's banner.
func (a *App) Mount(ctx context.Context, g navigator.Group) error {
	a.mu.Lock()
	a.group = g
	a.mu.Unlock()

	switch g {
	case navigator.GroupRenterHome:
		fmt.Fprintf(a.out, "Find your next home, %s. Type 'help' for commands.\n", a.userName())
	case navigator.GroupOwnerHome:
		fmt.Fprintf(a.out, "Welcome back, %s. Type 'help' for commands.\n", a.userName())
	default:
		fmt.Fprintln(a.out, "Welcome to HomeFinder. Log in or register to continue (type 'help').")
	}
	return nil
}

func (a *App) currentGroup() navigator.Group {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.group
}

func (a *App) userName() string {
	if u := a.session.Session().User; u != nil {
		return u.Name
	}
	return ""
}

func (a *App) status() string {
	g := a.currentGroup()
	if g == navigator.GroupUnauthenticated {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.userName(), g)
}

// Run reads commands until exit, end of input or ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	return runREPL(ctx, a, a.reader, a.out)
}
