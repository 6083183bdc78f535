package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/homefinder/internal/auth"
	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/homefinder/internal/common"
	"github.com/dmitrijs2005/homefinder/internal/cryptox"
	"github.com/dmitrijs2005/homefinder/internal/dbx"
	"github.com/dmitrijs2005/homefinder/internal/logging"
)

// Options tunes LocalBackend.
type Options struct {
	// Latency is added to every Login and Register call.
	Latency time.Duration
	// ResetLatency is added to RequestPasswordReset.
	ResetLatency time.Duration
	// Strict enables the account registry. When false any non-empty
	// credentials are accepted and a demo user is returned.
	Strict bool

	TokenSecret   []byte
	TokenValidity time.Duration
}

// LocalBackend implements Backend in-process.
type LocalBackend struct {
	db    *sql.DB
	opts  Options
	log   logging.Logger
	newID func() string
	timer func(d time.Duration) *time.Timer
}

var _ Backend = (*LocalBackend)(nil)

// NewLocalBackend builds a backend. db is only used in strict mode and may
// be nil otherwise.
func NewLocalBackend(db *sql.DB, opts Options, log logging.Logger) (*LocalBackend, error) {
	if opts.Strict && db == nil {
		return nil, errors.New("strict mode requires a database")
	}
	if len(opts.TokenSecret) == 0 {
		return nil, errors.New("token secret is empty")
	}
	return &LocalBackend{
		db:    db,
		opts:  opts,
		log:   log,
		newID: uuid.NewString,
		timer: time.NewTimer,
	}, nil
}

// wait blocks for d or until ctx is done.
func (b *LocalBackend) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := b.timer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (b *LocalBackend) Login(ctx context.Context, email, password string, userType models.UserType) (*models.User, error) {
	if !userType.Valid() {
		return nil, ErrInvalidUserType
	}
	if err := b.wait(ctx, b.opts.Latency); err != nil {
		return nil, err
	}

	if !b.opts.Strict {
		u := seedUser(email, userType)
		return &u, nil
	}

	acc, err := accounts.NewSQLiteRepository(b.db).GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, common.ErrorNotFound) {
		b.log.Debug(ctx, "login for unknown account")
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !cryptox.CheckPassword([]byte(password), acc.Salt, acc.Verifier) {
		b.log.Debug(ctx, "login with wrong password", "user_id", acc.User.ID)
		return nil, ErrUnauthorized
	}
	if acc.User.UserType != userType {
		b.log.Debug(ctx, "login with wrong role", "user_id", acc.User.ID, "role", string(userType))
		return nil, ErrUnauthorized
	}

	u := acc.User
	return &u, nil
}

func (b *LocalBackend) Register(ctx context.Context, name, email, password string, userType models.UserType) (*models.User, error) {
	if !userType.Valid() {
		return nil, ErrInvalidUserType
	}
	if err := b.wait(ctx, b.opts.Latency); err != nil {
		return nil, err
	}

	u := models.User{
		ID:       b.newID(),
		Email:    email,
		Name:     name,
		Avatar:   AvatarFor(userType),
		UserType: userType,
	}
	if !b.opts.Strict {
		return &u, nil
	}

	u.Email = normalizeEmail(email)

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	key := cryptox.DeriveMasterKey([]byte(password), salt)
	verifier := cryptox.MakeVerifier(key)
	common.WipeByteArray(key)

	err := dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return accounts.NewSQLiteRepository(tx).Create(ctx, &accounts.Account{
			User:     u,
			Salt:     salt,
			Verifier: verifier,
		})
	})
	if errors.Is(err, common.ErrorAlreadyExists) {
		return nil, ErrAccountExists
	}
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	b.log.Info(ctx, "account registered", "user_id", u.ID, "role", string(userType))
	return &u, nil
}

// RequestPasswordReset pretends to send a reset link to email.
func (b *LocalBackend) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is empty")
	}
	if err := b.wait(ctx, b.opts.ResetLatency); err != nil {
		return err
	}
	b.log.Info(ctx, "password reset requested")
	return nil
}

func (b *LocalBackend) IssueToken(u models.User) (string, error) {
	return auth.GenerateToken(u.ID, string(u.UserType), b.opts.TokenSecret, b.opts.TokenValidity)
}

func (b *LocalBackend) VerifyToken(token string, u models.User) error {
	claims, err := auth.ParseToken(token, b.opts.TokenSecret)
	if err != nil {
		return err
	}
	if claims.UserID != u.ID || claims.UserType != string(u.UserType) {
		return ErrTokenMismatch
	}
	return nil
}
