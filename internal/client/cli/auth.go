package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/client"
	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/services"
)

var roles = []string{string(models.UserTypeRenter), string(models.UserTypeOwner)}

// describeAuthError turns store and backend errors into user-facing text.
func describeAuthError(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Invalid email or password."
	case errors.Is(err, client.ErrAccountExists):
		return "An account with this email already exists."
	case errors.Is(err, services.ErrPersistence):
		return "Could not save your session. Please try again."
	case errors.Is(err, services.ErrOperationInProgress):
		return "Please wait for the current request to finish."
	case errors.Is(err, services.ErrAlreadyAuthenticated):
		return "You are already logged in."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Request cancelled."
	default:
		return "Something went wrong. Please try again."
	}
}

// Login prompts for credentials and role. The call blocks until the backend
// answers, so a second submission cannot start meanwhile.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	role, err := getChoice(a.reader, "I am a", roles, string(models.UserTypeRenter), a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logging in...")
	ok, err := a.session.Login(ctx, email, password, models.UserType(role))
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, describeAuthError(err))
		return nil
	}
	if !ok {
		fmt.Fprintln(a.out, "Please enter both email and password.")
	}
	return nil
}

// Register prompts for the new account. The confirm-password check happens
// here; the store only sees matching passwords.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	role, err := getChoice(a.reader, "I am a", roles, string(models.UserTypeRenter), a.out)
	if err != nil {
		return err
	}

	if name == "" || email == "" || password == "" || confirm == "" {
		fmt.Fprintln(a.out, "Please fill in all fields.")
		return nil
	}
	if password != confirm {
		fmt.Fprintln(a.out, "Passwords do not match.")
		return nil
	}

	fmt.Fprintln(a.out, "Creating your account...")
	ok, err := a.session.Register(ctx, name, email, password, models.UserType(role))
	if err != nil {
		a.log.Error(ctx, "register failed", "error", err)
		fmt.Fprintln(a.out, describeAuthError(err))
		return nil
	}
	if !ok {
		fmt.Fprintln(a.out, "Please fill in all fields.")
	}
	return nil
}

// Forgot asks the backend to send a reset link.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		fmt.Fprintln(a.out, "Please enter your email address.")
		return nil
	}

	fmt.Fprintln(a.out, "Sending reset link...")
	if err := a.resetter.RequestPasswordReset(ctx, email); err != nil {
		a.log.Error(ctx, "password reset failed", "error", err)
		fmt.Fprintln(a.out, describeAuthError(err))
		return nil
	}
	fmt.Fprintf(a.out, "We've sent a password reset link to %s.\n", email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, describeAuthError(err))
		return nil
	}
	fmt.Fprintln(a.out, "You have been logged out.")
	return nil
}
