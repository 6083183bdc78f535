package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/homefinder/internal/client/navigator"
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentGroup() navigator.Group
	status() string

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Forgot(ctx context.Context) error
	Logout(ctx context.Context) error

	Explore(ctx context.Context) error
	Search(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Fav(ctx context.Context, id string) error
	Favorites(ctx context.Context) error
	Properties(ctx context.Context) error
	Reservations(ctx context.Context, status string) error

	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
}

var helpText = map[string]string{
	"help":         "show available commands",
	"login":        "log in as renter or owner",
	"register":     "create an account",
	"forgot":       "request a password reset link",
	"explore":      "featured and all listings",
	"search":       "filter listings",
	"show":         "show <id>: listing details",
	"fav":          "fav <id>: add or remove a favorite",
	"favorites":    "list saved listings",
	"properties":   "your properties",
	"reservations": "reservations [pending|confirmed|cancelled]: viewing requests",
	"profile":      "show your profile",
	"edit":         "edit your profile",
	"logout":       "log out",
	"exit":         "leave the program",
}

func printHelp(w io.Writer, g navigator.Group) {
	fmt.Fprintln(w, "Available commands:")
	for _, c := range navigator.Commands(g) {
		fmt.Fprintf(w, "  %-13s %s\n", c, helpText[c])
	}
}

// runREPL reads a line, takes the first token as the command and dispatches
// it to a. Only commands of the currently mounted group are accepted; the
// group is re-read before every command because a login or logout may have
// remounted it. Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s := a.status(); s != "" {
			fmt.Fprintf(w, "hf %s> ", s)
		} else {
			fmt.Fprint(w, "hf> ")
		}

		line, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		if cmd == "quit" {
			cmd = "exit"
		}

		group := a.currentGroup()
		if !slices.Contains(navigator.Commands(group), cmd) {
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}

		if cmd == "exit" {
			fmt.Fprintln(w, "Bye!")
			return nil
		}

		if err := dispatch(ctx, a, group, cmd, args, w); err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, g navigator.Group, cmd string, args []string, w io.Writer) error {
	withID := func(fn func(context.Context, string) error) error {
		if len(args) != 1 {
			fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
			return nil
		}
		return fn(ctx, args[0])
	}

	switch cmd {
	case "help":
		printHelp(w, g)
		return nil
	case "login":
		return a.Login(ctx)
	case "register":
		return a.Register(ctx)
	case "forgot":
		return a.Forgot(ctx)
	case "logout":
		return a.Logout(ctx)
	case "explore":
		return a.Explore(ctx)
	case "search":
		return a.Search(ctx)
	case "show":
		return withID(a.Show)
	case "fav":
		return withID(a.Fav)
	case "favorites":
		return a.Favorites(ctx)
	case "properties":
		return a.Properties(ctx)
	case "reservations":
		status := ""
		if len(args) > 0 {
			status = args[0]
		}
		return a.Reservations(ctx, status)
	case "profile":
		return a.Profile(ctx)
	case "edit":
		return a.Edit(ctx)
	}
	return fmt.Errorf("no handler for %q", cmd)
}
