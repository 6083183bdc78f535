package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
)

func (a *App) Profile(ctx context.Context) error {
	u := a.session.Session().User
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s\n", u.Name)
	fmt.Fprintf(a.out, "  Email:  %s\n", u.Email)
	if u.Phone != "" {
		fmt.Fprintf(a.out, "  Phone:  %s\n", u.Phone)
	}
	fmt.Fprintf(a.out, "  Role:   %s\n", u.UserType)
	if u.Avatar != "" {
		fmt.Fprintf(a.out, "  Avatar: %s\n", u.Avatar)
	}
	return nil
}

// clearValue typed at an optional field's prompt empties it.
const clearValue = "-"

// Edit prompts for each editable field. An empty answer keeps the current
// value; only changed fields end up in the patch.
func (a *App) Edit(ctx context.Context) error {
	u := a.session.Session().User
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	var patch models.UserPatch
	fields := []struct {
		label    string
		cur      string
		dst      **string
		optional bool
	}{
		{"Full name", u.Name, &patch.Name, false},
		{"Email", u.Email, &patch.Email, false},
		{"Phone", u.Phone, &patch.Phone, true},
		{"Avatar URL", u.Avatar, &patch.Avatar, true},
	}

	for _, f := range fields {
		prompt := fmt.Sprintf("%s [%s]", f.label, f.cur)
		if f.optional {
			prompt += fmt.Sprintf(" ('%s' to clear)", clearValue)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if f.optional && v == clearValue {
			v = ""
		} else if v == "" {
			continue
		}
		if v != f.cur {
			*f.dst = &v
		}
	}

	if patch.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	if err := a.session.UpdateUser(ctx, patch); err != nil {
		a.log.Error(ctx, "profile update failed", "error", err)
		fmt.Fprintln(a.out, describeAuthError(err))
		return nil
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
