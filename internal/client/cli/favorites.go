package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/services"
)

// Fav toggles a listing in the favorites.
func (a *App) Fav(ctx context.Context, id string) error {
	ap, err := a.catalogue.Get(ctx, id)
	if errors.Is(err, services.ErrListingNotFound) {
		fmt.Fprintf(a.out, "No listing with id %s.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	on, err := a.favorites.Toggle(ctx, ap.ID)
	if err != nil {
		a.log.Error(ctx, "toggle favorite failed", "listing_id", ap.ID, "error", err)
		fmt.Fprintln(a.out, "Could not save your favorites. Please try again.")
		return nil
	}
	if on {
		fmt.Fprintf(a.out, "Added %q to favorites.\n", ap.Title)
	} else {
		fmt.Fprintf(a.out, "Removed %q from favorites.\n", ap.Title)
	}
	return nil
}

// Favorites lists saved listings in the order they were saved.
func (a *App) Favorites(ctx context.Context) error {
	ids := a.favorites.List()
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "No favorites yet. Use 'fav <id>' to save a listing.")
		return nil
	}

	saved, err := a.catalogue.ByIDs(ctx, ids)
	if err != nil {
		return err
	}
	printListings(a.out, saved, nil)
	return nil
}
