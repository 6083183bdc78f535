package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/navigator"
	"github.com/dmitrijs2005/homefinder/internal/client/services"
)

func (a *App) favoriteMarker(ap models.Apartment) string {
	if a.favorites.IsFavorite(ap.ID) {
		return "♥"
	}
	return ""
}

// Explore shows the featured listings followed by the full catalogue.
func (a *App) Explore(ctx context.Context) error {
	featured, err := a.catalogue.Featured(ctx)
	if err != nil {
		return err
	}
	all, err := a.catalogue.All(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Featured")
	printListings(a.out, featured, a.favoriteMarker)
	fmt.Fprintln(a.out, "\nAll listings")
	printListings(a.out, all, a.favoriteMarker)
	return nil
}

// readInt prompts for an integer; an empty answer keeps def.
func (a *App) readInt(prompt string, def int64) (int64, error) {
	for {
		s, err := getSimpleText(a.reader, fmt.Sprintf("%s [%d]", prompt, def), a.out)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return def, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintln(a.out, "Please enter a non-negative number.")
	}
}

// Search asks for filter values and lists the matches. Empty answers keep
// the defaults, which match everything up to the maximum price.
func (a *App) Search(ctx context.Context) error {
	c := services.DefaultCriteria()

	q, err := getSimpleText(a.reader, "Search (title, city or neighborhood)", a.out)
	if err != nil {
		return err
	}
	c.Query = q

	cities, err := a.catalogue.Cities(ctx)
	if err != nil {
		return err
	}
	city, err := getChoice(a.reader, "City", append([]string{"any"}, cities...), "any", a.out)
	if err != nil {
		return err
	}
	if city != "any" {
		c.City = city
	}

	if c.MinPrice, err = a.readInt("Min price", c.MinPrice); err != nil {
		return err
	}
	if c.MaxPrice, err = a.readInt("Max price", c.MaxPrice); err != nil {
		return err
	}
	if c.MinPrice > c.MaxPrice {
		fmt.Fprintln(a.out, "Min price is above max price.")
		return nil
	}

	bedrooms, err := a.readInt("Min bedrooms (0 = any)", 0)
	if err != nil {
		return err
	}
	bathrooms, err := a.readInt("Min bathrooms (0 = any)", 0)
	if err != nil {
		return err
	}
	c.Bedrooms, c.Bathrooms = int(bedrooms), int(bathrooms)

	found, err := a.catalogue.Search(ctx, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d result(s)\n", len(found))
	printListings(a.out, found, a.favoriteMarker)
	return nil
}

// Show prints the details of one listing.
func (a *App) Show(ctx context.Context, id string) error {
	ap, err := a.catalogue.Get(ctx, id)
	if errors.Is(err, services.ErrListingNotFound) {
		fmt.Fprintf(a.out, "No listing with id %s.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	fav := a.currentGroup() == navigator.GroupRenterHome && a.favorites.IsFavorite(ap.ID)
	printDetails(a.out, *ap, fav)
	return nil
}

// Properties is the owner dashboard: every listing with its status.
// Available listings count as active, the rest as drafts.
func (a *App) Properties(ctx context.Context) error {
	all, err := a.catalogue.All(ctx)
	if err != nil {
		return err
	}

	active := 0
	for _, ap := range all {
		if ap.Available {
			active++
		}
	}
	fmt.Fprintf(a.out, "Properties: %d | Active: %d | Drafts: %d\n", len(all), active, len(all)-active)

	printListings(a.out, all, func(ap models.Apartment) string {
		if ap.Available {
			return "+"
		}
		return "-"
	})
	return nil
}
