package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
)

func formatPrice(a models.Apartment) string {
	if a.Currency == "" || a.Currency == "USD" {
		return fmt.Sprintf("$%d/mo", a.Price)
	}
	return fmt.Sprintf("%d %s/mo", a.Price, a.Currency)
}

func formatRooms(a models.Apartment) string {
	bedrooms := "Studio"
	if a.Bedrooms > 0 {
		bedrooms = fmt.Sprintf("%d bd", a.Bedrooms)
	}
	return fmt.Sprintf("%s, %s ba, %d m²", bedrooms, strconv.FormatFloat(a.Bathrooms, 'f', -1, 64), a.Size)
}

// printListing writes a one-line summary. marker is printed before the id.
func printListing(w io.Writer, a models.Apartment, marker string) {
	fmt.Fprintf(w, "%1s [%s] %s | %s, %s | %s | %s | ★ %.1f (%d)\n",
		marker, a.ID, a.Title, a.Location.Neighborhood, a.Location.City,
		formatPrice(a), formatRooms(a), a.Rating, a.Reviews)
}

func printListings(w io.Writer, as []models.Apartment, marker func(models.Apartment) string) {
	if len(as) == 0 {
		fmt.Fprintln(w, "No listings found.")
		return
	}
	for _, a := range as {
		m := ""
		if marker != nil {
			m = marker(a)
		}
		printListing(w, a, m)
	}
}

func printDetails(w io.Writer, a models.Apartment, favorite bool) {
	fmt.Fprintf(w, "%s\n", a.Title)
	fmt.Fprintf(w, "  %s, %s\n", a.Location.Neighborhood, a.Location.City)
	fmt.Fprintf(w, "  %s | %s\n", formatPrice(a), formatRooms(a))
	fmt.Fprintf(w, "  ★ %.1f (%d reviews)\n", a.Rating, a.Reviews)

	host := a.Host.Name
	if a.Host.Superhost {
		host += " (Superhost)"
	}
	fmt.Fprintf(w, "  Hosted by %s\n", host)

	if len(a.Amenities) > 0 {
		fmt.Fprintf(w, "  Amenities: %s\n", strings.Join(a.Amenities, ", "))
	}
	if !a.Available {
		fmt.Fprintln(w, "  Currently unavailable")
	}
	if favorite {
		fmt.Fprintln(w, "  ♥ In your favorites")
	}
	fmt.Fprintf(w, "\n%s\n", a.Description)
}
