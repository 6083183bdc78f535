package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/listings"
	"github.com/dmitrijs2005/homefinder/internal/common"
)

// DefaultMaxPrice is the upper bound of the search screen's price range.
const DefaultMaxPrice = 5000

// ErrListingNotFound is returned for an unknown listing id.
var ErrListingNotFound = errors.New("listing not found")

// ListingService serves the read-only apartment catalogue.
type ListingService struct {
	repo listings.Repository
}

func NewListingService(repo listings.Repository) *ListingService {
	return &ListingService{repo: repo}
}

// DefaultCriteria matches every listing priced 0..DefaultMaxPrice.
func DefaultCriteria() models.SearchCriteria {
	return models.SearchCriteria{MinPrice: 0, MaxPrice: DefaultMaxPrice}
}

func (s *ListingService) All(ctx context.Context) ([]models.Apartment, error) {
	return s.repo.GetAll(ctx)
}

func (s *ListingService) Featured(ctx context.Context) ([]models.Apartment, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(a models.Apartment) bool { return !a.Featured }), nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*models.Apartment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}
	return a, err
}

// Cities returns the distinct cities of the catalogue, sorted.
func (s *ListingService) Cities(ctx context.Context) ([]string, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	cities := make([]string, 0, len(all))
	for _, a := range all {
		cities = append(cities, a.Location.City)
	}
	slices.Sort(cities)
	return slices.Compact(cities), nil
}

func (s *ListingService) Search(ctx context.Context, c models.SearchCriteria) ([]models.Apartment, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(a models.Apartment) bool { return !c.Matches(a) }), nil
}

// ByIDs returns the listings for ids in the order given. Unknown ids are
// skipped.
func (s *ListingService) ByIDs(ctx context.Context, ids []string) ([]models.Apartment, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Apartment, len(all))
	for _, a := range all {
		byID[a.ID] = a
	}

	out := make([]models.Apartment, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}
