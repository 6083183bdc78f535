// Package listings reads the apartment catalogue seeded by the client
// migrations. The catalogue is read-only at runtime.
package listings

import (
	"context"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
)

type Repository interface {
	// GetAll returns listings in catalogue order.
	GetAll(ctx context.Context) ([]models.Apartment, error)
	// GetByID fails with common.ErrorNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*models.Apartment, error)
}
