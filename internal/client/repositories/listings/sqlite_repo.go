package listings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/common"
	"github.com/dmitrijs2005/homefinder/internal/dbx"
)

const selectColumns = `SELECT id, title, description, price, currency, city, neighborhood,
	latitude, longitude, images, bedrooms, bathrooms, size, amenities, rating, reviews,
	host_id, host_name, host_avatar, host_superhost, available, featured
	FROM apartments`

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApartment(s scanner) (models.Apartment, error) {
	var (
		a                 models.Apartment
		images, amenities string
	)
	err := s.Scan(&a.ID, &a.Title, &a.Description, &a.Price, &a.Currency,
		&a.Location.City, &a.Location.Neighborhood,
		&a.Location.Coordinates.Latitude, &a.Location.Coordinates.Longitude,
		&images, &a.Bedrooms, &a.Bathrooms, &a.Size, &amenities, &a.Rating, &a.Reviews,
		&a.Host.ID, &a.Host.Name, &a.Host.Avatar, &a.Host.Superhost, &a.Available, &a.Featured)
	if err != nil {
		return a, err
	}

	if err := json.Unmarshal([]byte(images), &a.Images); err != nil {
		return a, fmt.Errorf("decode images of %s: %w", a.ID, err)
	}
	if err := json.Unmarshal([]byte(amenities), &a.Amenities); err != nil {
		return a, fmt.Errorf("decode amenities of %s: %w", a.ID, err)
	}
	return a, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Apartment, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select apartments: %w", err)
	}
	defer rows.Close()

	var result []models.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan apartment: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate apartments: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Apartment, error) {
	a, err := scanApartment(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get apartment %s: %w", id, err)
	}
	return &a, nil
}
