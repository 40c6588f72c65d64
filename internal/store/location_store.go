package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avolkov/whereis/internal/domain"
)

type LocationStore struct {
	q Querier
}

func NewLocationStore(q Querier) *LocationStore {
	return &LocationStore{q: q}
}

// GetByItemID returns the item's location, or nil if it has none.
func (s *LocationStore) GetByItemID(ctx context.Context, itemID int64) (*domain.Location, error) {
	loc := &domain.Location{}
	err := s.q.QueryRowContext(ctx, `
		SELECT id, item_id, latitude, longitude FROM locations WHERE item_id = ? LIMIT 1
	`, itemID).Scan(&loc.ID, &loc.ItemID, &loc.Latitude, &loc.Longitude)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return loc, nil
}

// Upsert updates the item's location in place, or inserts one if the
// item has none yet.
func (s *LocationStore) Upsert(ctx context.Context, itemID int64, latitude, longitude float64) (*domain.Location, error) {
	existing, err := s.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		result, err := s.q.ExecContext(ctx, `
			INSERT INTO locations (item_id, latitude, longitude) VALUES (?, ?, ?)
		`, itemID, latitude, longitude)
		if err != nil {
			return nil, fmt.Errorf("failed to create location: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert id: %w", err)
		}
		return &domain.Location{ID: id, ItemID: itemID, Latitude: latitude, Longitude: longitude}, nil
	}

	if _, err := s.q.ExecContext(ctx, `
		UPDATE locations SET latitude = ?, longitude = ? WHERE item_id = ?
	`, latitude, longitude, itemID); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	existing.Latitude = latitude
	existing.Longitude = longitude
	return existing, nil
}

func (s *LocationStore) DeleteByItemID(ctx context.Context, itemID int64) error {
	if _, err := s.q.ExecContext(ctx, `
		DELETE FROM locations WHERE item_id = ?
	`, itemID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}
