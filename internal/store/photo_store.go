package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avolkov/whereis/internal/domain"
)

type PhotoStore struct {
	q Querier
}

func NewPhotoStore(q Querier) *PhotoStore {
	return &PhotoStore{q: q}
}

// GetByItemID returns the item's photo, or nil if it has none.
func (s *PhotoStore) GetByItemID(ctx context.Context, itemID int64) (*domain.Photo, error) {
	photo := &domain.Photo{}
	err := s.q.QueryRowContext(ctx, `
		SELECT id, item_id, photo_uri FROM photos WHERE item_id = ? LIMIT 1
	`, itemID).Scan(&photo.ID, &photo.ItemID, &photo.PhotoURI)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return photo, nil
}

// Upsert updates the item's photo in place, or inserts one if the item
// has none yet.
func (s *PhotoStore) Upsert(ctx context.Context, itemID int64, photoURI string) (*domain.Photo, error) {
	existing, err := s.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		result, err := s.q.ExecContext(ctx, `
			INSERT INTO photos (item_id, photo_uri) VALUES (?, ?)
		`, itemID, photoURI)
		if err != nil {
			return nil, fmt.Errorf("failed to create photo: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert id: %w", err)
		}
		return &domain.Photo{ID: id, ItemID: itemID, PhotoURI: photoURI}, nil
	}

	if _, err := s.q.ExecContext(ctx, `
		UPDATE photos SET photo_uri = ? WHERE item_id = ?
	`, photoURI, itemID); err != nil {
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}

	existing.PhotoURI = photoURI
	return existing, nil
}

func (s *PhotoStore) DeleteByItemID(ctx context.Context, itemID int64) error {
	if _, err := s.q.ExecContext(ctx, `
		DELETE FROM photos WHERE item_id = ?
	`, itemID); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	return nil
}
