package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avolkov/whereis/internal/domain"
)

type ItemStore struct {
	q Querier
}

func NewItemStore(q Querier) *ItemStore {
	return &ItemStore{q: q}
}

func (s *ItemStore) Create(ctx context.Context, name, description string) (*domain.Item, error) {
	result, err := s.q.ExecContext(ctx, `
		INSERT INTO items (name, description) VALUES (?, ?)
	`, name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item := &domain.Item{}
	err := s.q.QueryRowContext(ctx, `
		SELECT id, name, description, created_at FROM items WHERE id = ?
	`, id).Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// List returns every item. Order is incidental (insertion order).
func (s *ItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, name, description, created_at FROM items
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// ListWithPhotos returns every item joined with its photo URI. Items
// without a photo have a nil PhotoURI.
func (s *ItemStore) ListWithPhotos(ctx context.Context) ([]*domain.ItemWithPhoto, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT i.id, i.name, i.description, i.created_at, p.photo_uri
		FROM items i LEFT JOIN photos p ON p.item_id = i.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items with photos: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var items []*domain.ItemWithPhoto
	for rows.Next() {
		item := &domain.ItemWithPhoto{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.PhotoURI); err != nil {
			return nil, fmt.Errorf("failed to scan item with photo: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items with photos: %w", err)
	}

	return items, nil
}

// Search returns items whose name contains query, case-insensitively.
func (s *ItemStore) Search(ctx context.Context, query string) ([]*domain.Item, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	rows, err := s.q.QueryContext(ctx, `
		SELECT id, name, description, created_at FROM items
		WHERE LOWER(name) LIKE ?
		ORDER BY name ASC
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

func (s *ItemStore) Update(ctx context.Context, id int64, name, description string) error {
	result, err := s.q.ExecContext(ctx, `
		UPDATE items SET name = ?, description = ? WHERE id = ?
	`, name, description, id)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}

	return nil
}

// Delete removes the item row; dependent photo and location rows are
// removed by the schema's cascade rules.
func (s *ItemStore) Delete(ctx context.Context, id int64) error {
	result, err := s.q.ExecContext(ctx, `
		DELETE FROM items WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}

	return nil
}
