package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/avolkov/whereis/internal/domain"
	"github.com/avolkov/whereis/internal/geo"
	"github.com/avolkov/whereis/internal/store"
)

// ItemService owns the composite item operations. Multi-table writes
// run inside a single transaction so a failed dependent insert cannot
// leave an item without its intended attachment.
type ItemService struct {
	db        *sql.DB
	items     *store.ItemStore
	photos    *store.PhotoStore
	locations *store.LocationStore
	logger    *slog.Logger
}

func NewItemService(db *sql.DB, logger *slog.Logger) *ItemService {
	return &ItemService{
		db:        db,
		items:     store.NewItemStore(db),
		photos:    store.NewPhotoStore(db),
		locations: store.NewLocationStore(db),
		logger:    logger,
	}
}

// ItemInput carries the fields gathered by the item form. PhotoURI,
// Latitude and Longitude are optional; a location is only stored when
// both coordinates are present.
type ItemInput struct {
	Name        string
	Description string
	PhotoURI    *string
	Latitude    *float64
	Longitude   *float64
}

// ItemDetail is an item with its dependent rows, for detail rendering.
type ItemDetail struct {
	*domain.Item
	Photo    *domain.Photo
	Location *domain.Location
}

// CreateItem validates the input and persists the item together with
// its optional photo and location rows, all-or-nothing.
func (s *ItemService) CreateItem(ctx context.Context, in ItemInput) (*domain.Item, error) {
	if err := domain.ValidateItem(in.Name, in.Description); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	item, err := store.NewItemStore(tx).Create(ctx, in.Name, in.Description)
	if err != nil {
		return nil, err
	}

	if in.PhotoURI != nil {
		if _, err := store.NewPhotoStore(tx).Upsert(ctx, item.ID, *in.PhotoURI); err != nil {
			return nil, err
		}
	}

	if in.Latitude != nil && in.Longitude != nil {
		if _, err := store.NewLocationStore(tx).Upsert(ctx, item.ID, *in.Latitude, *in.Longitude); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("item created", "item_id", item.ID,
		"has_photo", in.PhotoURI != nil,
		"has_location", in.Latitude != nil && in.Longitude != nil)
	return item, nil
}

// GetItem returns the item with its dependent rows, or nil when no item
// matches.
func (s *ItemService) GetItem(ctx context.Context, id int64) (*ItemDetail, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	photo, err := s.photos.GetByItemID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo for item %d: %w", id, err)
	}

	location, err := s.locations.GetByItemID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get location for item %d: %w", id, err)
	}

	return &ItemDetail{Item: item, Photo: photo, Location: location}, nil
}

// UpdateItem rewrites the item's name and description and upserts the
// provided dependents in one transaction. Absent input fields leave the
// existing photo or location untouched.
func (s *ItemService) UpdateItem(ctx context.Context, id int64, in ItemInput) (*domain.Item, error) {
	if err := domain.ValidateItem(in.Name, in.Description); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	items := store.NewItemStore(tx)
	if err := items.Update(ctx, id, in.Name, in.Description); err != nil {
		return nil, err
	}

	if in.PhotoURI != nil {
		if _, err := store.NewPhotoStore(tx).Upsert(ctx, id, *in.PhotoURI); err != nil {
			return nil, err
		}
	}

	if in.Latitude != nil && in.Longitude != nil {
		if _, err := store.NewLocationStore(tx).Upsert(ctx, id, *in.Latitude, *in.Longitude); err != nil {
			return nil, err
		}
	}

	item, err := items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("item updated", "item_id", id)
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("item deleted", "item_id", id)
	return nil
}

func (s *ItemService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.items.List(ctx)
}

func (s *ItemService) ListItemsWithPhotos(ctx context.Context) ([]*domain.ItemWithPhoto, error) {
	return s.items.ListWithPhotos(ctx)
}

func (s *ItemService) SearchItems(ctx context.Context, query string) ([]*domain.Item, error) {
	return s.items.Search(ctx, query)
}

// AttachPhoto sets the item's photo URI, replacing any existing one.
func (s *ItemService) AttachPhoto(ctx context.Context, itemID int64, photoURI string) (*domain.Photo, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item %d: %w", itemID, store.ErrNotFound)
	}
	return s.photos.Upsert(ctx, itemID, photoURI)
}

// ListItemsWithLocations lists every item, then fetches each item's
// location and drops items without one. The per-item lookup is fine at
// personal-catalog scale; a shared dataset would want a join instead.
func (s *ItemService) ListItemsWithLocations(ctx context.Context) ([]*domain.ItemWithLocation, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	located := make([]*domain.ItemWithLocation, 0, len(items))
	for _, item := range items {
		loc, err := s.locations.GetByItemID(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get location for item %d: %w", item.ID, err)
		}
		if loc == nil {
			continue
		}
		located = append(located, &domain.ItemWithLocation{
			Item:      *item,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		})
	}

	return located, nil
}

// MapRegion computes the viewport covering every located item, or
// fallback when none have a location.
func (s *ItemService) MapRegion(ctx context.Context, fallback geo.Region) (geo.Region, error) {
	located, err := s.ListItemsWithLocations(ctx)
	if err != nil {
		return geo.Region{}, err
	}

	points := make([]geo.Point, 0, len(located))
	for _, item := range located {
		points = append(points, geo.Point{Latitude: item.Latitude, Longitude: item.Longitude})
	}

	return geo.ComputeRegion(points, fallback), nil
}
