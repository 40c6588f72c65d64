package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/whereis/internal/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	return d
}

func TestItemStoreCreate(t *testing.T) {
	items := NewItemStore(openTestDB(t))
	ctx := context.Background()

	item, err := items.Create(ctx, "Passport", "In the desk drawer")
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Passport", item.Name)
	assert.Equal(t, "In the desk drawer", item.Description)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestItemStoreGetByID(t *testing.T) {
	items := NewItemStore(openTestDB(t))
	ctx := context.Background()

	created, err := items.Create(ctx, "Winter Tires", "Back of the garage")
	require.NoError(t, err)

	retrieved, err := items.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, created.Name, retrieved.Name)
}

func TestItemStoreGetByID_Absent(t *testing.T) {
	items := NewItemStore(openTestDB(t))

	item, err := items.GetByID(context.Background(), 99999)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestItemStoreList(t *testing.T) {
	items := NewItemStore(openTestDB(t))
	ctx := context.Background()

	_, err := items.Create(ctx, "Keys", "Bowl by the door")
	require.NoError(t, err)
	_, err = items.Create(ctx, "Charger", "Bedside table")
	require.NoError(t, err)

	list, err := items.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestItemStoreListWithPhotos(t *testing.T) {
	d := openTestDB(t)
	items := NewItemStore(d)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	withPhoto, err := items.Create(ctx, "Ladder", "Shed")
	require.NoError(t, err)
	_, err = photos.Upsert(ctx, withPhoto.ID, "file:///photos/ladder.jpg")
	require.NoError(t, err)

	without, err := items.Create(ctx, "Drill", "Toolbox")
	require.NoError(t, err)

	list, err := items.ListWithPhotos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byID := map[int64]*string{}
	for _, it := range list {
		byID[it.ID] = it.PhotoURI
	}
	require.NotNil(t, byID[withPhoto.ID])
	assert.Equal(t, "file:///photos/ladder.jpg", *byID[withPhoto.ID])
	assert.Nil(t, byID[without.ID])
}

func TestItemStoreSearch(t *testing.T) {
	items := NewItemStore(openTestDB(t))
	ctx := context.Background()

	_, err := items.Create(ctx, "House Keys", "Bowl by the door")
	require.NoError(t, err)
	_, err = items.Create(ctx, "Car Keys", "Jacket pocket")
	require.NoError(t, err)
	_, err = items.Create(ctx, "Umbrella", "Car trunk")
	require.NoError(t, err)

	results, err := items.Search(ctx, "KEYS")
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "Car Keys", results[0].Name)
	assert.Equal(t, "House Keys", results[1].Name)
}

func TestItemStoreUpdate(t *testing.T) {
	items := NewItemStore(openTestDB(t))
	ctx := context.Background()

	item, err := items.Create(ctx, "Passport", "Desk drawer")
	require.NoError(t, err)

	err = items.Update(ctx, item.ID, "Passports", "Fireproof safe")
	require.NoError(t, err)

	updated, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Passports", updated.Name)
	assert.Equal(t, "Fireproof safe", updated.Description)
}

func TestItemStoreUpdate_NotFound(t *testing.T) {
	items := NewItemStore(openTestDB(t))

	err := items.Update(context.Background(), 99999, "Name", "Description")
	assert.Error(t, err)
}

func TestItemStoreDelete(t *testing.T) {
	items := NewItemStore(openTestDB(t))
	ctx := context.Background()

	item, err := items.Create(ctx, "Old Phone", "Junk drawer")
	require.NoError(t, err)

	err = items.Delete(ctx, item.ID)
	require.NoError(t, err)

	deleted, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestItemStoreDelete_NotFound(t *testing.T) {
	items := NewItemStore(openTestDB(t))

	err := items.Delete(context.Background(), 99999)
	assert.Error(t, err)
}

func TestItemStoreDelete_CascadesToDependents(t *testing.T) {
	d := openTestDB(t)
	items := NewItemStore(d)
	photos := NewPhotoStore(d)
	locations := NewLocationStore(d)
	ctx := context.Background()

	item, err := items.Create(ctx, "Bike", "Basement rack")
	require.NoError(t, err)
	_, err = photos.Upsert(ctx, item.ID, "file:///photos/bike.jpg")
	require.NoError(t, err)
	_, err = locations.Upsert(ctx, item.ID, 46.0569, 14.5058)
	require.NoError(t, err)

	require.NoError(t, items.Delete(ctx, item.ID))

	photo, err := photos.GetByItemID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, photo)

	loc, err := locations.GetByItemID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, loc)
}
