package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoStoreGetByItemID_Absent(t *testing.T) {
	d := openTestDB(t)
	items := NewItemStore(d)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	item, err := items.Create(ctx, "Wallet", "Coat pocket")
	require.NoError(t, err)

	photo, err := photos.GetByItemID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, photo)
}

func TestPhotoStoreUpsert_InsertsWhenAbsent(t *testing.T) {
	d := openTestDB(t)
	items := NewItemStore(d)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	item, err := items.Create(ctx, "Wallet", "Coat pocket")
	require.NoError(t, err)

	photo, err := photos.Upsert(ctx, item.ID, "file:///photos/wallet.jpg")
	require.NoError(t, err)
	assert.NotZero(t, photo.ID)
	assert.Equal(t, item.ID, photo.ItemID)
	assert.Equal(t, "file:///photos/wallet.jpg", photo.PhotoURI)
}

func TestPhotoStoreUpsert_UpdatesInPlace(t *testing.T) {
	d := openTestDB(t)
	items := NewItemStore(d)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	item, err := items.Create(ctx, "Wallet", "Coat pocket")
	require.NoError(t, err)

	first, err := photos.Upsert(ctx, item.ID, "file:///photos/old.jpg")
	require.NoError(t, err)
	second, err := photos.Upsert(ctx, item.ID, "file:///photos/new.jpg")
	require.NoError(t, err)

	// Same row, mutated in place: no duplicate was created.
	assert.Equal(t, first.ID, second.ID)

	var count int
	err = d.QueryRow("SELECT COUNT(*) FROM photos WHERE item_id = ?", item.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	current, err := photos.GetByItemID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "file:///photos/new.jpg", current.PhotoURI)
}

func TestPhotoStoreDeleteByItemID(t *testing.T) {
	d := openTestDB(t)
	items := NewItemStore(d)
	photos := NewPhotoStore(d)
	ctx := context.Background()

	item, err := items.Create(ctx, "Wallet", "Coat pocket")
	require.NoError(t, err)
	_, err = photos.Upsert(ctx, item.ID, "file:///photos/wallet.jpg")
	require.NoError(t, err)

	require.NoError(t, photos.DeleteByItemID(ctx, item.ID))

	photo, err := photos.GetByItemID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, photo)
}
