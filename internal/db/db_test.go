package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	database, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, database.Close()) })

	assert.NoError(t, database.Ping())
}

func TestMigrationsCreateTables(t *testing.T) {
	database, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, database.Close()) })

	for _, table := range []string{"items", "photos", "locations"} {
		var name string
		err := database.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	database, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, database.Close()) })

	// A photo without a parent item must be rejected.
	_, err = database.Exec("INSERT INTO photos (item_id, photo_uri) VALUES (99999, 'file:///x.jpg')")
	assert.Error(t, err)
}

func TestDependentUniquePerItem(t *testing.T) {
	database, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, database.Close()) })

	res, err := database.Exec("INSERT INTO items (name, description) VALUES ('Keys', 'Front door keys')")
	require.NoError(t, err)
	itemID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = database.Exec("INSERT INTO photos (item_id, photo_uri) VALUES (?, 'a.jpg')", itemID)
	require.NoError(t, err)
	_, err = database.Exec("INSERT INTO photos (item_id, photo_uri) VALUES (?, 'b.jpg')", itemID)
	assert.Error(t, err, "second photo for the same item must violate the unique constraint")
}
