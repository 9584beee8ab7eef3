package changeset

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/zonechange/internal/db/models"
	"github.com/GoPowerDNS-Admin/zonechange/internal/engine"
	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

// setupTestDB creates a file backed SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.ChangeSet{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func stagedChanges() []engine.Change {
	r := zone.Record{Name: "www", IP: "1.1.1.1"}

	return []engine.Change{{
		Action: engine.ActionSetRecord,
		Type:   zone.TypeA,
		Record: r,
		Mode:   engine.ModeOverride,
		Ops: []engine.Operation{
			{Action: engine.ActionRemoveRecord, Type: zone.TypeCNAME, Record: zone.Record{Name: "www"}},
			{Action: engine.ActionAppendRecord, Type: zone.TypeA, Record: r},
		},
	}}
}

func TestNilDB(t *testing.T) {
	_, err := Get(nil, "x")
	require.ErrorIs(t, err, ErrDBNil)

	_, err = GetAll(nil)
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Save(nil, "x", "example.com.", nil)
	require.ErrorIs(t, err, ErrDBNil)

	require.ErrorIs(t, Delete(nil, "x"), ErrDBNil)
}

func TestEmptyName(t *testing.T) {
	db := setupTestDB(t)

	_, err := Get(db, "")
	require.ErrorIs(t, err, ErrChangeSetNameEmpty)

	_, err = Save(db, "", "example.com.", nil)
	require.ErrorIs(t, err, ErrChangeSetNameEmpty)

	require.ErrorIs(t, Delete(db, ""), ErrChangeSetNameEmpty)
}

func TestSaveAndGet(t *testing.T) {
	db := setupTestDB(t)

	created, err := Save(db, "migrate-www", "example.com.", stagedChanges())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, created.UUID, 36)

	got, err := Get(db, "migrate-www")
	require.NoError(t, err)
	assert.Equal(t, created.UUID, got.UUID)
	assert.Equal(t, "example.com.", got.Zone)

	changes, err := Changes(got)
	require.NoError(t, err)
	assert.Equal(t, stagedChanges(), changes)
}

func TestSaveUpdatesExisting(t *testing.T) {
	db := setupTestDB(t)

	first, err := Save(db, "www", "example.com.", stagedChanges())
	require.NoError(t, err)

	second, err := Save(db, "www", "example.org.", nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.UUID, second.UUID)

	got, err := Get(db, "www")
	require.NoError(t, err)
	assert.Equal(t, "example.org.", got.Zone)

	changes, err := Changes(got)
	require.NoError(t, err)
	assert.Empty(t, changes)

	all, err := GetAll(db)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := Get(db, "missing")
	require.ErrorIs(t, err, ErrChangeSetNotFound)
}

func TestGetAllOrdered(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"b", "c", "a"} {
		_, err := Save(db, name, "example.com.", nil)
		require.NoError(t, err)
	}

	all, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 3)

	names := make([]string, 0, len(all))
	for _, cs := range all {
		names = append(names, cs.Name)
	}

	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := Save(db, "www", "example.com.", stagedChanges())
	require.NoError(t, err)

	require.NoError(t, Delete(db, "www"))
	require.ErrorIs(t, Delete(db, "www"), ErrChangeSetNotFound)

	_, err = Get(db, "www")
	require.ErrorIs(t, err, ErrChangeSetNotFound)
}

func TestChangesNil(t *testing.T) {
	changes, err := Changes(nil)
	require.NoError(t, err)
	assert.Empty(t, changes)
}
