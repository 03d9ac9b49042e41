package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/platform/migrations"
	"github.com/ehatamm/project/internal/platform/sqlite"
	"github.com/ehatamm/project/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, opts ...sqlite.Option) *sqlite.SQLiteProjectStore {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "data", "projects.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlite.Migrate(ctx, db, migrations.CommandUp, nil))

	return sqlite.NewSQLiteProjectStore(db, nil, opts...)
}

func newTestProject(name string) *domain.Project {
	desc := "Build a modern e-commerce platform"
	return &domain.Project{
		Name:        name,
		Description: &desc,
		StartDate:   civil.Date{Year: 2024, Month: time.January, Day: 1},
		EndDate:     civil.Date{Year: 2024, Month: time.December, Day: 31},
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), "")
	assert.Error(t, err)
}

func TestSQLiteProjectStore_SaveAndFind(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	projectStore := openTestStore(t, sqlite.WithClock(func() time.Time { return created }))
	ctx := context.Background()

	input := newTestProject("E-commerce Platform")
	saved, err := projectStore.Save(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, int64(1), saved.ID)
	assert.Zero(t, input.ID, "input should not be modified")
	assert.Equal(t, created, saved.CreatedAt)
	assert.Equal(t, created, saved.UpdatedAt)

	found, err := projectStore.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)

	exists, err := projectStore.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSQLiteProjectStore_NullDescription(t *testing.T) {
	projectStore := openTestStore(t)
	ctx := context.Background()

	p := newTestProject("No description")
	p.Description = nil

	saved, err := projectStore.Save(ctx, p)
	require.NoError(t, err)

	found, err := projectStore.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Description)
}

func TestSQLiteProjectStore_Update(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	projectStore := openTestStore(t, sqlite.WithClock(func() time.Time { return clock() }))
	ctx := context.Background()

	saved, err := projectStore.Save(ctx, newTestProject("Original"))
	require.NoError(t, err)

	later := now.Add(90 * time.Minute)
	clock = func() time.Time { return later }

	change := saved.Clone()
	change.Name = "Renamed"
	change.Description = nil

	result, err := projectStore.Save(ctx, change)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, result.ID)
	assert.Equal(t, now, result.CreatedAt, "created_at should be preserved")
	assert.Equal(t, later, result.UpdatedAt, "updated_at should be refreshed")

	found, err := projectStore.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, result, found)
}

func TestSQLiteProjectStore_NotFound(t *testing.T) {
	projectStore := openTestStore(t)
	ctx := context.Background()

	_, err := projectStore.FindByID(ctx, 999)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)

	missing := newTestProject("Ghost")
	missing.ID = 999
	_, err = projectStore.Save(ctx, missing)
	assert.ErrorIs(t, err, store.ErrProjectNotFound)

	exists, err := projectStore.ExistsByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, projectStore.DeleteByID(ctx, 999))
}

func TestSQLiteProjectStore_FindAllAndDelete(t *testing.T) {
	projectStore := openTestStore(t)
	ctx := context.Background()

	empty, err := projectStore.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := projectStore.Save(ctx, newTestProject("First"))
	require.NoError(t, err)
	second, err := projectStore.Save(ctx, newTestProject("Second"))
	require.NoError(t, err)

	all, err := projectStore.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	require.NoError(t, projectStore.DeleteByID(ctx, first.ID))

	all, err = projectStore.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)
}

func TestSQLiteProjectStore_IDsAreNotReused(t *testing.T) {
	projectStore := openTestStore(t)
	ctx := context.Background()

	first, err := projectStore.Save(ctx, newTestProject("First"))
	require.NoError(t, err)
	require.NoError(t, projectStore.DeleteByID(ctx, first.ID))

	second, err := projectStore.Save(ctx, newTestProject("Second"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestSQLiteProjectStore_CheckConstraint(t *testing.T) {
	projectStore := openTestStore(t)

	p := newTestProject("Backwards")
	p.StartDate, p.EndDate = p.EndDate, p.StartDate

	_, err := projectStore.Save(context.Background(), p)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestSQLiteProjectStore_Ping(t *testing.T) {
	projectStore := openTestStore(t)
	assert.NoError(t, projectStore.Ping(context.Background()))
}

func TestMigrate_DownAndUp(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "projects.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlite.Migrate(ctx, db, migrations.CommandUp, nil))
	require.NoError(t, sqlite.Migrate(ctx, db, migrations.CommandStatus, nil))
	require.NoError(t, sqlite.Migrate(ctx, db, migrations.CommandDown, nil))

	_, err = sqlite.NewSQLiteProjectStore(db, nil).FindAll(ctx)
	assert.Error(t, err, "projects table should be gone after down")

	require.NoError(t, sqlite.Migrate(ctx, db, migrations.CommandUp, nil))
	_, err = sqlite.NewSQLiteProjectStore(db, nil).FindAll(ctx)
	assert.NoError(t, err)

	assert.Error(t, sqlite.Migrate(ctx, db, "sideways", nil))
}
