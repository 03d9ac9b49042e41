package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ehatamm/project/internal/domain"
	"github.com/ehatamm/project/internal/platform/postgres"
	"github.com/ehatamm/project/internal/store"
	"github.com/ehatamm/project/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
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

func TestNewPostgresProjectStore_NilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		postgres.NewPostgresProjectStore(nil, nil)
	})
}

func TestPostgresProjectStore_SaveAndFind(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		projectStore := postgres.NewPostgresProjectStore(tx, nil, postgres.WithClock(fixedClock(created)))

		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		input := newTestProject("E-commerce Platform")
		saved, err := projectStore.Save(ctx, input)
		require.NoError(t, err)

		assert.NotZero(t, saved.ID, "store should assign an id")
		assert.Zero(t, input.ID, "input should not be modified")
		assert.True(t, saved.CreatedAt.Equal(created))
		assert.True(t, saved.UpdatedAt.Equal(created))

		found, err := projectStore.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.True(t, saved.Equal(found), "found project should match saved project")
		assert.True(t, found.CreatedAt.Equal(created))

		exists, err := projectStore.ExistsByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestPostgresProjectStore_NullDescription(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		projectStore := postgres.NewPostgresProjectStore(tx, nil)
		ctx := context.Background()

		p := newTestProject("No description")
		p.Description = nil

		saved, err := projectStore.Save(ctx, p)
		require.NoError(t, err)

		found, err := projectStore.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Description)
	})
}

func TestPostgresProjectStore_Update(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		updated := created.Add(time.Hour)
		ctx := context.Background()

		saved, err := postgres.NewPostgresProjectStore(tx, nil, postgres.WithClock(fixedClock(created))).
			Save(ctx, newTestProject("Original"))
		require.NoError(t, err)

		projectStore := postgres.NewPostgresProjectStore(tx, nil, postgres.WithClock(fixedClock(updated)))

		change := saved.Clone()
		change.Name = "Renamed"
		change.EndDate = civil.Date{Year: 2025, Month: time.June, Day: 30}

		result, err := projectStore.Save(ctx, change)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, result.ID)
		assert.Equal(t, "Renamed", result.Name)
		assert.True(t, result.CreatedAt.Equal(created), "created_at should be preserved")
		assert.True(t, result.UpdatedAt.Equal(updated), "updated_at should be refreshed")

		found, err := projectStore.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.True(t, result.Equal(found))
	})
}

func TestPostgresProjectStore_NotFound(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		projectStore := postgres.NewPostgresProjectStore(tx, nil)
		ctx := context.Background()

		_, err := projectStore.FindByID(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrProjectNotFound)

		missing := newTestProject("Ghost")
		missing.ID = 999999
		_, err = projectStore.Save(ctx, missing)
		assert.ErrorIs(t, err, store.ErrProjectNotFound)

		exists, err := projectStore.ExistsByID(ctx, 999999)
		require.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, projectStore.DeleteByID(ctx, 999999), "deleting a missing id is a no-op")
	})
}

func TestPostgresProjectStore_FindAllAndDelete(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		projectStore := postgres.NewPostgresProjectStore(tx, nil)
		ctx := context.Background()

		_, err := tx.ExecContext(ctx, `DELETE FROM projects`)
		require.NoError(t, err)

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

		_, err = projectStore.FindByID(ctx, first.ID)
		assert.ErrorIs(t, err, store.ErrProjectNotFound)

		all, err = projectStore.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestPostgresProjectStore_CheckConstraint(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		projectStore := postgres.NewPostgresProjectStore(tx, nil)

		p := newTestProject("Backwards")
		p.StartDate, p.EndDate = p.EndDate, p.StartDate

		_, err := projectStore.Save(context.Background(), p)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresProjectStore_Ping(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	assert.NoError(t, postgres.NewPostgresProjectStore(db, nil).Ping(context.Background()))

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		assert.NoError(t, postgres.NewPostgresProjectStore(tx, nil).Ping(context.Background()))
	})
}
