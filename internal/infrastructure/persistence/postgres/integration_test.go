//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/OSUMed/feature-request-app/internal/domain/entities"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/persistence/postgres"
	"github.com/OSUMed/feature-request-app/internal/testutil"
)

func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("features"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), postgres.NewGormConfig("error"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = postgres.Close(db) })

	require.NoError(t, postgres.Migrate(db))
	return db
}

func TestPostgres_ConcurrentTogglesNeverDuplicate(t *testing.T) {
	db := newPostgresDB(t)
	repo := postgres.NewUpvoteRepository(db)

	user := testutil.CreateUser(t, db, "voter@example.com", entities.RoleUser)
	owner := testutil.CreateUser(t, db, "owner@example.com", entities.RoleUser)
	feature := testutil.CreateFeature(t, db, owner, "Concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Toggle(context.Background(), user.ID, feature.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows := testutil.CountRows(t, db, "upvotes", "user_id = ? AND feature_id = ?", user.ID, feature.ID)
	assert.LessOrEqual(t, rows, int64(1))
}

func TestPostgres_ListAndTransition(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()
	features := postgres.NewFeatureRequestRepository(db)
	upvotes := postgres.NewUpvoteRepository(db)

	owner := testutil.CreateUser(t, db, "owner@example.com", entities.RoleUser)
	first := testutil.CreateFeature(t, db, owner, "first")
	second := testutil.CreateFeature(t, db, owner, "second")

	_, err := upvotes.Toggle(ctx, owner.ID, second.ID)
	require.NoError(t, err)

	list, err := features.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	require.NoError(t, features.UpdateStatus(ctx, first.ID, entities.StatusCompleted))
	found, err := features.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, found.Status)

	missing, err := features.FindByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
