package user_models

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/config/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.RunMigrations(ctx, pool))
	return pool
}

func TestDuplicateRegistrationPerformsNoInsert(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	email := "reg-" + uuid.NewString() + "@example.com"

	inserted, err := CreateUser(ctx, pool, NewUser(email, "First Rider", ""))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = CreateUser(ctx, pool, NewUser(email, "Impostor", ""))
	require.NoError(t, err)
	assert.False(t, inserted)

	count, err := CountUsersByEmail(ctx, pool, email)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	user, err := GetUserByEmail(ctx, pool, email)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "First Rider", user.Name)
}

func TestGetUserByEmailUnknown(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	user, err := GetUserByEmail(ctx, pool, "ghost-"+uuid.NewString()+"@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
