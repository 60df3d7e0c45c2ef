package payment_models

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/config/db"
	"github.com/speedywheel/rental/models/booking_models"
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

func TestCompletePaymentSupersedesBooking(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	email := "payer-" + uuid.NewString() + "@example.com"

	booking, err := booking_models.NewBooking(email, uuid.New(), "Mustang GT", 120.0)
	require.NoError(t, err)
	_, err = booking_models.CreateBooking(ctx, pool, booking)
	require.NoError(t, err)

	// The transition: insert the payment under the booking's id, then delete
	// the booking.
	payment := NewPayment(booking.ID, email, 120.0, "txn_test_1")
	require.NoError(t, CreatePayment(ctx, pool, payment))

	deleted, err := booking_models.DeleteBooking(ctx, pool, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := booking_models.GetBookingsByID(ctx, pool, booking.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	count, err := CountPaymentsByID(ctx, pool, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	payments, err := GetPaymentsByEmail(ctx, pool, email)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, booking.ID, payments[0].ID)
	assert.Equal(t, "txn_test_1", payments[0].TransactionID)
}

func TestDuplicateCompletionFailsInsert(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	email := "dup-" + uuid.NewString() + "@example.com"
	bookingID := uuid.New()

	require.NoError(t, CreatePayment(ctx, pool, NewPayment(bookingID, email, 50, "txn_a")))

	// The payments primary key closes the concurrent-completion race: the
	// second insert for the same booking id fails instead of duplicating.
	err := CreatePayment(ctx, pool, NewPayment(bookingID, email, 50, "txn_b"))
	assert.Error(t, err)

	count, err := CountPaymentsByID(ctx, pool, bookingID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
