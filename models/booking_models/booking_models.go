package booking_models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/logger"
)

// Booking is a pending reservation of a car by a user, awaiting payment. Its
// state is implicit in its existence: a row means "pending", and the row is
// deleted when the booking is cancelled or superseded by a payment.
type Booking struct {
	ID        uuid.UUID `json:"_id"`
	Email     string    `json:"email"`
	CarID     uuid.UUID `json:"carId"`
	CarModel  string    `json:"carModel"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBooking creates a new Booking struct.
func NewBooking(email string, carID uuid.UUID, carModel string, price float64) (*Booking, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for booking: %w", err)
	}
	return &Booking{
		ID:        id,
		Email:     email,
		CarID:     carID,
		CarModel:  carModel,
		Price:     price,
		CreatedAt: time.Now(),
	}, nil
}

// CreateBooking inserts a new booking record. There is deliberately no
// uniqueness constraint beyond the id: a user may hold several pending
// bookings, including duplicates for the same car.
func CreateBooking(ctx context.Context, db *pgxpool.Pool, booking *Booking) (*Booking, error) {
	logger.InfoLogger.Infof("Attempting to create booking for %s on car %s", booking.Email, booking.CarID)

	if booking.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate UUID: %w", err)
		}
		booking.ID = id
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO bookings (id, email, car_id, car_model, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		booking.ID, booking.Email, booking.CarID, booking.CarModel,
		booking.Price, booking.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert booking for %s: %v", booking.Email, err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = insertedID
	logger.InfoLogger.Infof("Booking %s created for %s", booking.ID, booking.Email)
	return booking, nil
}

// GetBookingsByEmail returns all pending bookings owned by the email,
// unordered.
func GetBookingsByEmail(ctx context.Context, db *pgxpool.Pool, email string) ([]Booking, error) {
	rows, err := db.Query(ctx, `
		SELECT id, email, car_id, car_model, price, created_at
		FROM bookings
		WHERE email = $1`, email)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch bookings for %s: %v", email, err)
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// GetBookingsByID returns the at-most-one booking matching the id, wrapped as
// a slice to match the API's array response shape.
func GetBookingsByID(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) ([]Booking, error) {
	rows, err := db.Query(ctx, `
		SELECT id, email, car_id, car_model, price, created_at
		FROM bookings
		WHERE id = $1`, id)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch booking %s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// DeleteBooking removes a booking and reports how many rows went away.
// Deleting an absent id is not an error; callers treat zero rows as
// already-cancelled or already-completed.
func DeleteBooking(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (int64, error) {
	cmdTag, err := db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to delete booking %s: %v", id, err)
		return 0, fmt.Errorf("failed to delete booking: %w", err)
	}

	deleted := cmdTag.RowsAffected()
	logger.InfoLogger.Infof("Deleted %d booking row(s) for id %s", deleted, id)
	return deleted, nil
}

func collectBookings(rows pgx.Rows) ([]Booking, error) {
	bookings := []Booking{}
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.Email, &b.CarID, &b.CarModel, &b.Price, &b.CreatedAt); err != nil {
			logger.ErrorLogger.Errorf("Failed to scan booking row: %v", err)
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading bookings: %w", err)
	}
	return bookings, nil
}
