package payment_models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/logger"
)

// Payment is a completed charge record superseding a Booking. Its id equals
// the id of the booking it pays for, so a booking and a payment sharing an id
// are mutually exclusive in steady state.
type Payment struct {
	ID            uuid.UUID `json:"_id"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewPayment creates a Payment struct for the given booking id.
func NewPayment(bookingID uuid.UUID, email string, amount float64, transactionID string) *Payment {
	return &Payment{
		ID:            bookingID,
		Email:         email,
		Amount:        amount,
		TransactionID: transactionID,
		CreatedAt:     time.Now(),
	}
}

// CreatePayment inserts a payment record. The primary key on the booking id
// makes a concurrent duplicate completion fail here instead of leaving two
// payment rows for one booking.
func CreatePayment(ctx context.Context, db *pgxpool.Pool, payment *Payment) error {
	logger.InfoLogger.Infof("Recording payment %s for %s", payment.ID, payment.Email)

	query := `
		INSERT INTO payments (id, email, amount, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := db.Exec(ctx, query,
		payment.ID, payment.Email, payment.Amount, payment.TransactionID, payment.CreatedAt,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert payment %s: %v", payment.ID, err)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	logger.InfoLogger.Infof("Payment %s recorded", payment.ID)
	return nil
}

// GetPaymentsByEmail returns all payments owned by the email, unordered.
func GetPaymentsByEmail(ctx context.Context, db *pgxpool.Pool, email string) ([]Payment, error) {
	rows, err := db.Query(ctx, `
		SELECT id, email, amount, transaction_id, created_at
		FROM payments
		WHERE email = $1`, email)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch payments for %s: %v", email, err)
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	payments := []Payment{}
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.Email, &p.Amount, &p.TransactionID, &p.CreatedAt); err != nil {
			logger.ErrorLogger.Errorf("Failed to scan payment row: %v", err)
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading payments: %w", err)
	}

	return payments, nil
}

// CountPaymentsByID reports how many payment rows carry the given id.
func CountPaymentsByID(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (int, error) {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE id = $1`, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}
