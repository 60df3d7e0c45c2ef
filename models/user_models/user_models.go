package user_models

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/logger"
)

// User is created on first registration and never updated or deleted.
type User struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoURL"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User struct.
func NewUser(email, name, photoURL string) *User {
	return &User{
		Email:     email,
		Name:      name,
		PhotoURL:  photoURL,
		CreatedAt: time.Now(),
	}
}

// CreateUser inserts a user record. It reports false without error when the
// email is already registered, so a duplicate registration performs no insert.
func CreateUser(ctx context.Context, db *pgxpool.Pool, user *User) (bool, error) {
	logger.InfoLogger.Infof("Attempting to register user %s", user.Email)

	query := `
		INSERT INTO users (email, name, photo_url, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`

	cmdTag, err := db.Exec(ctx, query, user.Email, user.Name, user.PhotoURL, user.CreatedAt)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert user %s: %v", user.Email, err)
		return false, fmt.Errorf("failed to create user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.InfoLogger.Infof("User %s already exists, no insert performed", user.Email)
		return false, nil
	}

	logger.InfoLogger.Infof("User %s registered successfully", user.Email)
	return true, nil
}

// GetUserByEmail fetches a user record, returning (nil, nil) when the email
// is not registered.
func GetUserByEmail(ctx context.Context, db *pgxpool.Pool, email string) (*User, error) {
	user := &User{}
	query := `SELECT email, name, photo_url, created_at FROM users WHERE email = $1`

	err := db.QueryRow(ctx, query, email).Scan(
		&user.Email,
		&user.Name,
		&user.PhotoURL,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		logger.ErrorLogger.Errorf("Failed to fetch user %s: %v", email, err)
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}

	return user, nil
}

// CountUsersByEmail returns how many user rows carry the given email.
func CountUsersByEmail(ctx context.Context, db *pgxpool.Pool, email string) (int, error) {
	var count int
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
