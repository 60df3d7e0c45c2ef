package car_models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/logger"
)

// Car is a catalog entry. The catalog is read-only from the API's
// perspective; rows are written only by the boot-time seeder.
type Car struct {
	ID          uuid.UUID `json:"_id"`
	Model       string    `json:"model"`
	Brand       string    `json:"brand"`
	PricePerDay float64   `json:"pricePerDay"`
	Seats       int       `json:"seats"`
	FuelType    string    `json:"fuelType"`
	ImageURL    string    `json:"imageURL"`
	Description string    `json:"description"`
}

const carColumns = `id, model, brand, price_per_day, seats, fuel_type, image_url, description`

func scanCar(row pgx.Row) (*Car, error) {
	car := &Car{}
	err := row.Scan(
		&car.ID,
		&car.Model,
		&car.Brand,
		&car.PricePerDay,
		&car.Seats,
		&car.FuelType,
		&car.ImageURL,
		&car.Description,
	)
	if err != nil {
		return nil, err
	}
	return car, nil
}

// GetAllCars returns the full catalog.
func GetAllCars(ctx context.Context, db *pgxpool.Pool) ([]Car, error) {
	rows, err := db.Query(ctx, `SELECT `+carColumns+` FROM cars`)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch cars: %v", err)
		return nil, fmt.Errorf("failed to fetch cars: %w", err)
	}
	defer rows.Close()

	cars := []Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to scan car row: %v", err)
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, *car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading cars: %w", err)
	}

	return cars, nil
}

// GetCarByID fetches a single car, returning (nil, nil) when the id is
// unknown.
func GetCarByID(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (*Car, error) {
	car, err := scanCar(db.QueryRow(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			logger.WarnLogger.Warnf("Car with ID %s not found", id)
			return nil, nil
		}
		logger.ErrorLogger.Errorf("Failed to fetch car %s: %v", id, err)
		return nil, fmt.Errorf("database error fetching car: %w", err)
	}
	return car, nil
}

// GetCarByModel fetches a single car by its (non-unique) model display name,
// returning (nil, nil) when no car matches.
func GetCarByModel(ctx context.Context, db *pgxpool.Pool, model string) (*Car, error) {
	car, err := scanCar(db.QueryRow(ctx, `SELECT `+carColumns+` FROM cars WHERE model = $1 LIMIT 1`, model))
	if err != nil {
		if err == pgx.ErrNoRows {
			logger.WarnLogger.Warnf("Car with model %q not found", model)
			return nil, nil
		}
		logger.ErrorLogger.Errorf("Failed to fetch car by model %q: %v", model, err)
		return nil, fmt.Errorf("database error fetching car: %w", err)
	}
	return car, nil
}

// CountCars reports the catalog size; the seeder uses it to decide whether to
// load the seed file.
func CountCars(ctx context.Context, db *pgxpool.Pool) (int64, error) {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM cars`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return count, nil
}

// InsertCar writes a catalog entry, generating an id when the caller left it
// empty.
func InsertCar(ctx context.Context, db *pgxpool.Pool, car *Car) error {
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}

	query := `
		INSERT INTO cars (id, model, brand, price_per_day, seats, fuel_type, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := db.Exec(ctx, query,
		car.ID, car.Model, car.Brand, car.PricePerDay,
		car.Seats, car.FuelType, car.ImageURL, car.Description,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert car %q: %v", car.Model, err)
		return fmt.Errorf("failed to insert car: %w", err)
	}
	return nil
}
