package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/logger"
	"github.com/speedywheel/rental/models/car_models"
)

// SeedCars loads the car catalog from a JSON file when the table is empty.
// The catalog is read-only through the API, so this is the only write path
// for cars.
func SeedCars(ctx context.Context, pool *pgxpool.Pool, path string) error {
	count, err := car_models.CountCars(ctx, pool)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open car seed file %s: %w", path, err)
	}
	defer file.Close()

	var cars []car_models.Car
	if err := json.NewDecoder(file).Decode(&cars); err != nil {
		return fmt.Errorf("failed to decode car seed data: %w", err)
	}

	for i := range cars {
		if err := car_models.InsertCar(ctx, pool, &cars[i]); err != nil {
			return err
		}
	}

	logger.InfoLogger.Infof("Seeded %d cars", len(cars))
	return nil
}
