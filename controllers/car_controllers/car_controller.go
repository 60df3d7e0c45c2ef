package car_controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/models/car_models"
)

// CarController holds dependencies for catalog reads.
type CarController struct {
	DB *pgxpool.Pool
}

// NewCarController creates a new instance of CarController.
func NewCarController(db *pgxpool.Pool) *CarController {
	return &CarController{
		DB: db,
	}
}

// GetCars returns the full catalog.
func (cc *CarController) GetCars(c *gin.Context) {
	cars, err := car_models.GetAllCars(c.Request.Context(), cc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cars"})
		return
	}
	c.JSON(http.StatusOK, cars)
}

// GetCar serves both documented catalog lookups through one path parameter:
// a key that parses as a UUID is an id lookup, anything else is a model-name
// lookup. An unknown key is a null success payload, not an error status.
func (cc *CarController) GetCar(c *gin.Context) {
	key := c.Param("key")

	var (
		car *car_models.Car
		err error
	)
	if id, parseErr := uuid.Parse(key); parseErr == nil {
		car, err = car_models.GetCarByID(c.Request.Context(), cc.DB, id)
	} else {
		car, err = car_models.GetCarByModel(c.Request.Context(), cc.DB, key)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch car"})
		return
	}

	c.JSON(http.StatusOK, car)
}
