package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/controllers/car_controllers"
)

func RegisterCarRoutes(router *gin.Engine, db *pgxpool.Pool) {
	carController := car_controllers.NewCarController(db)

	router.GET("/cars", carController.GetCars)
	// One parameter serves both the by-id and by-model lookups; the handler
	// disambiguates on whether the key parses as a UUID.
	router.GET("/cars/:key", carController.GetCar)
}
