package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/controllers/booking_controllers"
	"github.com/speedywheel/rental/middlewares/auth"
)

func RegisterBookingRoutes(router *gin.Engine, db *pgxpool.Pool) {
	bookingController := booking_controllers.NewBookingController(db)

	// Creating a booking acts on behalf of a specific user, so it is the one
	// route gated on a matching bearer token.
	protected := router.Group("/")
	protected.Use(auth.RequireBookingOwner())
	{
		protected.POST("/cart-rent", bookingController.CreateBooking)
	}

	router.GET("/booked/:email", bookingController.GetBookingsByEmail)
	router.GET("/car-booked/:id", bookingController.GetBookingsByID)
	router.DELETE("/rented-car/:id", bookingController.CancelBooking)
}
