package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/clients"
	"github.com/speedywheel/rental/controllers/payment_controllers"
	middleware "github.com/speedywheel/rental/middlewares"
)

func RegisterPaymentRoutes(router *gin.Engine, db *pgxpool.Pool, gateway clients.PaymentGateway) {
	paymentController := payment_controllers.NewPaymentController(db, gateway)

	router.POST("/create-payment-intent", middleware.NewRateLimiter("20-1m", "create-payment-intent"), paymentController.CreatePaymentIntent)
	router.POST("/payments", paymentController.CompletePayment)
	router.GET("/rented-car/:email", paymentController.GetPaymentsByEmail)
}
