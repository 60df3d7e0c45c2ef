package payment_controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/clients"
	"github.com/speedywheel/rental/logger"
	"github.com/speedywheel/rental/models/booking_models"
	"github.com/speedywheel/rental/models/payment_models"
)

// Every charge goes through the gateway in US dollars.
const paymentCurrency = "usd"

// PaymentController holds dependencies for payment-intent creation and
// payment completion.
type PaymentController struct {
	DB      *pgxpool.Pool
	Gateway clients.PaymentGateway
}

// NewPaymentController creates a new instance of PaymentController.
func NewPaymentController(db *pgxpool.Pool, gateway clients.PaymentGateway) *PaymentController {
	return &PaymentController{
		DB:      db,
		Gateway: gateway,
	}
}

// toMinorUnits converts a decimal price to an integer minor-unit amount,
// rounded to the nearest cent.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntent asks the gateway for a card-payable intent and returns
// its client secret verbatim. No retry on failure.
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	clientSecret, err := pc.Gateway.CreatePaymentIntent(toMinorUnits(req.Price), paymentCurrency)
	if err != nil {
		logger.ErrorLogger.Errorf("Payment gateway request failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

type CompletePaymentRequest struct {
	ID            string  `json:"_id" binding:"required,uuid"`
	Email         string  `json:"email" binding:"required,email"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
}

// CompletePayment records a payment and deletes the booking it supersedes.
// The two writes are a single logical transition but are not transactional: a
// delete failure after a successful insert leaves both rows, which is logged
// for operators rather than rolled back or surfaced to the caller.
func (pc *PaymentController) CompletePayment(c *gin.Context) {
	var req CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bookingID, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	ctx := c.Request.Context()
	payment := payment_models.NewPayment(bookingID, req.Email, req.Amount, req.TransactionID)
	if err := payment_models.CreatePayment(ctx, pc.DB, payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
		return
	}

	deleted, err := booking_models.DeleteBooking(ctx, pc.DB, bookingID)
	if err != nil {
		logger.ErrorLogger.Errorf("Payment %s recorded but booking delete failed, both records present: %v", bookingID, err)
	} else if deleted == 0 {
		logger.WarnLogger.Warnf("No pending booking %s found while recording payment, treating as already completed", bookingID)
	}

	c.JSON(http.StatusOK, payment)
}

// GetPaymentsByEmail returns all payments for the email, unordered.
func (pc *PaymentController) GetPaymentsByEmail(c *gin.Context) {
	email := c.Param("email")

	payments, err := payment_models.GetPaymentsByEmail(c.Request.Context(), pc.DB, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
