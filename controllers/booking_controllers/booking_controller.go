package booking_controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/models/booking_models"
)

// BookingController holds dependencies for booking operations.
type BookingController struct {
	DB *pgxpool.Pool
}

// NewBookingController creates a new instance of BookingController.
func NewBookingController(db *pgxpool.Pool) *BookingController {
	return &BookingController{
		DB: db,
	}
}

type CreateBookingRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	CarID    string  `json:"carId" binding:"required,uuid"`
	CarModel string  `json:"carModel"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// CreateBooking inserts a pending booking. The route is protected by the
// owner middleware, so the body email is already known to match the caller's
// token identity. Duplicate pending bookings are allowed.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carId"})
		return
	}

	booking, err := booking_models.NewBooking(req.Email, carID, req.CarModel, req.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	created, err := booking_models.CreateBooking(c.Request.Context(), bc.DB, booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetBookingsByEmail returns all pending bookings for the email, unordered.
func (bc *BookingController) GetBookingsByEmail(c *gin.Context) {
	email := c.Param("email")

	bookings, err := booking_models.GetBookingsByEmail(c.Request.Context(), bc.DB, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingsByID returns the at-most-one booking for the id as an array.
func (bc *BookingController) GetBookingsByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	bookings, err := booking_models.GetBookingsByID(c.Request.Context(), bc.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking deletes a booking. A missing id is not an error; the response
// just reports a zero count.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	deleted, err := booking_models.DeleteBooking(c.Request.Context(), bc.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
