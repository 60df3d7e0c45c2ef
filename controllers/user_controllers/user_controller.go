package user_controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/logger"
	"github.com/speedywheel/rental/models/user_models"
	"github.com/speedywheel/rental/utils/jwt_token"
)

// UserController holds dependencies for registration and token issuance.
type UserController struct {
	DB *pgxpool.Pool
}

// NewUserController creates a new instance of UserController.
func NewUserController(db *pgxpool.Pool) *UserController {
	return &UserController{
		DB: db,
	}
}

type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken signs a 7-day token for the posted email.
func (uc *UserController) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := jwt_token.IssueToken(req.Email)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to issue token for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// Register creates a user on first registration. Registering an email that
// already exists performs no insert and reports it as such.
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user := user_models.NewUser(req.Email, req.Name, req.PhotoURL)
	inserted, err := user_models.CreateUser(c.Request.Context(), uc.DB, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	if !inserted {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}

	c.JSON(http.StatusOK, user)
}
