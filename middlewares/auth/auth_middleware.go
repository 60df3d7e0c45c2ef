package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/speedywheel/rental/logger"
	"github.com/speedywheel/rental/utils"
	"github.com/speedywheel/rental/utils/jwt_token"
)

// RequireBookingOwner gates routes that mutate booking state on behalf of a
// specific user. A missing Authorization header is 401; a present but
// unusable token is 403 with the same message; a valid token whose email does
// not match the email in the request body is 403 "forbidden access". A valid
// token never lets its holder act as another user.
func RequireBookingOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.WarnLogger.Warn("Protected booking route called without Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "Unauthorized access"})
			return
		}

		var tokenString string
		if len(authHeader) > 7 && strings.ToLower(authHeader[:7]) == "bearer " {
			tokenString = authHeader[7:]
		} else {
			logger.WarnLogger.Warn("Invalid Authorization header format on protected booking route")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "Unauthorized access"})
			return
		}

		email, err := jwt_token.VerifyToken(tokenString)
		if err != nil {
			logger.WarnLogger.Warnf("Token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "Unauthorized access"})
			return
		}

		// The request body carries the email the caller claims to act for.
		// Read it here and restore it for the handler's own binding.
		rawBody, err := c.GetRawData()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": true, "message": "could not read request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(rawBody))

		var bodyData struct {
			Email string `json:"email"`
		}
		if len(rawBody) > 0 {
			if err := json.Unmarshal(rawBody, &bodyData); err != nil {
				logger.WarnLogger.Warnf("Could not unmarshal request body for owner check: %v", err)
			}
		}

		if bodyData.Email != email {
			logger.WarnLogger.Warnf("Body email %q does not match token identity %q", bodyData.Email, email)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": utils.ErrForbidden.Error()})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
