package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/speedywheel/rental/utils"
	"github.com/speedywheel/rental/utils/jwt_token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/cart-rent", RequireBookingOwner(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func postBooking(t *testing.T, r *gin.Engine, token string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/cart-rent", bytes.NewBuffer(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingHeaderIsUnauthorized(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	// No Authorization header is 401 regardless of body content.
	w := postBooking(t, r, "", map[string]any{"email": "rider@example.com"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized access")
}

func TestInvalidTokenIsForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	w := postBooking(t, r, "Bearer not-a-real-token", map[string]any{"email": "rider@example.com"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized access")
}

func TestMalformedHeaderIsForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	w := postBooking(t, r, "Token abc123", map[string]any{"email": "rider@example.com"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized access")
}

func TestMatchingEmailPasses(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	token, err := jwt_token.IssueToken("rider@example.com")
	require.NoError(t, err)

	w := postBooking(t, r, "Bearer "+token, map[string]any{"email": "rider@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rider@example.com")
}

func TestMismatchedEmailIsForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	token, err := jwt_token.IssueToken("rider@example.com")
	require.NoError(t, err)

	// A valid token must not let its holder act as another user.
	w := postBooking(t, r, "Bearer "+token, map[string]any{"email": "someone-else@example.com"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
	assert.Contains(t, w.Body.String(), utils.ErrForbidden.Error())
}

func TestBodyWithoutEmailIsForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	token, err := jwt_token.IssueToken("rider@example.com")
	require.NoError(t, err)

	w := postBooking(t, r, "Bearer "+token, map[string]any{"carId": "abc"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
}
