package user_controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/speedywheel/rental/utils/jwt_token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	uc := NewUserController(nil) // token issuance never touches the store
	r.POST("/jwt", uc.IssueToken)
	return r
}

func TestIssueTokenEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := tokenRouter()

	payload, _ := json.Marshal(map[string]string{"email": "rider@example.com"})
	req, _ := http.NewRequest("POST", "/jwt", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	email, err := jwt_token.VerifyToken(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, "rider@example.com", email)
}

func TestIssueTokenEndpointRejectsBadEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := tokenRouter()

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`, `{"email":""}`} {
		req, _ := http.NewRequest("POST", "/jwt", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}
