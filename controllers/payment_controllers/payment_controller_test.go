package payment_controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway records the request it receives so tests can assert on the
// amount conversion without touching the real processor.
type fakeGateway struct {
	amount   int64
	currency string
	secret   string
	err      error
}

func (f *fakeGateway) CreatePaymentIntent(amount int64, currency string) (string, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

func intentRouter(gateway *fakeGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pc := NewPaymentController(nil, gateway)
	r.POST("/create-payment-intent", pc.CreatePaymentIntent)
	return r
}

func postIntent(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/create-payment-intent", bytes.NewBuffer(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentIntentConvertsToMinorUnits(t *testing.T) {
	gateway := &fakeGateway{secret: "pi_123_secret_456"}
	r := intentRouter(gateway)

	w := postIntent(t, r, map[string]any{"price": 19.99})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1999), gateway.amount)
	assert.Equal(t, "usd", gateway.currency)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123_secret_456", resp["clientSecret"])
}

func TestCreatePaymentIntentGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("processor unavailable")}
	r := intentRouter(gateway)

	w := postIntent(t, r, map[string]any{"price": 50})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreatePaymentIntentRejectsBadInput(t *testing.T) {
	gateway := &fakeGateway{secret: "unused"}
	r := intentRouter(gateway)

	for _, body := range []map[string]any{
		{},
		{"price": 0},
		{"price": -5},
		{"price": "free"},
	} {
		w := postIntent(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{120, 12000},
		{45.5, 4550},
		{0.01, 1},
		{89.999, 9000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, toMinorUnits(tc.price), "price %v", tc.price)
	}
}
