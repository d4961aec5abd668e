package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-apparel-api/internal/cart"
)

// ==================== FAKE SERVICE ====================

type fakeCheckoutService struct {
	quoteFunc    func(ctx context.Context, userID string, authed bool) (QuoteResponse, error)
	checkoutFunc func(ctx context.Context, userID string, req CheckoutRequest) (CheckoutResponse, error)
}

func (f *fakeCheckoutService) Quote(ctx context.Context, userID string, authed bool) (QuoteResponse, error) {
	if f.quoteFunc != nil {
		return f.quoteFunc(ctx, userID, authed)
	}
	return QuoteResponse{}, nil
}

func (f *fakeCheckoutService) Checkout(ctx context.Context, userID string, req CheckoutRequest) (CheckoutResponse, error) {
	if f.checkoutFunc != nil {
		return f.checkoutFunc(ctx, userID, req)
	}
	return CheckoutResponse{}, nil
}

// ==================== TESTS ====================

func TestCheckoutHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := `{
		"address": {"line1": "1 High Street", "city": "London", "postcode": "N1 1AA", "country": "GB"},
		"customer": {"firstName": "Sam", "email": "sam@example.com"}
	}`

	t.Run("success_returns_session", func(t *testing.T) {
		svc := &fakeCheckoutService{
			checkoutFunc: func(_ context.Context, userID string, _ CheckoutRequest) (CheckoutResponse, error) {
				assert.Equal(t, "u1", userID)
				return CheckoutResponse{OrderID: "ord-1", Token: "snap-token", RedirectURL: "https://pay.example"}, nil
			},
		}

		handler := NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(validBody))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", "u1")

		handler.Checkout(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "snap-token")
	})

	t.Run("invalid_json_payload", func(t *testing.T) {
		handler := NewHandler(&fakeCheckoutService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{invalid}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", "u1")

		handler.Checkout(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty_cart_maps_to_unprocessable", func(t *testing.T) {
		svc := &fakeCheckoutService{
			checkoutFunc: func(context.Context, string, CheckoutRequest) (CheckoutResponse, error) {
				return CheckoutResponse{}, cart.ErrCartEmpty
			},
		}

		handler := NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(validBody))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", "u1")

		handler.Checkout(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("gateway_failure_maps_to_bad_gateway", func(t *testing.T) {
		svc := &fakeCheckoutService{
			checkoutFunc: func(context.Context, string, CheckoutRequest) (CheckoutResponse, error) {
				return CheckoutResponse{}, ErrPaymentSession
			},
		}

		handler := NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(validBody))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", "u1")

		handler.Checkout(c)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestCheckoutHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("anonymous_quote_is_unauthed", func(t *testing.T) {
		svc := &fakeCheckoutService{
			quoteFunc: func(_ context.Context, userID string, authed bool) (QuoteResponse, error) {
				assert.Empty(t, userID)
				assert.False(t, authed)
				return QuoteResponse{}, nil
			},
		}

		handler := NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/checkout/quote", nil)

		handler.Quote(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("logged_in_quote_is_authed", func(t *testing.T) {
		svc := &fakeCheckoutService{
			quoteFunc: func(_ context.Context, userID string, authed bool) (QuoteResponse, error) {
				assert.Equal(t, "u1", userID)
				assert.True(t, authed)
				return QuoteResponse{}, nil
			},
		}

		handler := NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/checkout/quote", nil)
		c.Set("user_id_validated", "u1")

		handler.Quote(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
