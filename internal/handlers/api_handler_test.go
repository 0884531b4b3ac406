package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"supply_manager/internal/handlers"
	"supply_manager/internal/models"
	"supply_manager/internal/redis"
	"supply_manager/internal/services"
	"supply_manager/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService resolves fixed tokens without Redis.
type stubAuthService struct {
	sessions map[string]*redis.SessionData
}

func (s *stubAuthService) Login(email, password, role string) (*models.User, string, error) {
	return nil, "", services.ErrInvalidCredentials
}

func (s *stubAuthService) Logout(token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *stubAuthService) Resolve(token string) (*redis.SessionData, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, redis.ErrSessionNotFound
	}
	return session, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderStore := store.NewOrderStore(nil)
	priceStore := store.NewPriceStore(nil)
	orderService := services.NewOrderService(orderStore, priceStore)
	priceService := services.NewPriceService(priceStore)
	authService := &stubAuthService{sessions: map[string]*redis.SessionData{
		"hotel-token":  {UserID: "h1", Name: "Grand Hotel Delhi", Role: "hotel"},
		"dealer-token": {UserID: "d1", Name: "Fresh Vegetables Co.", Role: "dealer"},
	}}

	apiHandler := handlers.NewAPIHandler(authService, orderService, priceService)

	router := gin.New()
	router.POST("/orders/", apiHandler.CreateOrders)
	router.DELETE("/orders/:id", apiHandler.DeleteOrder)
	router.GET("/hotel/dashboard", apiHandler.HotelDashboard)
	router.GET("/prices", apiHandler.ListPrices)
	dealer := router.Group("/dealer")
	{
		dealer.GET("/dashboard", apiHandler.DealerDashboard)
		dealer.PUT("/orders/status", apiHandler.UpdateItemStatus)
		dealer.POST("/prices", apiHandler.SetPrice)
		dealer.DELETE("/prices/:item", apiHandler.DeletePrice)
	}
	return router
}

func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func submitBody(items ...map[string]any) map[string]any {
	return map[string]any{
		"hotelId":   "h1",
		"hotelName": "Grand Hotel Delhi",
		"date":      "2024-01-01",
		"items":     items,
	}
}

func TestCreateOrdersEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("requires a session", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/orders/", "", submitBody())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("requires the hotel role", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/orders/", "dealer-token", submitBody())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("creates one order per item", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/orders/", "hotel-token", submitBody(
			map[string]any{"itemName": "Tomato", "quantity": 5, "unit": "kg"},
			map[string]any{"itemName": "Onion", "quantity": 2.5, "unit": "kg"},
		))
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Orders []models.Order `json:"orders"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Orders, 2)
		assert.Equal(t, "h1", resp.Orders[0].HotelID)
		assert.Equal(t, models.StatusPending, resp.Orders[0].Status)
		assert.NotEqual(t, resp.Orders[0].ID, resp.Orders[1].ID)
	})

	t.Run("rejects a bad quantity with 400", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/orders/", "hotel-token", submitBody(
			map[string]any{"itemName": "Tomato", "quantity": -1, "unit": "kg"},
		))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDealerFlow(t *testing.T) {
	router := newTestRouter(t)

	// Hotel submits, dealer prices and reconciles.
	w := doRequest(router, http.MethodPost, "/orders/", "hotel-token", submitBody(
		map[string]any{"itemName": "Tomato", "quantity": 5, "unit": "kg"},
		map[string]any{"itemName": "tomato", "quantity": 3, "unit": "kg"},
	))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/dealer/prices", "dealer-token", map[string]any{
		"itemName": "Tomato", "price": 20, "unit": "kg",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("dashboard aggregates the demand", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/dealer/dashboard?date=2024-01-01", "dealer-token", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp services.DealerDashboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2024-01-01", resp.Date)
		assert.Equal(t, 1, resp.Summary.TotalItems)
		assert.Equal(t, "160", resp.Summary.TotalValue.String())
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "8", resp.Items[0].TotalQuantity.String())
		assert.Len(t, resp.Items[0].Hotels, 2)
	})

	t.Run("status update needs a note for partial", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/dealer/orders/status", "dealer-token", map[string]any{
			"itemName": "Tomato", "date": "2024-01-01", "status": "partial", "note": "",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status update reconciles all matching orders", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/dealer/orders/status", "dealer-token", map[string]any{
			"itemName": "tomato", "date": "2024-01-01", "status": "partial", "note": "short by 2kg",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, http.MethodGet, "/hotel/dashboard?date=2024-01-01", "hotel-token", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp services.HotelDashboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Orders, 2)
		for _, line := range resp.Orders {
			assert.Equal(t, models.StatusPartial, line.Status)
			assert.Equal(t, "short by 2kg", line.DealerNote)
		}
	})

	t.Run("hotel cannot hit dealer surfaces", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/dealer/dashboard", "hotel-token", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPriceEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/dealer/prices", "dealer-token", map[string]any{
		"itemName": "Tomato", "price": 20, "unit": "kg",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("hotels can list prices", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/prices", "hotel-token", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Prices models.PriceTable `json:"prices"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp.Prices, "tomato")
		assert.Equal(t, "20", resp.Prices["tomato"].Amount.String())
	})

	t.Run("invalid price is rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/dealer/prices", "dealer-token", map[string]any{
			"itemName": "Tomato", "price": -3, "unit": "kg",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/dealer/prices/Tomato", "dealer-token", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, http.MethodGet, "/prices", "dealer-token", nil)
		var resp struct {
			Prices models.PriceTable `json:"prices"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Prices)
	})
}

func TestDeleteOrderEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/orders/", "hotel-token", submitBody(
		map[string]any{"itemName": "Tomato", "quantity": 5, "unit": "kg"},
	))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)

	w = doRequest(router, http.MethodDelete, "/orders/"+resp.Orders[0].ID, "hotel-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/hotel/dashboard?date=2024-01-01", "hotel-token", nil)
	var dashboard services.HotelDashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Empty(t, dashboard.Orders)

	// Absent id is still a 200.
	w = doRequest(router, http.MethodDelete, "/orders/missing", "hotel-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
