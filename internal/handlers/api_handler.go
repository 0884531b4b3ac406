package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"supply_manager/internal/models"
	"supply_manager/internal/redis"
	"supply_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	authService  services.AuthService
	orderService services.OrderService
	priceService services.PriceService
}

func NewAPIHandler(
	authService services.AuthService,
	orderService services.OrderService,
	priceService services.PriceService,
) *APIHandler {
	return &APIHandler{
		authService:  authService,
		orderService: orderService,
		priceService: priceService,
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// session resolves the bearer token, writing the 401 response itself when
// the caller is not authenticated or lacks the required role.
func (h *APIHandler) session(c *gin.Context, role string) (*redis.SessionData, bool) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
		return nil, false
	}
	session, err := h.authService.Resolve(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
		return nil, false
	}
	if role != "" && session.Role != role {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return nil, false
	}
	return session, true
}

type submitItemRequest struct {
	ItemName string      `json:"itemName"`
	Quantity json.Number `json:"quantity"`
	Unit     string      `json:"unit"`
}

type submitOrdersRequest struct {
	HotelID   string              `json:"hotelId"`
	HotelName string              `json:"hotelName"`
	Date      string              `json:"date"`
	Items     []submitItemRequest `json:"items" binding:"required"`
}

// CreateOrders handles POST /orders/ - one submission fans out into one
// order per item.
func (h *APIHandler) CreateOrders(c *gin.Context) {
	session, ok := h.session(c, string(models.RoleHotel))
	if !ok {
		return
	}

	var req submitOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	hotel := models.Hotel{ID: req.HotelID, Name: req.HotelName}
	if hotel.ID == "" {
		hotel = models.Hotel{ID: session.UserID, Name: session.Name}
	}

	items := make([]models.PendingItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.PendingItem{
			ItemName: item.ItemName,
			Quantity: item.Quantity.String(),
			Unit:     item.Unit,
		}
	}

	orders, err := h.orderService.SubmitOrders(hotel, items, req.Date)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create orders"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"orders": orders})
}

// DeleteOrder handles DELETE /orders/:id. Absent ids are a no-op.
func (h *APIHandler) DeleteOrder(c *gin.Context) {
	if _, ok := h.session(c, ""); !ok {
		return
	}
	h.orderService.DeleteOrder(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// HotelDashboard handles GET /hotel/dashboard?date= for the session's hotel.
func (h *APIHandler) HotelDashboard(c *gin.Context) {
	session, ok := h.session(c, string(models.RoleHotel))
	if !ok {
		return
	}
	dashboard := h.orderService.HotelDashboard(session.UserID, c.Query("date"))
	c.JSON(http.StatusOK, dashboard)
}

// DealerDashboard handles GET /dealer/dashboard?date=.
func (h *APIHandler) DealerDashboard(c *gin.Context) {
	if _, ok := h.session(c, string(models.RoleDealer)); !ok {
		return
	}
	dashboard := h.orderService.DealerDashboard(c.Query("date"))
	c.JSON(http.StatusOK, dashboard)
}

type updateStatusRequest struct {
	ItemName string `json:"itemName" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Note     string `json:"note"`
}

// UpdateItemStatus handles PUT /dealer/orders/status - bulk status update
// for every order of an item on a date.
func (h *APIHandler) UpdateItemStatus(c *gin.Context) {
	if _, ok := h.session(c, string(models.RoleDealer)); !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.orderService.UpdateItemStatus(req.ItemName, req.Date, models.OrderStatus(req.Status), req.Note)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ListPrices handles GET /prices. Hotels see the price list too.
func (h *APIHandler) ListPrices(c *gin.Context) {
	if _, ok := h.session(c, ""); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"prices": h.priceService.ListPrices()})
}

type setPriceRequest struct {
	ItemName string      `json:"itemName" binding:"required"`
	Price    json.Number `json:"price" binding:"required"`
	Unit     string      `json:"unit"`
}

// SetPrice handles POST /dealer/prices.
func (h *APIHandler) SetPrice(c *gin.Context) {
	if _, ok := h.session(c, string(models.RoleDealer)); !ok {
		return
	}

	var req setPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.priceService.SetPrice(req.ItemName, req.Price.String(), req.Unit); err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set price"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// DeletePrice handles DELETE /dealer/prices/:item.
func (h *APIHandler) DeletePrice(c *gin.Context) {
	if _, ok := h.session(c, string(models.RoleDealer)); !ok {
		return
	}
	h.priceService.DeletePrice(c.Param("item"))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
