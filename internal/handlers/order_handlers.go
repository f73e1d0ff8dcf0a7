package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/middleware"
	"github.com/01moynul/aguadelivery-golang/internal/models"
	"github.com/01moynul/aguadelivery-golang/internal/orders"
)

// --- Inputs ---

type OrderItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderInput is the checkout payload. Presence rules are enforced by
// the order service so the messages match the storefront's.
type CreateOrderInput struct {
	Items         []OrderItemInput `json:"items"`
	AddressID     string           `json:"addressId"`
	PaymentMethod string           `json:"paymentMethod"`
	PaymentData   map[string]any   `json:"paymentData"`
}

type UpdateOrderStatusInput struct {
	Status models.OrderStatus `json:"status"`
}

// CreateOrder handles POST /api/orders
func (h *Handlers) CreateOrder(c *gin.Context) {
	// 1. --- Bind JSON ---
	var input CreateOrderInput
	if !bindJSON(c, &input, "Dados do pedido inválidos") {
		return
	}

	// 2. --- Build Service Input ---
	items := make([]orders.ItemInput, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, orders.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	// 3. --- Place Order ---
	order, err := h.Orders.Create(c.Request.Context(), middleware.UserID(c), orders.CreateInput{
		Items:         items,
		AddressID:     input.AddressID,
		PaymentMethod: input.PaymentMethod,
		PaymentData:   input.PaymentData,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pedido criado com sucesso",
		"order":   order,
	})
}

// ListOrders handles GET /api/orders
func (h *Handlers) ListOrders(c *gin.Context) {
	list, err := h.Orders.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// GetOrder handles GET /api/orders/:id
func (h *Handlers) GetOrder(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus handles PUT /api/orders/:id/status
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if !bindJSON(c, &input, "Status inválido") {
		return
	}

	order, err := h.Orders.UpdateStatus(c.Request.Context(), middleware.UserID(c), c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Status do pedido atualizado",
		"order":   order,
	})
}
