package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

type AddOrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrder starts a new empty order for the caller
func (h *Handler) CreateOrder(c *gin.Context) {
	actor := middleware.GetIdentity(c)
	order, err := h.Orders.Create(actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created",
		"order":   order,
	})
}

// AddOrderItem appends a menu item to an order still being assembled
func (h *Handler) AddOrderItem(c *gin.Context) {
	actor := middleware.GetIdentity(c)
	orderID := c.Param("id")

	var req AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.AddItem(orderID, req.MenuItemID, req.Quantity, actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to order",
		"order":   order,
	})
}

// CheckoutOrder places the order
func (h *Handler) CheckoutOrder(c *gin.Context) {
	actor := middleware.GetIdentity(c)
	order, err := h.Orders.Checkout(c.Param("id"), actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed",
		"order":   order,
	})
}

// CancelOrder cancels the order
func (h *Handler) CancelOrder(c *gin.Context) {
	actor := middleware.GetIdentity(c)
	order, err := h.Orders.Cancel(c.Param("id"), actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled",
		"order":   order,
	})
}

// GetStateMachineInfo returns the order lifecycle for documentation
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var transitions []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		transitions = append(transitions, gin.H{"from": t.From, "to": t.To})
	}
	var terminal []models.OrderStatus
	for _, s := range []models.OrderStatus{models.StatusCreated, models.StatusPlaced, models.StatusCancelled} {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   transitions,
		"terminal_states": terminal,
	})
}

// GetMyOrders lists the caller's orders, most recent first
func (h *Handler) GetMyOrders(c *gin.Context) {
	actor := middleware.GetIdentity(c)
	orders, err := h.Orders.ListForActor(actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}
