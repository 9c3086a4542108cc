package handlers

import (
	"net/http"

	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

type UpdatePaymentMethodRequest struct {
	Type  string `json:"type" binding:"required"`
	Last4 string `json:"last4" binding:"required,len=4"`
}

// UpdatePaymentMethod changes type/last4 on a payment method the caller owns
func (h *Handler) UpdatePaymentMethod(c *gin.Context) {
	actor := middleware.GetIdentity(c)

	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pm, err := h.Payments.Update(c.Param("id"), req.Type, req.Last4, actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment method updated",
		"payment_method": pm,
	})
}

// GetMyPaymentMethods lists the caller's payment methods
func (h *Handler) GetMyPaymentMethods(c *gin.Context) {
	actor := middleware.GetIdentity(c)
	methods, err := h.Payments.ListForActor(actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":           len(methods),
		"payment_methods": methods,
	})
}
