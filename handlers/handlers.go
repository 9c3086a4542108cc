// Package handlers is the thin gin layer over the services. It parses
// requests, hands the actor and inputs to a service, and maps taxonomy
// errors onto HTTP statuses. No authorization decision lives here.
package handlers

import (
	"food-ordering-api/apperrors"
	"food-ordering-api/service"

	"github.com/gin-gonic/gin"
)

// Handler bundles the services the routes dispatch to, injected at
// construction rather than reached through package globals.
type Handler struct {
	Auth     *service.AuthService
	Orders   *service.OrderService
	Catalog  *service.CatalogService
	Payments *service.PaymentService
}

func New(auth *service.AuthService, orders *service.OrderService, catalog *service.CatalogService, payments *service.PaymentService) *Handler {
	return &Handler{Auth: auth, Orders: orders, Catalog: catalog, Payments: payments}
}

// fail writes the taxonomy-mapped status and the error message.
func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
}
