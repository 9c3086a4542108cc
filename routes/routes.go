package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/identity"
	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, verifier identity.Verifier) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(verifier))
	{
		auth.GET("/profile", h.GetProfile)

		// Catalog, scoped to the caller's country
		auth.GET("/restaurants", h.ListRestaurants)
		auth.GET("/restaurants/:id/menu", h.GetMenu)

		// Order lifecycle
		auth.POST("/orders", h.CreateOrder)
		auth.POST("/orders/:id/items", h.AddOrderItem)
		auth.POST("/orders/:id/checkout", h.CheckoutOrder)
		auth.POST("/orders/:id/cancel", h.CancelOrder)
		auth.GET("/orders/my-orders", h.GetMyOrders)

		// Payment methods
		auth.GET("/payments", h.GetMyPaymentMethods)
		auth.PUT("/payments/:id", h.UpdatePaymentMethod)
	}
}
