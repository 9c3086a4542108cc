package handlers

import (
	"net/http"

	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns the restaurants visible to the caller, with menus
func (h *Handler) ListRestaurants(c *gin.Context) {
	actor := middleware.GetIdentity(c)
	restaurants, err := h.Catalog.ListRestaurants(actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetMenu returns the menu for a restaurant the caller may see
func (h *Handler) GetMenu(c *gin.Context) {
	actor := middleware.GetIdentity(c)
	items, err := h.Catalog.GetMenu(c.Param("id"), actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}
