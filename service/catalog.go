package service

import (
	"fmt"

	"food-ordering-api/apperrors"
	"food-ordering-api/identity"
	"food-ordering-api/models"
	"food-ordering-api/policy"
	"food-ordering-api/repository"
)

// CatalogStore is the slice of persistence catalog scoping needs.
type CatalogStore interface {
	ListRestaurants(filter repository.RestaurantFilter) ([]models.Restaurant, error)
	GetRestaurant(id string) (*models.Restaurant, error)
	ListMenuItems(restaurantID string) ([]models.MenuItem, error)
}

// CatalogService filters restaurant and menu visibility by country.
type CatalogService struct {
	store CatalogStore
}

func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListRestaurants returns the restaurants the actor may see, each with
// its menu. Non-ADMIN actors only see their own country.
func (s *CatalogService) ListRestaurants(actor identity.Identity) ([]models.Restaurant, error) {
	filter := repository.RestaurantFilter{}
	if !actor.IsAdmin() {
		filter.Country = actor.Country
	}
	return s.store.ListRestaurants(filter)
}

// GetMenu returns a restaurant's menu items. A restaurant outside the
// actor's country is reported as NotFound, indistinguishable from one
// that does not exist, so existence never leaks across countries.
func (s *CatalogService) GetMenu(restaurantID string, actor identity.Identity) ([]models.MenuItem, error) {
	restaurant, err := s.store.GetRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	res := policy.Resource{Country: restaurant.Country}
	if d := policy.Decide(actor, policy.ActionViewMenu, res); !d.Allowed {
		return nil, fmt.Errorf("%w: restaurant %s", apperrors.ErrNotFound, restaurantID)
	}

	return s.store.ListMenuItems(restaurant.ID)
}
