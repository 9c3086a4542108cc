// Package service holds the managers that own the business rules of
// the ordering core. Each manager receives its collaborators at
// construction and consults the policy package before every mutation;
// a denied or invalid operation performs zero writes.
package service

import (
	"fmt"

	"food-ordering-api/apperrors"
	"food-ordering-api/identity"
	"food-ordering-api/models"
	"food-ordering-api/policy"
	"food-ordering-api/repository"
	"food-ordering-api/statemachine"
)

// OrderStore is the slice of persistence the order lifecycle needs.
type OrderStore interface {
	GetOrder(id string) (*models.Order, error)
	CreateOrder(userID string, country models.Country) (*models.Order, error)
	AddOrderItem(orderID, menuItemID string, quantity int) (*models.OrderItem, error)
	SetOrderStatus(orderID string, expected, next models.OrderStatus) (*models.Order, error)
	ListOrders(filter repository.OrderFilter) ([]models.Order, error)
	GetMenuItem(id string) (*models.MenuItem, error)
}

// OrderService owns the order state machine: creation, item addition,
// checkout, cancellation, and listing.
type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

// Create constructs a new order for the actor. The order's country is
// snapshotted from the actor at creation and never reassigned.
func (s *OrderService) Create(actor identity.Identity) (*models.Order, error) {
	if d := policy.Decide(actor, policy.ActionCreateOrder, policy.Resource{}); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, d.Reason)
	}
	return s.store.CreateOrder(actor.ID, actor.Country)
}

// AddItem appends a menu item to an order that is still CREATED.
// A non-ADMIN actor must own the order, and the menu item's restaurant
// must share the order's country.
func (s *OrderService) AddItem(orderID, menuItemID string, quantity int, actor identity.Identity) (*models.Order, error) {
	order, err := s.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	menuItem, err := s.store.GetMenuItem(menuItemID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", apperrors.ErrValidation)
	}
	if order.Status != models.StatusCreated {
		return nil, fmt.Errorf("%w: cannot modify order in status %s", apperrors.ErrInvalidState, order.Status)
	}

	res := policy.Resource{
		OwnerID:     order.UserID,
		Country:     order.Country,
		ItemCountry: menuItem.Restaurant.Country,
	}
	if d := policy.Decide(actor, policy.ActionAddOrderItem, res); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, d.Reason)
	}

	if _, err := s.store.AddOrderItem(order.ID, menuItem.ID, quantity); err != nil {
		return nil, err
	}
	return s.store.GetOrder(order.ID)
}

// Checkout transitions CREATED → PLACED. Only ADMIN, or a MANAGER who
// owns the order, may check out; the write is conditional on the order
// still being CREATED.
func (s *OrderService) Checkout(orderID string, actor identity.Identity) (*models.Order, error) {
	order, err := s.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanTransition(order.Status, models.StatusPlaced); err != nil {
		return nil, err
	}

	res := policy.Resource{OwnerID: order.UserID, Country: order.Country}
	if d := policy.Decide(actor, policy.ActionCheckoutOrder, res); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, d.Reason)
	}

	return s.store.SetOrderStatus(order.ID, models.StatusCreated, models.StatusPlaced)
}

// Cancel transitions an order to CANCELLED. The role check runs before
// the state check, so an unauthorized actor is told Forbidden even for
// an already-terminal order; an authorized one gets InvalidState.
func (s *OrderService) Cancel(orderID string, actor identity.Identity) (*models.Order, error) {
	order, err := s.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	res := policy.Resource{OwnerID: order.UserID, Country: order.Country}
	if d := policy.Decide(actor, policy.ActionCancelOrder, res); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, d.Reason)
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled); err != nil {
		return nil, err
	}

	return s.store.SetOrderStatus(order.ID, order.Status, models.StatusCancelled)
}

// ListForActor returns the actor's orders, most recent first. ADMIN
// sees every order; everyone else only their own, within their country.
func (s *OrderService) ListForActor(actor identity.Identity) ([]models.Order, error) {
	filter := repository.OrderFilter{}
	if !actor.IsAdmin() {
		filter.UserID = actor.ID
		filter.Country = actor.Country
	}
	return s.store.ListOrders(filter)
}
