// Package repository is the gorm-backed persistence layer. Every method
// states exactly which nested records it loads; nothing is fetched
// implicitly. The *gorm.DB handle is injected at construction, there is
// no package-level singleton.
package repository

import (
	"errors"
	"fmt"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"gorm.io/gorm"
)

// OrderFilter narrows ListOrders. Zero-valued fields apply no constraint.
type OrderFilter struct {
	UserID  string
	Country models.Country
}

// RestaurantFilter narrows ListRestaurants. A zero Country applies no constraint.
type RestaurantFilter struct {
	Country models.Country
}

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the schema for all models.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
	)
}

// ── Orders ─────────────────────────────────────────────────────────

// GetOrder loads one order with its items and each item's menu data.
func (r *Repository) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items.MenuItem").First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder persists a new order in the CREATED state with no items.
func (r *Repository) CreateOrder(userID string, country models.Country) (*models.Order, error) {
	order := models.Order{
		UserID:  userID,
		Country: country,
		Status:  models.StatusCreated,
	}
	if err := r.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// AddOrderItem appends one item to an order and returns it with menu data.
func (r *Repository) AddOrderItem(orderID, menuItemID string, quantity int) (*models.OrderItem, error) {
	item := models.OrderItem{
		OrderID:    orderID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
	}
	if err := r.db.Create(&item).Error; err != nil {
		return nil, err
	}
	if err := r.db.Preload("MenuItem").First(&item, "id = ?", item.ID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SetOrderStatus performs a conditional write: the transition only
// applies if the order is still in the expected status, so two racing
// transitions cannot both succeed against a stale read.
func (r *Repository) SetOrderStatus(orderID string, expected, next models.OrderStatus) (*models.Order, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, expected).
		Update("status", next)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: order %s is no longer %s", apperrors.ErrConflict, orderID, expected)
	}
	return r.GetOrder(orderID)
}

// ListOrders returns orders matching the filter, most recent first,
// with items and menu data.
func (r *Repository) ListOrders(filter OrderFilter) ([]models.Order, error) {
	query := r.db.Preload("Items.MenuItem")
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ── Catalog ────────────────────────────────────────────────────────

// GetMenuItem loads one menu item with its restaurant, which carries
// the country used for scoping decisions.
func (r *Repository) GetMenuItem(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Preload("Restaurant").First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: menu item %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListRestaurants returns restaurants matching the filter with their menus.
func (r *Repository) ListRestaurants(filter RestaurantFilter) ([]models.Restaurant, error) {
	query := r.db.Preload("MenuItems")
	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	var restaurants []models.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// GetRestaurant loads one restaurant without its menu.
func (r *Repository) GetRestaurant(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: restaurant %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// ListMenuItems returns the menu of a single restaurant.
func (r *Repository) ListMenuItems(restaurantID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Where("restaurant_id = ?", restaurantID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ── Payment methods ────────────────────────────────────────────────

func (r *Repository) GetPaymentMethod(id string) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	err := r.db.First(&pm, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: payment method %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// UpdatePaymentMethod applies the mutable fields only; UserID never changes.
func (r *Repository) UpdatePaymentMethod(id, methodType, last4 string) (*models.PaymentMethod, error) {
	res := r.db.Model(&models.PaymentMethod{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"type": methodType, "last4": last4})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: payment method %s", apperrors.ErrNotFound, id)
	}
	return r.GetPaymentMethod(id)
}

func (r *Repository) ListPaymentMethods(userID string) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := r.db.Where("user_id = ?", userID).Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// ── Users ──────────────────────────────────────────────────────────

// CreateUser persists a new user; a duplicate email is a Conflict.
func (r *Repository) CreateUser(user *models.User) error {
	var existing models.User
	err := r.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return fmt.Errorf("%w: email already registered", apperrors.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
