package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	repo := New(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

// SetOrderStatus must only apply when the order is still in the
// expected status, so one of two racing transitions loses.
func TestSetOrderStatusConditionalWrite(t *testing.T) {
	repo := newTestRepo(t)

	order, err := repo.CreateOrder("u-1", models.CountryIndia)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	placed, err := repo.SetOrderStatus(order.ID, models.StatusCreated, models.StatusPlaced)
	if err != nil {
		t.Fatalf("first transition: %v", err)
	}
	if placed.Status != models.StatusPlaced {
		t.Fatalf("status = %s, want PLACED", placed.Status)
	}

	// Second writer still believes the order is CREATED.
	if _, err := repo.SetOrderStatus(order.ID, models.StatusCreated, models.StatusCancelled); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("stale transition: err = %v, want ErrConflict", err)
	}

	reloaded, err := repo.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if reloaded.Status != models.StatusPlaced {
		t.Fatalf("status = %s after lost race, want PLACED", reloaded.Status)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.GetOrder("missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)

	user := &models.User{Name: "A", Email: "a@shield.com", PasswordHash: "x", Role: models.RoleMember, Country: models.CountryIndia}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	dup := &models.User{Name: "B", Email: "a@shield.com", PasswordHash: "x", Role: models.RoleMember, Country: models.CountryIndia}
	if err := repo.CreateUser(dup); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("duplicate email: err = %v, want ErrConflict", err)
	}
}
