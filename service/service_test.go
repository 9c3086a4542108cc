package service

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/glebarez/sqlite"

	"food-ordering-api/identity"
	"food-ordering-api/models"
	"food-ordering-api/repository"
)

// fixtures mirrors the demo dataset: one restaurant and a member,
// manager and admin per country.
type fixtures struct {
	db   *gorm.DB
	repo *repository.Repository

	admin     identity.Identity
	managerIN identity.Identity
	managerUS identity.Identity
	memberIN  identity.Identity
	memberUS  identity.Identity

	spicePalace models.Restaurant // INDIA
	burgerHouse models.Restaurant // AMERICA
	biryani     models.MenuItem   // INDIA
	burger      models.MenuItem   // AMERICA
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	repo := repository.New(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixtures{db: db, repo: repo}

	users := map[string]*identity.Identity{}
	for _, u := range []struct {
		key     string
		name    string
		role    models.Role
		country models.Country
	}{
		{"admin", "Nick Fury", models.RoleAdmin, models.CountryAmerica},
		{"managerIN", "Captain Marvel", models.RoleManager, models.CountryIndia},
		{"managerUS", "Captain America", models.RoleManager, models.CountryAmerica},
		{"memberIN", "Thanos", models.RoleMember, models.CountryIndia},
		{"memberUS", "Travis", models.RoleMember, models.CountryAmerica},
	} {
		user := models.User{
			Name:         u.name,
			Email:        u.key + "@shield.com",
			PasswordHash: "x",
			Role:         u.role,
			Country:      u.country,
		}
		if err := db.Create(&user).Error; err != nil {
			t.Fatalf("create user %s: %v", u.key, err)
		}
		users[u.key] = &identity.Identity{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Role:    user.Role,
			Country: user.Country,
		}
	}
	f.admin = *users["admin"]
	f.managerIN = *users["managerIN"]
	f.managerUS = *users["managerUS"]
	f.memberIN = *users["memberIN"]
	f.memberUS = *users["memberUS"]

	f.spicePalace = models.Restaurant{Name: "Spice Palace", Country: models.CountryIndia}
	f.burgerHouse = models.Restaurant{Name: "Burger House", Country: models.CountryAmerica}
	for _, r := range []*models.Restaurant{&f.spicePalace, &f.burgerHouse} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("create restaurant: %v", err)
		}
	}

	f.biryani = models.MenuItem{RestaurantID: f.spicePalace.ID, Name: "Biryani", Price: 12.99}
	f.burger = models.MenuItem{RestaurantID: f.burgerHouse.ID, Name: "Classic Burger", Price: 8.99}
	for _, m := range []*models.MenuItem{&f.biryani, &f.burger} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("create menu item: %v", err)
		}
	}

	return f
}
