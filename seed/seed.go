// Package seed loads the demo dataset for local development. Users,
// restaurants and menu items are created by onboarding flows in a real
// deployment; this stands in for them.
package seed

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food-ordering-api/models"
)

// Run inserts the demo data once. A second run is a no-op.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("seed data already present, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Nick Fury", Email: "nick.fury@shield.com", Role: models.RoleAdmin, Country: models.CountryAmerica},
		{Name: "Captain Marvel", Email: "captain.marvel@shield.com", Role: models.RoleManager, Country: models.CountryIndia},
		{Name: "Captain America", Email: "captain.america@shield.com", Role: models.RoleManager, Country: models.CountryAmerica},
		{Name: "Thanos", Email: "thanos@shield.com", Role: models.RoleMember, Country: models.CountryIndia},
		{Name: "Thor", Email: "thor@shield.com", Role: models.RoleMember, Country: models.CountryIndia},
		{Name: "Travis", Email: "travis@shield.com", Role: models.RoleMember, Country: models.CountryAmerica},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	spicePalace := models.Restaurant{Name: "Spice Palace", Country: models.CountryIndia}
	burgerHouse := models.Restaurant{Name: "Burger House", Country: models.CountryAmerica}
	for _, r := range []*models.Restaurant{&spicePalace, &burgerHouse} {
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}

	menu := []models.MenuItem{
		{RestaurantID: spicePalace.ID, Name: "Butter Chicken", Price: 15.99},
		{RestaurantID: spicePalace.ID, Name: "Biryani", Price: 12.99},
		{RestaurantID: spicePalace.ID, Name: "Naan", Price: 3.99},
		{RestaurantID: burgerHouse.ID, Name: "Classic Burger", Price: 8.99},
		{RestaurantID: burgerHouse.ID, Name: "Fries", Price: 4.99},
		{RestaurantID: burgerHouse.ID, Name: "Milkshake", Price: 5.99},
	}
	for i := range menu {
		if err := db.Create(&menu[i]).Error; err != nil {
			return err
		}
	}

	payments := []models.PaymentMethod{
		{UserID: users[0].ID, Type: "S.H.I.E.L.D. Corporate Card", Last4: "1234"},
		{UserID: users[1].ID, Type: "Cosmic Credit Card", Last4: "5678"},
		{UserID: users[2].ID, Type: "Vibranium Card", Last4: "9012"},
	}
	for i := range payments {
		if err := db.Create(&payments[i]).Error; err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"users":       len(users),
		"restaurants": 2,
		"menu_items":  len(menu),
	}).Info("seed data created")
	return nil
}
