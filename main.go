package main

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/identity"
	"food-ordering-api/middleware"
	"food-ordering-api/repository"
	"food-ordering-api/routes"
	"food-ordering-api/seed"
	"food-ordering-api/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	repo := repository.New(db)
	if err := repo.Migrate(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}
	logrus.Info("database connected and migrated")

	if cfg.SeedDemo {
		if err := seed.Run(db); err != nil {
			logrus.WithError(err).Fatal("failed to seed demo data")
		}
	}

	tokens := identity.NewJWT(cfg.JWTSecret, cfg.TokenTTL)

	h := handlers.New(
		service.NewAuthService(repo, tokens),
		service.NewOrderService(repo),
		service.NewCatalogService(repo),
		service.NewPaymentService(repo),
	)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
		})
	})

	routes.SetupRoutes(r, h, tokens)

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
