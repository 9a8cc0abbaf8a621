package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nordixdotma/ayounioptic/config"
	adminControllers "github.com/nordixdotma/ayounioptic/controllers/admin"
	cartControllers "github.com/nordixdotma/ayounioptic/controllers/cart"
	catalogControllers "github.com/nordixdotma/ayounioptic/controllers/catalog"
	"github.com/nordixdotma/ayounioptic/controllers/feed"
	"github.com/nordixdotma/ayounioptic/localstore"
	"github.com/nordixdotma/ayounioptic/routes"
	"github.com/nordixdotma/ayounioptic/services"
	"github.com/nordixdotma/ayounioptic/store"
	"github.com/nordixdotma/ayounioptic/upstream"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	local, err := localstore.Open(cfg.DataPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open snapshot store")
	}

	adminStore := store.NewAdminStore(local, log)
	client := upstream.New(cfg.APIBaseURL)

	adminService := services.NewAdminService(client, adminStore, log)
	checkout := services.NewCheckoutService(client, adminStore, local, log, cfg.WhatsAppNumber)

	hub := feed.NewHub(log)
	checkout.OnOrder(hub.BroadcastOrder)

	// Warm the store from the backend. On failure the snapshot data
	// loaded at startup keeps serving until the next refresh.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := adminService.LoadAll(ctx); err != nil {
			log.WithError(err).Warn("initial backend load failed, serving snapshot data")
		}
	}()

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Handlers{
		Cart:      cartControllers.NewHandler(adminStore, checkout, log),
		Catalog:   catalogControllers.NewHandler(adminStore),
		Admin:     adminControllers.NewHandler(adminService, checkout, log),
		AdminAuth: adminControllers.NewAuthHandler(cfg.AdminUser, cfg.AdminPassword, cfg.JWTSecret),
		Feed:      hub,
		JWTSecret: cfg.JWTSecret,
	})

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
