package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/auth"
	"github.com/01moynul/aguadelivery-golang/internal/catalog"
	"github.com/01moynul/aguadelivery-golang/internal/config"
	"github.com/01moynul/aguadelivery-golang/internal/database"
	"github.com/01moynul/aguadelivery-golang/internal/handlers"
	"github.com/01moynul/aguadelivery-golang/internal/identity"
	"github.com/01moynul/aguadelivery-golang/internal/orders"
	"github.com/01moynul/aguadelivery-golang/internal/profile"
	"github.com/01moynul/aguadelivery-golang/internal/routes"
	"github.com/01moynul/aguadelivery-golang/internal/store"
)

func main() {
	// 0. --- Load Configuration (.env + environment) ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 1. --- Storage ---
	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	// 2. --- Identity Provider ---
	var provider identity.Provider
	switch cfg.IdentityProvider {
	case config.ProviderGoTrue:
		provider = identity.NewGoTrue(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.IdentityTimeout)
		log.Printf("Identity provider: gotrue (%s)", cfg.SupabaseURL)
	default:
		provider = identity.NewLocal(st, auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL))
		log.Println("Identity provider: local")
	}

	// --- Application Setup ---
	products := catalog.New(catalog.DefaultProducts)
	app := &handlers.Handlers{
		Users:    st,
		Identity: provider,
		Catalog:  products,
		Profile:  profile.NewService(st),
		Orders:   orders.NewService(st, st, products),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, cfg)

	// --- Start Server ---
	log.Printf("Starting Água Delivery API server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openStore connects to MySQL when a DSN is configured and falls back to the
// in-memory store otherwise.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseDSN == "" {
		log.Println("WARNING: DB_DSN_PRIMARY is not set. Using the in-memory store; data is lost on restart.")
		return store.NewMemory(), nil
	}

	db, err := database.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return store.NewMySQL(db), nil
}
