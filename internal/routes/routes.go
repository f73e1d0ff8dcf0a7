package routes

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
	"github.com/01moynul/aguadelivery-golang/internal/config"
	"github.com/01moynul/aguadelivery-golang/internal/handlers"
	"github.com/01moynul/aguadelivery-golang/internal/middleware"
)

// CORSMiddleware allows the storefront's origins to call the API with a
// bearer token.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}

func SetupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		middleware.RespondError(c, apperror.Wrap(apperror.Internal, middleware.InternalErrorMessage,
			fmt.Errorf("panic: %v", recovered)))
	}))

	// --- APPLY THE CORS GUARD ---
	router.Use(CORSMiddleware(cfg))

	router.NoRoute(func(c *gin.Context) {
		middleware.RespondError(c, apperror.NotFoundError("Rota não encontrada"))
	})

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)

		// --- Auth Routes (Public) ---
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// --- Catalog Routes (Public) ---
		api.GET("/products", h.ListProducts)
		api.GET("/products/categories", h.ListCategories)
		api.GET("/products/:id", h.GetProduct)

		// --- CEP Lookup (Public) ---
		api.GET("/cep/:cep", h.LookupCEP)

		// --- Protected Routes (Login Required) ---
		auth := api.Group("/")
		auth.Use(middleware.AuthMiddleware(h.Identity))
		{
			auth.GET("/auth/verify", h.Verify)

			// Addresses
			auth.GET("/addresses", h.ListAddresses)
			auth.POST("/addresses", h.AddAddress)
			auth.PUT("/addresses/:id", h.UpdateAddress)
			auth.DELETE("/addresses/:id", h.DeleteAddress)
			auth.POST("/addresses/:id/select", h.SelectAddress)

			// Credit cards
			auth.GET("/credit-cards", h.ListCreditCards)
			auth.POST("/credit-cards", h.AddCreditCard)
			auth.DELETE("/credit-cards/:id", h.DeleteCreditCard)
			auth.POST("/credit-cards/:id/select", h.SelectCreditCard)

			// Orders
			auth.GET("/orders", h.ListOrders)
			auth.POST("/orders", h.CreateOrder)
			auth.GET("/orders/:id", h.GetOrder)
			auth.PUT("/orders/:id/status", h.UpdateOrderStatus)
		}
	}

	return router
}
