// Package server assembles the HTTP router for the portfolio API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"pfa/internal/config"
	"pfa/internal/handlers"
	"pfa/internal/middleware"
	"pfa/internal/portfolio"
	"pfa/internal/services"
	"pfa/internal/tax"
)

// Services holds the business-logic dependencies of the router.
type Services struct {
	Users     services.UserServicer
	Portfolio services.PortfolioServicer
}

// NewEngine builds the aggregation engine with the configured tax policy and
// filing year.
func NewEngine(cfg *config.Config) *portfolio.Engine {
	estimator := tax.NewEstimator(tax.Options{
		DeductPreTaxContributions: cfg.TaxDeductPreTaxContributions,
	})
	return portfolio.NewEngine(estimator, cfg.FilingYear)
}

// NewServices wires the gorm-backed services.
func NewServices(db *gorm.DB, cfg *config.Config) Services {
	return Services{
		Users:     services.NewUserService(db),
		Portfolio: services.NewPortfolioService(db, NewEngine(cfg)),
	}
}

// corsConfig allows every origin when none or "*" is configured.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

// NewRouter registers every route under /api/v1.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users)
	portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Routes that require a signed-in user
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/profile", authHandler.GetProfile)

	// Portfolio routes fall back to the guest record set when allowed
	owned := v1.Group("/")
	owned.Use(middleware.OptionalAuthMiddleware(cfg.AllowGuest))
	owned.GET("/portfolio", portfolioHandler.GetPortfolio)
	owned.PUT("/portfolio", portfolioHandler.ReplacePortfolio)
	owned.PUT("/tax_info", portfolioHandler.UpdateTaxInfo)

	return router
}
