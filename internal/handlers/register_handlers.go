package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library_circulation_app/cmd/docs"
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
	"github.com/openshelf/library_circulation_app/internal/middleware"
	"github.com/openshelf/library_circulation_app/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes, rate-limited
	auth := r.Group("/auth", middleware.RateLimit(newLoginLimiter(cfg)))
	RegisterAuthRoutes(auth, services.Auth)

	// API v1: listings are public, mutations require a valid token
	public := r.Group("/api/v1")
	protected := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterBookRoutes(public, protected, services.Book, services.Query)
	RegisterLoanRoutes(public, protected, services.Circulation, services.Query)
	RegisterActivityRoutes(public, protected, services.Activity)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// newLoginLimiter builds an in-memory rate limiter for the login route.
func newLoginLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		log.Printf("Warning: invalid LOGIN_RATE_LIMIT (%q), defaulting to 10-M\n", cfg.LoginRateLimit)
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	return limiter.New(memory.NewStore(), rate)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
