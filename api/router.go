package api

import (
	"net/http"

	"bakery/api/authentication"
	"bakery/api/closingperiod"
	"bakery/api/health"
	"bakery/api/middleware"
	"bakery/api/order"
	"bakery/api/product"
	"bakery/api/productordering"
	"bakery/config"
	"bakery/pkg/metric"

	"github.com/gin-gonic/gin"
)

// Controllers groups the HTTP controllers mounted under /api
type Controllers struct {
	Health          *health.Controller
	Authentication  *authentication.Controller
	Order           *order.Controller
	Product         *product.Controller
	ClosingPeriod   *closingperiod.Controller
	ProductOrdering *productordering.Controller
}

// Router Route configuration
type Router struct {
	engine      *gin.Engine
	config      *config.Config
	controllers Controllers
}

// NewRouter Create route configuration
func NewRouter(cfg *config.Config, verifier middleware.TokenVerifier, controllers Controllers) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware (order is important)
	engine.Use(middleware.RequestIDMiddleware())                      // 1. Generate request ID first
	engine.Use(middleware.RecoveryMiddleware())                       // 2. Recovery middleware
	engine.Use(middleware.LoggingMiddleware())                        // 3. Logging middleware
	engine.Use(middleware.MetricsMiddleware())                        // 4. Prometheus
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))                  // 5. CORS
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit)) // 6. Rate limiting
	engine.Use(middleware.AuthMiddleware(verifier))                   // 7. Resolve caller

	return &Router{
		engine:      engine,
		config:      cfg,
		controllers: controllers,
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api")
	{
		r.controllers.Health.RegisterRoutes(apiGroup)
		r.controllers.Authentication.RegisterRoutes(apiGroup)
		r.controllers.Order.RegisterRoutes(apiGroup)
		r.controllers.Product.RegisterRoutes(apiGroup)
		r.controllers.ClosingPeriod.RegisterRoutes(apiGroup)
		r.controllers.ProductOrdering.RegisterRoutes(apiGroup)
	}

	if r.config.Metrics.Enabled {
		r.engine.GET(r.config.Metrics.Path, gin.WrapH(metric.Handler()))
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/health",
		})
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
