package route

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/metrics"
	"github.com/hugohenrick/food-backoffice/pkg/auth"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
	"github.com/hugohenrick/food-backoffice/pkg/middleware"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

// Options reúne o que o roteador precisa para montar a API
type Options struct {
	BasePath       string
	AllowedOrigins []string
	RateLimit      int64
	RateWindow     time.Duration

	Factories  controller.Factories
	Validator  tenant.Validator
	JWTService *auth.JWTService
	Cache      cache.Cache
	Logger     logger.Logger
}

// NewRouter monta o engine com os middlewares globais e as rotas da organização
func NewRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(metrics.Middleware())

	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(opts.BasePath)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := api.Group("")
	if opts.RateLimit > 0 && opts.Cache != nil {
		protected.Use(middleware.RateLimit(opts.Cache, opts.RateLimit, opts.RateWindow))
	}
	protected.Use(tenant.Middleware(opts.Validator, opts.Logger))
	if opts.JWTService != nil {
		protected.Use(auth.JWTAuthMiddleware(opts.JWTService))
	}

	log := opts.Logger
	RegisterOrderRoutes(protected, controller.NewOrderController(opts.Factories.Orders, log))
	RegisterPreOrderRoutes(protected, controller.NewPreOrderController(opts.Factories.PreOrders, log))
	RegisterBillingRoutes(protected, controller.NewBillingController(opts.Factories.Billing, log))
	RegisterHomeRoutes(protected, controller.NewHomeController(opts.Factories.Home, log))
	RegisterCatalogRoutes(protected, controller.NewCatalogController(opts.Factories.Catalog, log))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", tenant.HeaderName, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
