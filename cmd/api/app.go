package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/internal/adapter/api/route"
	"github.com/hugohenrick/food-backoffice/internal/adapter/repository"
	"github.com/hugohenrick/food-backoffice/internal/config"
	"github.com/hugohenrick/food-backoffice/internal/domain/organization"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/database"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/messaging"
	"github.com/hugohenrick/food-backoffice/internal/service/billing"
	"github.com/hugohenrick/food-backoffice/internal/service/catalog"
	"github.com/hugohenrick/food-backoffice/internal/service/home"
	"github.com/hugohenrick/food-backoffice/internal/service/notification"
	"github.com/hugohenrick/food-backoffice/internal/service/orders"
	"github.com/hugohenrick/food-backoffice/internal/service/planfeature"
	"github.com/hugohenrick/food-backoffice/internal/service/preorders"
	"github.com/hugohenrick/food-backoffice/pkg/auth"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	cfg    *config.Config
	logger logger.Logger

	mongo   *mongo.Client
	db      *mongo.Database
	catalog *sql.DB
	redis   *redis.Client
	cache   cache.Cache
	writer  *kafka.Writer
	hook    *notification.Hook
	stopped chan struct{}
	plans   *repository.PlanRepository

	server *http.Server
}

// NewApp abre as conexões e monta o roteador
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: log, stopped: make(chan struct{})}

	client, err := database.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	a.mongo = client
	a.db = client.Database(cfg.Mongo.Database)

	if err := database.EnsureIndexes(ctx, a.db); err != nil {
		a.Close(ctx)
		return nil, err
	}

	a.catalog, err = database.NewCatalogDB(ctx, cfg.Catalog)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.plans = repository.NewPlanRepository(a.catalog)

	// sem Redis a aplicação continua, só que sem cache e sem limite de requisições
	a.redis, err = cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("Redis indisponível, seguindo sem cache", "error", err)
		a.redis = nil
	}
	a.cache = cache.NewRedisCache(a.redis, log)

	a.writer = messaging.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaMessagesTopic)
	a.hook = notification.NewHook(cfg.NotificationBuffer, messaging.NewKafkaPublisher(a.writer), a.organizations, log)

	if err := dto.RegisterValidations(); err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("erro ao registrar validações: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecretKey, cfg.JWTExpiration)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	router := route.NewRouter(route.Options{
		BasePath:       cfg.BasePath,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit:      cfg.RateLimitRequests,
		RateWindow:     cfg.RateLimitWindow,
		Factories:      a.factories(),
		Validator:      repository.NewOrganizationValidator(a.db),
		JWTService:     jwtService,
		Cache:          a.cache,
		Logger:         log,
	})

	a.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a, nil
}

func (a *App) organizations(organizationID string) organization.Repository {
	return repository.NewOrganizationRepository(a.db, organizationID)
}

func (a *App) gate(organizationID string) *planfeature.Gate {
	return planfeature.NewGate(organizationID, a.plans, a.cache, a.logger)
}

func (a *App) orderService(organizationID string) *orders.Service {
	return orders.NewService(organizationID, orders.Repositories{
		Orders:    repository.NewOrderRepository(a.db, organizationID, a.logger),
		Payments:  repository.NewPaymentRepository(a.db, organizationID),
		Products:  repository.NewProductRepository(a.db, organizationID),
		Customers: repository.NewCustomerRepository(a.db, organizationID),
	}, a.gate(organizationID), a.hook, a.logger)
}

// factories monta os serviços da organização de cada requisição
func (a *App) factories() controller.Factories {
	return controller.Factories{
		Orders: func(organizationID string) controller.OrderService {
			return a.orderService(organizationID)
		},
		PreOrders: func(organizationID string) controller.PreOrderService {
			return preorders.NewService(organizationID,
				repository.NewPreOrderRepository(a.db, organizationID),
				repository.NewCustomerRepository(a.db, organizationID),
				a.orderService(organizationID), a.gate(organizationID), a.hook, a.cache, a.logger)
		},
		Billing: func(organizationID string) controller.BillingService {
			return billing.NewService(organizationID,
				repository.NewOrderRepository(a.db, organizationID, a.logger),
				repository.NewExpenseRepository(a.db, organizationID),
				repository.NewTagRepository(a.db, organizationID),
				a.gate(organizationID), a.cache, a.logger)
		},
		Home: func(organizationID string) controller.HomeService {
			return home.NewService(organizationID,
				repository.NewPreOrderRepository(a.db, organizationID),
				repository.NewOrderRepository(a.db, organizationID, a.logger),
				repository.NewCustomerRepository(a.db, organizationID),
				repository.NewProductRepository(a.db, organizationID),
				a.gate(organizationID), a.cache, a.logger)
		},
		Catalog: func(organizationID string) controller.CatalogService {
			return catalog.NewService(organizationID, catalog.Repositories{
				Products:  repository.NewProductRepository(a.db, organizationID),
				Tags:      repository.NewTagRepository(a.db, organizationID),
				Customers: repository.NewCustomerRepository(a.db, organizationID),
				Expenses:  repository.NewExpenseRepository(a.db, organizationID),
				Offers:    repository.NewOfferRepository(a.db, organizationID),
			}, a.gate(organizationID), a.cache, a.logger)
		},
	}
}

// Start inicia o ouvinte de notificações e o servidor HTTP; bloqueia até o servidor parar.
// O ouvinte só para em Shutdown, para que a fila seja esvaziada.
func (a *App) Start(ctx context.Context) error {
	go func() {
		defer close(a.stopped)
		a.hook.Run(context.WithoutCancel(ctx))
	}()

	a.logger.Info("Servidor iniciado", "port", a.cfg.Port, "base_path", a.cfg.BasePath)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("erro ao iniciar servidor: %w", err)
	}
	return nil
}

// Shutdown encerra o servidor e esvazia a fila de notificações
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	a.hook.Close()
	select {
	case <-a.stopped:
	case <-ctx.Done():
		a.logger.Warn("fila de notificações não esvaziou antes do prazo")
	}
	a.Close(ctx)
	return err
}

// Close libera as conexões abertas
func (a *App) Close(ctx context.Context) {
	if a.writer != nil {
		if err := a.writer.Close(); err != nil {
			a.logger.Warn("erro ao fechar produtor Kafka", "error", err)
		}
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.catalog != nil {
		_ = a.catalog.Close()
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			a.logger.Warn("erro ao desconectar do MongoDB", "error", err)
		}
	}
}
