package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"bakery/api"
	"bakery/api/authentication"
	apiclosingperiod "bakery/api/closingperiod"
	"bakery/api/health"
	apiorder "bakery/api/order"
	apiproduct "bakery/api/product"
	"bakery/api/productordering"
	closingperiodapp "bakery/application/closingperiod"
	featureapp "bakery/application/feature"
	orderapp "bakery/application/order"
	productapp "bakery/application/product"
	"bakery/config"
	"bakery/domain/closingperiod"
	"bakery/domain/feature"
	"bakery/domain/notification"
	"bakery/domain/order"
	"bakery/domain/product"
	"bakery/domain/shared"
	"bakery/infrastructure/auth"
	"bakery/infrastructure/encryption"
	notificationsink "bakery/infrastructure/notification"
	"bakery/infrastructure/persistence/database"
	"bakery/infrastructure/persistence/memory"
	"bakery/infrastructure/persistence/retry"
	"bakery/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// repositories 一种存储实现下的全部仓储
type repositories struct {
	orders         order.Repository
	products       product.Repository
	closingPeriods closingperiod.Repository
	features       feature.Repository
}

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg           *config.Config
	clock         shared.Clock
	notifications notification.Repository
	connect       func(ctx context.Context) (*gorm.DB, error)
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	b := &AppBuilder{cfg: cfg}
	b.connect = b.connectDatabase
	return b
}

// WithClock overrides the business clock
func (b *AppBuilder) WithClock(clock shared.Clock) *AppBuilder {
	b.clock = clock
	return b
}

// WithNotificationRepository overrides the sink selected by notification.type
func (b *AppBuilder) WithNotificationRepository(repo notification.Repository) *AppBuilder {
	b.notifications = repo
	return b
}

// Build creates the App instance. The logger must be initialized.
func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	clock := b.clock
	if clock == nil {
		businessClock, err := shared.NewBusinessClock(b.cfg.App.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("invalid time zone %q: %w", b.cfg.App.TimeZone, err)
		}
		clock = businessClock
	}

	var closers []io.Closer
	repos, db, err := b.initRepositories(ctx)
	if err != nil {
		return nil, err
	}

	notifications := b.notifications
	if notifications == nil {
		notifications = notificationsink.New(b.cfg.Notification)
		logger.Info("Order notifications configured", zap.String("type", b.cfg.Notification.Type))
	}
	if closer, ok := notifications.(io.Closer); ok {
		closers = append(closers, closer)
	}

	orderService := orderapp.NewApplicationService(repos.orders, repos.products, repos.closingPeriods, repos.features,
		notifications, order.NewFactory(clock))
	productService := productapp.NewApplicationService(repos.products, product.NewFactory())
	closingPeriodService := closingperiodapp.NewApplicationService(repos.closingPeriods)
	featureService := featureapp.NewApplicationService(repos.features)
	authService := auth.NewService(b.cfg.Auth)

	var healthController *health.Controller
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			closeDatabase(db)
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		healthController = health.NewController(b.cfg, sqlDB)
		closers = append(closers, sqlDB)
	} else {
		healthController = health.NewController(b.cfg, nil)
	}

	router := api.NewRouter(b.cfg, authService, api.Controllers{
		Health:          healthController,
		Authentication:  authentication.NewController(authService),
		Order:           apiorder.NewController(orderService),
		Product:         apiproduct.NewController(productService),
		ClosingPeriod:   apiclosingperiod.NewController(closingPeriodService),
		ProductOrdering: productordering.NewController(featureService),
	})
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config:  b.cfg,
		router:  router,
		server:  server,
		closers: closers,
	}, nil
}

func (b *AppBuilder) initRepositories(ctx context.Context) (repositories, *gorm.DB, error) {
	if b.cfg.Database.Type == "memory" {
		logger.Info("Using in-memory persistence layer")
		return repositories{
			orders:         memory.NewOrderRepository(),
			products:       memory.NewProductRepository(),
			closingPeriods: memory.NewClosingPeriodRepository(),
			features:       memory.NewFeatureRepository(),
		}, nil, nil
	}

	db, err := b.connect(ctx)
	if err != nil {
		return repositories{}, nil, err
	}

	repos, err := b.newDatabaseRepositories(db)
	if err != nil {
		closeDatabase(db)
		return repositories{}, nil, err
	}
	return repos, db, nil
}

// newDatabaseRepositories 迁移或初始化特性开关后创建 GORM 仓储
func (b *AppBuilder) newDatabaseRepositories(db *gorm.DB) (repositories, error) {
	if b.cfg.Database.AutoMigrate || b.cfg.IsDevelopment() {
		if err := database.Migrate(db); err != nil {
			return repositories{}, fmt.Errorf("failed to auto migrate: %w", err)
		}
	} else if err := database.SeedFeatures(db); err != nil {
		return repositories{}, fmt.Errorf("failed to seed features: %w", err)
	}

	var cipher database.PersonalDataCipher
	if b.cfg.Encryption.Key != "" {
		c, err := encryption.NewCipher(b.cfg.Encryption.Key)
		if err != nil {
			return repositories{}, fmt.Errorf("failed to create personal data cipher: %w", err)
		}
		cipher = c
	} else {
		logger.Warn("encryption.key is empty, personal data is stored in plain text")
	}

	return repositories{
		orders:         database.NewOrderRepository(db, cipher),
		products:       database.NewProductRepository(db),
		closingPeriods: database.NewClosingPeriodRepository(db),
		features:       database.NewFeatureRepository(db),
	}, nil
}

// closeDatabase releases a connection opened by a build that then failed
func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", zap.Error(err))
	}
}

// connectDatabase 启动时数据库可能尚未就绪，按 database.retry 重试
func (b *AppBuilder) connectDatabase(ctx context.Context) (*gorm.DB, error) {
	dbConfig := NewDatabaseConfig(b.cfg)

	var db *gorm.DB
	err := retry.ExecuteWithAppConfig(ctx, b.cfg, func(ctx context.Context) error {
		conn, err := dbConfig.Connect()
		if err != nil {
			return err
		}
		if err := database.Ping(ctx, conn); err != nil {
			if sqlDB, dbErr := conn.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return err
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dbConfig.Driver, err)
	}
	return db, nil
}
