package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "bond_quotation/docs" // generated by swag init
	"bond_quotation/internal/adapter/http/handlers"
	"bond_quotation/internal/adapter/persistence/memory"
	"bond_quotation/internal/adapter/persistence/repository"
	"bond_quotation/internal/config"
	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/infrastructure/database"
	"bond_quotation/internal/infrastructure/irp"
	"bond_quotation/internal/infrastructure/logger"
	"bond_quotation/internal/infrastructure/rag"
	"bond_quotation/internal/infrastructure/sanction"
	"bond_quotation/internal/infrastructure/scheduler"
	"bond_quotation/internal/usecase"
	"bond_quotation/internal/usecase/agent"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const shutdownTimeout = 5 * time.Second

// Run will start the server and block until SIGINT or SIGTERM, then drain
// in-flight requests, stop background jobs and flush the logger.
func Run() {
	cfg := config.Load()
	zl := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())

	setMiddlewares(zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	stop := getRoutes(cfg, zl)
	srv := &http.Server{Addr: ":" + cfg.App.Port, Handler: router}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	zl.Info("[app] starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Environment))
	if err := serve(srv, quit, stop, zl); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// serve runs srv until it fails or a signal arrives on quit. Either way stop
// runs and the logger is flushed before it returns.
func serve(srv *http.Server, quit <-chan os.Signal, stop func(), zl *zap.Logger) error {
	defer func() { _ = zl.Sync() }()
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case sig := <-quit:
		zl.Info("[app] shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("[app] server forced to shutdown", zap.Error(err))
		return err
	}
	zl.Info("[app] server exiting")
	return nil
}

// getRoutes wires the dependency graph and registers every route. The
// returned func stops background jobs.
func getRoutes(cfg *config.Config, zl *zap.Logger) func() {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("[app] dynamodb connection failed", zap.Error(err))
	}
	quotationRepo := repository.NewQuotationDynamoRepository(ddb, cfg.Database.QuotationsTable)
	addressRepo := repository.NewCompanyAddressDynamoRepository(ddb, cfg.Database.CompanyAddressesTable)
	sessionRepo := memory.NewSessionCacheRepository(cfg.Conversation.SessionTTL)

	registry := irp.NewStubRegistry(cfg.IRP.RegisteredIntermediaries)
	grades := irp.NewCachedGradeProvider(registry, cfg.IRP.GradeCacheSize, cfg.IRP.GradeCacheTTL)
	screener := sanction.NewStubScreener()
	retriever := rag.NewStubRetriever()

	lookups := agent.Lookups{
		Registry:  registry,
		Grades:    grades,
		Addresses: addressRepo,
		Sanctions: screener,
		Pricing:   retriever,
	}
	opts := []agent.Option{
		agent.WithLookupTimeout(cfg.Conversation.LookupTimeout),
		agent.WithLogger(zl),
	}
	pricer, err := agent.NewPricer(cfg.Pricing.Strategy, pricingConfig(cfg.Pricing), lookups, opts...)
	if err != nil {
		zl.Fatal("[app] invalid pricing strategy", zap.Error(err))
	}
	strategy, err := agent.NewStrategy(cfg.Conversation.Strategy, lookups, pricer, opts...)
	if err != nil {
		zl.Fatal("[app] invalid conversation strategy", zap.Error(err))
	}
	quoteAgent := agent.New(strategy, opts...)

	quoteAgentUseCase := usecase.NewQuoteAgentUseCase(quoteAgent, sessionRepo, quotationRepo, cfg.Quotation.FinalizeTTL, zl)
	lookupUseCase := usecase.NewLookupUseCase(registry, grades, addressRepo, screener, retriever)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, cfg.Quotation.SaveTTL, zl)

	chatHandler := handlers.NewChatHandler(quoteAgentUseCase)
	lookupHandler := handlers.NewLookupHandler(lookupUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)

	expiry, err := scheduler.Start(cfg.Quotation.ExpiryCron, scheduler.NewQuotationExpiryJob(quotationRepo, zl))
	if err != nil {
		zl.Fatal("[app] invalid quotation expiry schedule", zap.Error(err), zap.String("spec", cfg.Quotation.ExpiryCron))
	}

	zl.Info("[app] agent ready",
		zap.String("strategy", quoteAgent.StrategyName()),
		zap.String("pricer", pricer.Name()),
	)

	router.GET("/health", health(sessionRepo))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChatRoutes(v1, chatHandler)
	addLookupRoutes(v1, lookupHandler)
	addQuotationRoutes(v1, quotationHandler)

	return func() { <-expiry.Stop().Done() }
}

func pricingConfig(p config.PricingConfig) agent.PricingConfig {
	return agent.PricingConfig{
		BaseRates: map[entities.Grade]int{
			entities.GradeA: p.BaseRateABps,
			entities.GradeB: p.BaseRateBBps,
			entities.GradeC: p.BaseRateCBps,
		},
		DefaultBaseRate:     p.BaseRateCBps,
		FixedLoadingBps:     p.FixedLoadingBps,
		RandomLoadingMaxBps: p.RandomLoadingMaxBps,
	}
}

func setMiddlewares(zl *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("[app] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
