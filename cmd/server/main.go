package main

import (
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"incargo/analytics"
	"incargo/config"
	"incargo/db"
	"incargo/db/mongo"
	"incargo/db/postgres"
	"incargo/demo"
	"incargo/handlers"
	"incargo/quotes"
	"incargo/repository"
	"incargo/routes"
)

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	// Load config from .env or system environment
	cfg := config.LoadConfig()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	var (
		vehicleRepo   repository.VehicleRepository
		clientRepo    repository.ClientRepository
		serviceRepo   repository.ServiceRepository
		quoteRepo     repository.QuoteRepository
		containerRepo repository.ContainerRepository
		companyRepo   repository.CompanyRepository
	)

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logger.Fatal("postgres connection failed", zap.Error(err))
		}
		defer pg.Disconnect()

		vehicleRepo = repository.NewPostgresVehicleRepo(pg.Conn)
		clientRepo = repository.NewPostgresClientRepo(pg.Conn)
		serviceRepo = repository.NewPostgresServiceRepo(pg.Conn)
		quoteRepo = repository.NewPostgresQuoteRepo(pg.Conn)
		containerRepo = repository.NewPostgresContainerRepo(pg.Conn)
		companyRepo = repository.NewPostgresCompanyRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			logger.Fatal("mongo connection failed", zap.Error(err))
		}
		defer mg.Disconnect()

		vehicleRepo = repository.NewMongoVehicleRepo(mg.Client)
		clientRepo = repository.NewMongoClientRepo(mg.Client)
		serviceRepo = repository.NewMongoServiceRepo(mg.Client)
		quoteRepo = repository.NewMongoQuoteRepo(mg.Client)
		containerRepo = repository.NewMongoContainerRepo(mg.Client)
		companyRepo = repository.NewMongoCompanyRepo(mg.Client)

	case db.Demo:
		// Seeded in-memory store, nothing survives a restart.
		vehicleRepo = repository.NewMemoryVehicleRepo(demo.Vehicles())
		clientRepo = repository.NewMemoryClientRepo(demo.Clients())
		serviceRepo = repository.NewMemoryServiceRepo(demo.Services())
		quoteRepo = repository.NewMemoryQuoteRepo(demo.Quotes())
		containerRepo = repository.NewMemoryContainerRepo(demo.Containers())
		companyRepo = repository.NewMemoryCompanyRepo(demo.Company())

	default:
		logger.Fatal("unsupported DB_TYPE", zap.String("db_type", cfg.DBType))
	}

	quoteManager := quotes.NewManager(quoteRepo, serviceRepo, logger.Named("quotes"))
	analyticsService := analytics.NewService(vehicleRepo, clientRepo, serviceRepo, quoteRepo, containerRepo)
	pdfRepo := repository.NewPDFRepository(quoteRepo, clientRepo, companyRepo)

	routes.SetupRoutes(
		&handlers.VehicleHandler{Repo: vehicleRepo},
		&handlers.ClientHandler{Repo: clientRepo},
		&handlers.ServiceHandler{Repo: serviceRepo},
		&handlers.QuoteHandler{Repo: quoteRepo, Manager: quoteManager},
		&handlers.ContainerHandler{Repo: containerRepo},
		&handlers.CompanyHandler{Repo: companyRepo},
		&handlers.AnalyticsHandler{Service: analyticsService},
		&handlers.PDFHandler{Repo: pdfRepo},
	)

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("db_type", cfg.DBType))
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
