package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finbooks/fin_statements_app/internal/adapters/httpclient"
	portsrepo "github.com/finbooks/fin_statements_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
	"github.com/finbooks/fin_statements_app/internal/core/render"
	"github.com/finbooks/fin_statements_app/internal/core/services"
	"github.com/finbooks/fin_statements_app/internal/export/pdf"
	"github.com/finbooks/fin_statements_app/internal/export/xlsx"
	"github.com/finbooks/fin_statements_app/internal/handlers"
	"github.com/finbooks/fin_statements_app/internal/middleware"
	"github.com/finbooks/fin_statements_app/internal/platform/config"
)

// @title FSA Backend API
// @version 1.0
// @description Financial statement composition and rendering backend.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	statementService := buildStatementService(cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, statementService)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildStatementService wires the collaborator adapters, the aggregation and
// section-building services and the exporters into the statement orchestrator.
func buildStatementService(cfg *config.Config) portssvc.StatementSvc {
	txnStore := httpclient.NewTransactionStore(cfg.TransactionStoreURL, cfg.UpstreamTimeout)
	profiles := httpclient.NewCompanyProfileSource(cfg.CompanyProfileURL, cfg.UpstreamTimeout)

	opts := []services.StatementServiceOption{
		services.WithPDFExporter(pdf.NewExporter(render.A4)),
		services.WithWorkbookExporter(xlsx.NewExporter()),
	}
	if cfg.ClassifierURL != "" {
		var classifier portsrepo.Classifier = httpclient.NewClassifier(cfg.ClassifierURL, cfg.UpstreamTimeout)
		opts = append(opts, services.WithClassifier(classifier))
	}

	return services.NewStatementService(
		txnStore,
		profiles,
		services.NewAggregatorService(),
		services.NewSectionBuilderService(),
		opts...,
	)
}
