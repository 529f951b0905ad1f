package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthUFO12/CivicProject/common/id"
	"github.com/arthUFO12/CivicProject/common/llm"
	"github.com/arthUFO12/CivicProject/common/logger"
	"github.com/arthUFO12/CivicProject/common/otel"
	"github.com/arthUFO12/CivicProject/core/config"
	"github.com/arthUFO12/CivicProject/core/db"
	"github.com/arthUFO12/CivicProject/internal/http/middleware"
	httprouter "github.com/arthUFO12/CivicProject/internal/http/router"
	"github.com/arthUFO12/CivicProject/internal/service"
	"github.com/arthUFO12/CivicProject/internal/store"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "editor starting", "env", cfg.Env, "service", cfg.OTel.ServiceName, "backend", cfg.Storage.Backend)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	documents, err := openDocumentStore(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to open document store", "error", err, "backend", cfg.Storage.Backend)
		os.Exit(1)
	}
	defer documents.Close()

	textClient, err := llm.NewTextClient(llm.Config{
		Provider: cfg.RewriteLLM.Provider,
		APIKey:   cfg.RewriteLLM.APIKey,
		BaseURL:  cfg.RewriteLLM.BaseURL,
		Model:    cfg.RewriteLLM.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create rewrite llm client", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "rewrite llm configured", "provider", cfg.RewriteLLM.Provider, "model", textClient.Model())

	var quoteClient llm.Client
	if cfg.QuoteLLM.Enabled() {
		quoteClient, err = llm.New(llm.Config{
			Provider: cfg.QuoteLLM.Provider,
			APIKey:   cfg.QuoteLLM.APIKey,
			BaseURL:  cfg.QuoteLLM.BaseURL,
			Model:    cfg.QuoteLLM.Model,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to create quote llm client", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "structured quotes enabled", "model", quoteClient.Model())
	}

	services := service.NewServices(service.ServicesConfig{
		Documents:   documents,
		TextClient:  textClient,
		QuoteClient: quoteClient,
		AI: service.AIOptions{
			Temperature: llm.Temp(cfg.RewriteLLM.Temperature),
			MaxTokens:   cfg.RewriteLLM.MaxTokens,
		},
		Quote: service.QuoteOptions{
			Temperature: llm.Temp(cfg.QuoteLLM.Temperature),
			MaxTokens:   cfg.QuoteLLM.MaxTokens,
		},
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func openDocumentStore(ctx context.Context, cfg config.Config) (store.DocumentStore, error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		database, err := db.New(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		documents, err := store.NewPostgresDocumentStore(ctx, database)
		if err != nil {
			database.Close()
			return nil, err
		}
		slog.InfoContext(ctx, "database connected")
		return documents, nil
	case config.StorageMemory:
		slog.WarnContext(ctx, "using in-memory document store, documents are lost on restart")
		return store.NewMemoryDocumentStore(), nil
	default:
		documents, err := store.NewRedisDocumentStore(ctx, cfg.Redis.URL, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "redis connected", "prefix", cfg.Redis.KeyPrefix)
		return documents, nil
	}
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		AllowedOrigin: cfg.AllowedOrigin,
	})

	return router
}

const banner = `
 ███████╗██████╗ ██╗████████╗ ██████╗ ██████╗
 ██╔════╝██╔══██╗██║╚══██╔══╝██╔═══██╗██╔══██╗
 █████╗  ██║  ██║██║   ██║   ██║   ██║██████╔╝
 ██╔══╝  ██║  ██║██║   ██║   ██║   ██║██╔══██╗
 ███████╗██████╔╝██║   ██║   ╚██████╔╝██║  ██║
 ╚══════╝╚═════╝ ╚═╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝
`
