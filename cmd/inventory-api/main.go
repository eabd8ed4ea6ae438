package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/inventoryapp/inventory-api/internal/api/handlers"
	"github.com/inventoryapp/inventory-api/internal/api/middleware"
	"github.com/inventoryapp/inventory-api/internal/config"
	"github.com/inventoryapp/inventory-api/internal/health"
	"github.com/inventoryapp/inventory-api/internal/metrics"
	repository "github.com/inventoryapp/inventory-api/internal/repositories"
	service "github.com/inventoryapp/inventory-api/internal/services"
	"github.com/inventoryapp/inventory-api/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTelemetry, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("Error initializing telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup (waits for the store with bounded retry)
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	if err := repository.Migrate(context.Background(), repos.DB); err != nil {
		slog.Error("Error running migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !cfg.SkipSeed {
		if err := repository.Seed(context.Background(), repos.DB); err != nil {
			slog.Error("Error seeding database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	productService := service.NewProductService(repos.Product)
	productHandler := handlers.NewProductHandler(productService)
	inventoryService := service.NewInventoryService(repos.Inventory)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /api/products", productHandler.CreateProduct())
	routerMux.HandleFunc("PUT /api/products/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("DELETE /api/products/{id}", productHandler.DeleteProduct())
	routerMux.HandleFunc("GET /api/inventory/products/{id}", inventoryHandler.GetProductStock())
	routerMux.HandleFunc("POST /api/inventory/products/{id}/stock", inventoryHandler.AddStock())
	routerMux.HandleFunc("DELETE /api/inventory/products/{id}/stock", inventoryHandler.RemoveStock())
	routerMux.HandleFunc("GET /api/inventory/products/{id}/history", inventoryHandler.GetStockHistory())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Recovery(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = otelhttp.NewHandler(handler, "inventory-api")

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("Server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed")
	}

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		slog.Error("Telemetry shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
