package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jmcortinhal/centavo/internal/config"
	"github.com/jmcortinhal/centavo/internal/database"
	centavoHttp "github.com/jmcortinhal/centavo/internal/http"
	"github.com/jmcortinhal/centavo/internal/http/health"
	importHandler "github.com/jmcortinhal/centavo/internal/http/importcsv"
	summaryHandler "github.com/jmcortinhal/centavo/internal/http/summary"
	txHandler "github.com/jmcortinhal/centavo/internal/http/transaction"
	"github.com/jmcortinhal/centavo/internal/importer"
	"github.com/jmcortinhal/centavo/internal/transaction"
	txStore "github.com/jmcortinhal/centavo/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// The server still comes up when the store is unreachable: requests
	// that hit the store fail, and /test reports connectivity.
	db, err := database.New(ctx, cfg.DB.URL, cfg.DB.Name)
	if err != nil {
		slog.Warn("document store unavailable", "error", err)
	}

	if db != nil {
		defer db.Client().Disconnect(ctx)
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		importService      = importer.NewService()
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		summaryH     = summaryHandler.NewHandler(transactionService)
		importH      = importHandler.NewHandler(importService, transactionService)
		healthH      = health.NewHandler(db, cfg.DB.URL != "", cfg.DB.Name != "")
	)

	router := centavoHttp.New(transactionH, summaryH, importH, healthH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
