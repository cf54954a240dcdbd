package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/taxpolicylab/captax/internal/config"
	"github.com/taxpolicylab/captax/internal/database"
	"github.com/taxpolicylab/captax/internal/modules/assets"
	"github.com/taxpolicylab/captax/internal/modules/charts"
	"github.com/taxpolicylab/captax/internal/modules/reporting"
	"github.com/taxpolicylab/captax/internal/modules/scenarios"
	"github.com/taxpolicylab/captax/internal/server"
	"github.com/taxpolicylab/captax/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting captax analysis")

	// Validate the asset catalog before any computation starts
	catalog := assets.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid asset configuration")
	}

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Evaluate every policy scenario
	evaluator := scenarios.NewEvaluator(catalog, scenarios.DefaultMacro(), log)
	policies := scenarios.BaselinePolicies()

	results := make([]scenarios.Results, len(policies))
	for i, policy := range policies {
		results[i], err = evaluator.Evaluate(policy)
		if err != nil {
			log.Fatal().Err(err).Str("policy", policy.Name).Msg("Evaluation failed")
		}
		log.Info().
			Str("policy", policy.Name).
			Float64("metr_machines", results[i][assets.Machines].METR).
			Msg("Scenario evaluated")
	}

	// Stack into the long-form table and persist
	table := reporting.BuildTable(policies, results)

	repo := reporting.NewRepository(db.Conn(), log)
	runID, err := repo.SaveRun(table)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to save results")
	}

	csvPath := filepath.Join(cfg.OutputDir, "results.csv")
	if err := table.SaveCSV(csvPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to write CSV")
	}

	chartPath := filepath.Join(cfg.OutputDir, "metr_machines.html")
	if err := charts.WriteHTML(table, chartPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to write chart")
	}

	log.Info().
		Str("run_id", runID).
		Str("csv", csvPath).
		Str("chart", chartPath).
		Int("rows", len(table.Rows)).
		Msg("Analysis complete")

	if !cfg.Serve {
		return
	}

	// Serve the chart and results for interactive viewing
	srv := server.New(server.Config{
		Port: cfg.Port,
		Log:  log,
		Repo: repo,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Chart available at /chart")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
