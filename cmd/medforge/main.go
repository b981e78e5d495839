package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/savegress/medforge/internal/api"
	"github.com/savegress/medforge/internal/config"
	"github.com/savegress/medforge/internal/export"
	"github.com/savegress/medforge/internal/generator"
)

func main() {
	log.Println("Starting MedForge...")

	// Load configuration
	cfg := loadConfig()

	start, end, err := cfg.Generation.Horizon()
	if err != nil {
		log.Fatalf("Invalid generation horizon: %v", err)
	}

	// Run the generation pipeline
	ds, err := generator.NewEngine(generator.Config{
		Seed:          cfg.Generation.Seed,
		PatientCount:  cfg.Generation.PatientCount,
		Start:         start,
		End:           end,
		RejectionRate: cfg.Generation.RejectionRate,
		AberrantRate:  cfg.Generation.AberrantRate,
	}).Run()
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	summary := ds.Summarize()
	log.Printf("Generated %d patients (%d with conditions), %d fills, %d transactions (%d rejected)",
		summary.Patients, summary.WithConditions, summary.Prescriptions,
		summary.Transactions, summary.Rejected)
	log.Printf("Generated %d diagnoses, %d labs (%d abnormal), %d notes, %d immunizations",
		summary.Diagnoses, summary.Labs, summary.AbnormalLabs,
		summary.Notes, summary.Immunizations)

	// Persist outputs
	if cfg.Output.CSVEnabled {
		if err := export.NewCSVWriter(cfg.Output.CSVDir).Write(ds); err != nil {
			log.Fatalf("CSV export failed: %v", err)
		}
		log.Printf("CSV tables written to %s", cfg.Output.CSVDir)
	}

	if cfg.Output.DBEnabled {
		store, err := export.NewSQLiteStore(cfg.Output.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite store: %v", err)
		}
		if err := store.Save(context.Background(), ds); err != nil {
			store.Close()
			log.Fatalf("SQLite export failed: %v", err)
		}
		store.Close()
		log.Printf("Dataset saved to %s", cfg.Output.SQLitePath)
	}

	if !cfg.Server.Enabled {
		log.Println("MedForge run complete")
		return
	}

	// Create API server
	server := api.NewServer(cfg)

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("MedForge API listening on port %d", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down MedForge...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("MedForge stopped")
}

func loadConfig() *config.Config {
	configPath := os.Getenv("MEDFORGE_CONFIG")
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Printf("Failed to load config from %s: %v, using defaults", configPath, err)
			return config.LoadFromEnv()
		}
		return cfg
	}
	return config.LoadFromEnv()
}
