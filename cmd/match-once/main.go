package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/raiseready/match-engine/internal/database"
	"github.com/raiseready/match-engine/internal/logger"
	"github.com/raiseready/match-engine/internal/repository"
	"github.com/raiseready/match-engine/internal/services"
	"github.com/raiseready/match-engine/pkg/config"
)

// match-once runs the matching pipeline for a single founder/artifact pair
// and prints the result as JSON. Useful for re-matching after backfills and
// for verifying policy changes against production data.
func main() {
	founderFlag := flag.String("founder", "", "founder ID (required)")
	artifactFlag := flag.String("artifact", "", "artifact ID (required)")
	timeoutFlag := flag.Duration("timeout", 60*time.Second, "run timeout")
	flag.Parse()

	if *founderFlag == "" || *artifactFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	founderID, err := uuid.Parse(*founderFlag)
	if err != nil {
		log.Fatalf("Invalid founder ID: %v", err)
	}
	artifactID, err := uuid.Parse(*artifactFlag)
	if err != nil {
		log.Fatalf("Invalid artifact ID: %v", err)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()

	appLogger, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	svc := services.NewMatchService(repository.NewRepositories(db.DB), cfg, appLogger)

	result, err := svc.Run(ctx, founderID, artifactID)
	if err != nil {
		appLogger.Fatal("Matching run failed", err, "founder_id", founderID, "artifact_id", artifactID)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		appLogger.Fatal("Failed to encode result", err)
	}
	os.Stdout.Write(append(out, '\n'))
}
