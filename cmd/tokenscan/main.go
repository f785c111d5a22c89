package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Cyclone1070/tokenscan/internal/config"
	"github.com/Cyclone1070/tokenscan/jobs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	slog.SetDefault(cfg.NewLogger())

	if err := jobs.RunScan(os.Stdout, cfg.URL, cfg.CollectorOptions()); err != nil {
		slog.Error("scan failed", "url", cfg.URL, "error", err)
		os.Exit(1)
	}
}
