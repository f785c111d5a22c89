package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/Cyclone1070/tokenscan/internal/config"
	"github.com/Cyclone1070/tokenscan/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// log output is routed through slog from here on
	slog.SetDefault(cfg.NewLogger())

	router := server.NewRouter(&server.Deps{CollectorOptions: cfg.CollectorOptions()})

	slog.Info("Running token scanner", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
