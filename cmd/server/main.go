package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"cvetrack/internal/config"
	"cvetrack/internal/feed"
	"cvetrack/internal/metrics"
	"cvetrack/internal/server"
	"cvetrack/internal/store"
	"cvetrack/internal/tracker"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	repo := store.NewCSVRepository(cfg.StorePath)
	meta := store.NewRefreshMeta(cfg.MetadataPath)
	fetcher := feed.NewFetcher(cfg.FeedURL)
	t := tracker.New(fetcher, repo, meta, cfg.MinScore)

	metrics.Init(repo)

	srv := server.New(cfg)
	srv.RegisterRoutes(repo, meta, t)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
