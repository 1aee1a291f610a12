package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/studyloop/studyloop/internal/config"
	"github.com/studyloop/studyloop/internal/core"
	"github.com/studyloop/studyloop/internal/web"
)

var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("studyloop-web version %s starting...", Version)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	service, err := core.NewTaskService(ctx, cfg.ToServiceConfig())
	if err != nil {
		log.Fatalf("Failed to initialize task service: %v", err)
	}
	defer service.Close()

	server := web.NewServer(service, web.NewTokenResolver(cfg.Auth.Tokens))

	log.Printf("Starting web server on %s", cfg.Server.Addr)
	if err := server.RunContext(ctx, cfg.Server.Addr); err != nil {
		log.Fatalf("Web server error: %v", err)
	}
	log.Println("Web server stopped")
}
