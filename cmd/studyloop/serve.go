package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyloop/studyloop/internal/config"
	"github.com/studyloop/studyloop/internal/core"
	"github.com/studyloop/studyloop/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the studyloop web server",
	Long: `Start the studyloop HTTP API.

Examples:
  studyloop serve
  studyloop serve --addr :9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "web server address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	service, err := core.NewTaskService(context.Background(), cfg.ToServiceConfig())
	if err != nil {
		return fmt.Errorf("failed to create task service: %w", err)
	}
	defer service.Close()

	fmt.Printf("Starting web server at http://localhost%s\n", cfg.Server.Addr)
	server := web.NewServer(service, web.NewTokenResolver(cfg.Auth.Tokens))
	return server.Run(cfg.Server.Addr)
}
