package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyloop/studyloop/internal/config"
	"github.com/studyloop/studyloop/internal/core"
)

var (
	generateUser string
	generateJSON bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate five learning tasks for a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateUser, "user", "u", "local", "user the tasks belong to")
	generateCmd.Flags().BoolVarP(&generateJSON, "json", "j", false, "output as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	service, err := localService()
	if err != nil {
		return err
	}
	defer service.Close()

	tasks, err := service.Generate(context.Background(), generateUser, args[0])
	if err != nil {
		return err
	}

	if generateJSON {
		return json.NewEncoder(os.Stdout).Encode(tasks)
	}

	fmt.Printf("Generated %d tasks for %q:\n", len(tasks), args[0])
	for _, t := range tasks {
		fmt.Printf("  [ ] %s\n", t.Title)
	}
	return nil
}

// localService builds a task service from the local config for CLI use
func localService() (*core.TaskService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	service, err := core.NewTaskService(context.Background(), cfg.ToServiceConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	return service, nil
}
