package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusUser string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-topic completion progress",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusUser, "user", "u", "local", "user whose progress to show")
}

func runStatus(cmd *cobra.Command, args []string) error {
	service, err := localService()
	if err != nil {
		return err
	}
	defer service.Close()

	stats, err := service.Stats(context.Background(), statusUser)
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No topics yet.")
		return nil
	}

	var total, completed int
	for _, st := range stats {
		fmt.Printf("%-40s %d/%d\n", st.Topic, st.Completed, st.Total)
		total += st.Total
		completed += st.Completed
	}
	fmt.Printf("%-40s %d/%d\n", "total", completed, total)
	return nil
}
