package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyloop/studyloop/internal/dashboard"
)

var (
	listUser   string
	listFilter string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks grouped by topic",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listUser, "user", "u", "local", "user whose tasks to list")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "view filter (all, completed, incomplete)")
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	service, err := localService()
	if err != nil {
		return err
	}
	defer service.Close()

	tasks, err := service.List(context.Background(), listUser)
	if err != nil {
		return err
	}

	filtered := dashboard.Filter(tasks, listFilter)

	if listJSON {
		return json.NewEncoder(os.Stdout).Encode(filtered)
	}

	groups := dashboard.GroupByTopic(filtered)
	if len(groups) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	for _, g := range groups {
		fmt.Printf("%s (%d%%)\n", g.Topic, int(g.Percent))
		for _, t := range g.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %s  (%s)\n", mark, t.Title, t.ID)
		}
	}
	return nil
}
