package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/report"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the manager's aggregate onboarding dashboard",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		employees, err := store.ListEmployees()
		if err != nil {
			fmt.Printf("Error fetching employees: %v\n", err)
			return
		}
		catalog, err := store.Catalog()
		if err != nil {
			fmt.Printf("Error fetching catalog: %v\n", err)
			return
		}

		buckets := report.Bucketize(employees, catalog)
		fmt.Println("Onboarding Overview")
		fmt.Println(strings.Repeat("=", 40))
		fmt.Printf("Total employees:   %d\n", buckets.Total)
		fmt.Printf("Fully onboarded:   %d\n", buckets.FullyOnboarded)
		fmt.Printf("In progress:       %d\n", buckets.InProgress)
		fmt.Printf("Not started:       %d\n", buckets.NotStarted)
		fmt.Printf("Overall progress:  %d%%\n\n", report.OverallRate(employees, catalog))

		rates := report.PerTaskRate(employees, catalog)
		fmt.Printf("%-4s %-44s %-10s %s\n", "ID", "TASK", "DONE", "RATE")
		fmt.Println(strings.Repeat("-", 70))
		for _, task := range catalog {
			rate := rates[task.ID]
			title := task.Title
			if len(title) > 42 {
				title = title[:39] + "..."
			}
			fmt.Printf("%-4d %-44s %-10s %d%%\n",
				task.ID,
				title,
				fmt.Sprintf("%d/%d", rate.CompletedCount, rate.TotalUsers),
				rate.Percent())
		}
	}),
}
