package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/report"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the points leaderboard",
	Long:  "Rank employees by accumulated points. Employees without a point balance are not ranked.",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		employees, err := store.ListEmployees()
		if err != nil {
			fmt.Printf("Error fetching employees: %v\n", err)
			return
		}

		ranked := report.RankByPoints(employees)
		if len(ranked) == 0 {
			fmt.Println("No employees with points yet.")
			return
		}

		fmt.Printf("%-5s %-24s %-18s %s\n", "RANK", "NAME", "DEPARTMENT", "POINTS")
		fmt.Println(strings.Repeat("-", 58))
		for i, emp := range ranked {
			fmt.Printf("#%-4d %-24s %-18s %d pts\n", i+1, emp.Name, emp.Department, emp.PointBalance())
		}
	}),
}
