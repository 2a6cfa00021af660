package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/db"
	"github.com/onboardhq/onboardpath/internal/progress"
)

var employeeCmd = &cobra.Command{
	Use:     "employee",
	Aliases: []string{"associate"},
	Short:   "Manage the employee roster",
}

var employeeAddCmd = &cobra.Command{
	Use:   "add [associate-id] [name]",
	Short: "Register a new employee for onboarding",
	Args:  cobra.MinimumNArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		department, _ := cmd.Flags().GetString("department")
		trackPoints, _ := cmd.Flags().GetBool("points")
		now := time.Now()

		emp, err := store.CreateEmployee(db.CreateEmployeeRequest{
			AssociateID:    args[0],
			Name:           strings.Join(args[1:], " "),
			Department:     department,
			OnboardingDate: &now,
			TrackPoints:    trackPoints,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Registered %s (%s)\n", emp.Name, emp.AssociateID)
		fmt.Printf("Next step: 'onboard assistant --as %s' to complete the mandatory sequence.\n", emp.AssociateID)
	}),
}

var employeeListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List employees with their progress",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		employees, err := store.ListEmployees()
		if err != nil {
			fmt.Printf("Error fetching employees: %v\n", err)
			return
		}
		if len(employees) == 0 {
			fmt.Println("No employees registered. Use 'onboard employee add' to register the first one.")
			return
		}

		catalog, err := store.Catalog()
		if err != nil {
			fmt.Printf("Error fetching catalog: %v\n", err)
			return
		}

		fmt.Printf("%-12s %-24s %-18s %-10s %-8s %s\n", "ID", "NAME", "DEPARTMENT", "PROGRESS", "GATE", "POINTS")
		fmt.Println(strings.Repeat("-", 84))
		for i := range employees {
			emp := employees[i]
			gate := "open"
			if !emp.MandatoryDone {
				gate = "locked"
			}
			points := "-"
			if emp.Points != nil {
				points = fmt.Sprintf("%d", emp.PointBalance())
			}
			fmt.Printf("%-12s %-24s %-18s %-10s %-8s %s\n",
				emp.AssociateID,
				emp.Name,
				emp.Department,
				fmt.Sprintf("%d%%", progress.Percent(catalog, &emp)),
				gate,
				points)
		}
	}),
}

func init() {
	employeeAddCmd.Flags().StringP("department", "d", "", "Department / service line")
	employeeAddCmd.Flags().BoolP("points", "p", false, "Track a point balance for this employee")
	employeeCmd.AddCommand(employeeAddCmd)
	employeeCmd.AddCommand(employeeListCmd)
}
