package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/db"
	"github.com/onboardhq/onboardpath/internal/parser"
	"github.com/onboardhq/onboardpath/internal/tui"
)

var assignCmd = &cobra.Command{
	Use:   "assign [task description]",
	Short: "Assign a new task to all employees",
	Long: `Assign a new catalog task visible to every employee.

Modes:
  Interactive: onboard assign -i (or just 'onboard assign' with no arguments)
  Quick: onboard assign "Task title" (with optional flags)
  Smart parsing: onboard assign "Security refresher +high pts:20 due:3days upload"

Smart parsing syntax:
  +priority   - Priority (low/medium/high or 1/2/3)
  pts:N       - Points awarded on completion (default 10)
  due:X       - Deadline (dd/mm/yyyy, Xdays, Xweeks)
  upload      - Require screenshot evidence and manager review`,
	Args: cobra.ArbitraryArgs,
	Run: withStore(func(cmd *cobra.Command, args []string) {
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and not explicitly interactive, go interactive
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			if err := tui.RunAssignTaskTUI(store); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		parsed := parser.ParseAssignment(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}

		req := db.CreateTaskRequest{
			Title:          parsed.Title,
			Priority:       parsed.Priority,
			Points:         parsed.Points,
			RequiresUpload: parsed.RequiresUpload,
			Deadline:       parsed.Deadline,
		}
		if desc, _ := cmd.Flags().GetString("description"); desc != "" {
			req.Description = desc
		}
		if est, _ := cmd.Flags().GetString("time"); est != "" {
			req.EstimatedTime = est
		}

		task, err := store.AppendTask(req)
		if err != nil {
			fmt.Printf("Error assigning task: %v\n", err)
			return
		}

		fmt.Printf("Assigned task #%d to all employees: %s\n", task.ID, task.Title)
		if task.Priority > 0 {
			fmt.Printf("  Priority: %s\n", task.PriorityLabel())
		}
		fmt.Printf("  Points: %d\n", task.Points)
		if task.RequiresUpload {
			fmt.Println("  Requires screenshot evidence")
		}
		if task.Deadline != nil {
			fmt.Printf("  Deadline: %s\n", parser.FormatDeadline(task.Deadline))
		}
	}),
}

func init() {
	assignCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	assignCmd.Flags().StringP("description", "d", "", "Task description")
	assignCmd.Flags().StringP("time", "t", "", "Estimated time, e.g. '45 min'")
}
