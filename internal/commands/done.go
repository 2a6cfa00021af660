package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark an onboarding task as completed",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		associateID, _ := cmd.Flags().GetString("as")
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		if completed, err := isCompleted(associateID, uint(taskID)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		} else if completed {
			fmt.Printf("Task #%d is already completed\n", taskID)
			return
		}

		emp, err := engine.Toggle(associateID, uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Marked task #%d as done\n", taskID)
		if emp.Points != nil {
			fmt.Printf("Point balance: %d\n", emp.PointBalance())
		}
	}),
}

var undoneCmd = &cobra.Command{
	Use:   "undone [task-id]",
	Short: "Mark a completed task back to pending",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		associateID, _ := cmd.Flags().GetString("as")
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		if completed, err := isCompleted(associateID, uint(taskID)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		} else if !completed {
			fmt.Printf("Task #%d is not completed\n", taskID)
			return
		}

		emp, err := engine.Toggle(associateID, uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Marked task #%d back to pending\n", taskID)
		if emp.Points != nil {
			fmt.Printf("Point balance: %d\n", emp.PointBalance())
		}
	}),
}

// isCompleted reports the current completion state of a task for an associate.
func isCompleted(associateID string, taskID uint) (bool, error) {
	emp, err := store.EmployeeByAssociateID(associateID)
	if err != nil {
		return false, err
	}
	return emp.HasCompleted(taskID), nil
}

func init() {
	doneCmd.Flags().StringP("as", "a", "", "Associate ID to act as")
	undoneCmd.Flags().StringP("as", "a", "", "Associate ID to act as")
}
