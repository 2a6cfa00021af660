package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/models"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List submissions awaiting manager review",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		subs, err := store.PendingSubmissions()
		if err != nil {
			fmt.Printf("Error fetching submissions: %v\n", err)
			return
		}
		if len(subs) == 0 {
			fmt.Println("No pending submissions.")
			return
		}

		employees, err := store.ListEmployees()
		if err != nil {
			fmt.Printf("Error fetching employees: %v\n", err)
			return
		}
		byID := make(map[uint]models.Employee, len(employees))
		for _, emp := range employees {
			byID[emp.ID] = emp
		}

		fmt.Printf("%-6s %-12s %-24s %-6s %s\n", "TASK", "ASSOCIATE", "NAME", "FILES", "SUBMITTED")
		fmt.Println(strings.Repeat("-", 70))
		for _, sub := range subs {
			emp := byID[sub.EmployeeID]
			fmt.Printf("#%-5d %-12s %-24s %-6d %s\n",
				sub.TaskID,
				emp.AssociateID,
				emp.Name,
				len(sub.Attachments),
				sub.SubmittedAt.Format("02/01/2006 15:04"))
		}
	}),
}

var approveCmd = &cobra.Command{
	Use:   "approve [task-id] [associate-id]",
	Short: "Approve a pending submission",
	Long:  "Approve a pending submission. The task is marked completed for the associate.",
	Args:  cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		decide(cmd, args, models.SubmissionApproved)
	}),
}

var rejectCmd = &cobra.Command{
	Use:   "reject [task-id] [associate-id]",
	Short: "Reject a pending submission",
	Args:  cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		decide(cmd, args, models.SubmissionRejected)
	}),
}

func decide(cmd *cobra.Command, args []string, verdict string) {
	taskID, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Printf("Error: invalid task ID '%s'\n", args[0])
		return
	}
	feedback, _ := cmd.Flags().GetString("message")

	sub, err := workflow.Decide(args[1], uint(taskID), verdict, feedback)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Submission for task #%d by %s: %s\n", sub.TaskID, args[1], sub.Status)
	if sub.ManagerFeedback != "" {
		fmt.Printf("Feedback: %s\n", sub.ManagerFeedback)
	}
}

func init() {
	approveCmd.Flags().StringP("message", "m", "", "Feedback for the associate")
	rejectCmd.Flags().StringP("message", "m", "", "Feedback for the associate")
}
