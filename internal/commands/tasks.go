package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/parser"
	"github.com/onboardhq/onboardpath/internal/progress"
	"github.com/onboardhq/onboardpath/internal/tui"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Show an associate's onboarding checklist",
	Long:  "Show the task checklist for an associate, with lock, completion and review status per the active gating mode",
	Run: withStore(func(cmd *cobra.Command, args []string) {
		associateID, _ := cmd.Flags().GetString("as")
		if associateID == "" {
			fmt.Println("Error: --as <associate-id> is required")
			return
		}

		gateDone, err := engine.MandatoryGate(associateID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !gateDone {
			fmt.Println("Your mandatory onboarding steps are not finished yet.")
			fmt.Printf("Run 'onboard assistant --as %s' to unlock your full checklist.\n", associateID)
			return
		}

		views, err := engine.Checklist(associateID)
		if err != nil {
			fmt.Printf("Error fetching checklist: %v\n", err)
			return
		}
		if len(views) == 0 {
			fmt.Println("The task catalog is empty.")
			return
		}

		if interactive, _ := cmd.Flags().GetBool("tui"); interactive {
			if err := tui.RunChecklistTUI(engine, associateID); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		percent, err := engine.Percent(associateID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Onboarding progress: %d%%\n\n", percent)
		fmt.Printf("%-4s %-14s %-44s %-8s %-4s %s\n", "ID", "STATUS", "TITLE", "PRIORITY", "PTS", "DEADLINE")
		fmt.Println(strings.Repeat("-", 90))

		for _, view := range views {
			title := view.Task.Title
			if len(title) > 42 {
				title = title[:39] + "..."
			}

			fmt.Printf("%-4d %-14s %-44s %-8s %-4d %s\n",
				view.Task.ID,
				statusLabel(view),
				title,
				view.Task.PriorityLabel(),
				view.Task.Points,
				parser.FormatDeadline(view.Task.Deadline))

			if view.Locked && engine.Gating().Name() == "points" {
				fmt.Printf("     requires %d points to unlock\n", view.RequiredPoints)
			}
		}
	}),
}

// statusLabel renders one checklist row's state.
func statusLabel(view progress.TaskView) string {
	if view.Completed {
		return "done"
	}
	if view.Locked {
		return "locked"
	}
	if view.Submission != nil {
		return view.Submission.Status
	}
	if view.Task.RequiresUpload {
		return "needs upload"
	}
	return "pending"
}

func init() {
	tasksCmd.Flags().StringP("as", "a", "", "Associate ID to act as")
	tasksCmd.Flags().BoolP("tui", "i", false, "Interactive checklist TUI")
}
