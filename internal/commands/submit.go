package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/submission"
)

var submitCmd = &cobra.Command{
	Use:   "submit [task-id] [screenshot files...]",
	Short: "Submit screenshot evidence for an upload-required task",
	Long: `Submit one or more screenshots for a task that requires upload proof.
The submission goes to pending status until a manager approves or rejects it.`,
	Args: cobra.MinimumNArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string) {
		associateID, _ := cmd.Flags().GetString("as")
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		var files []submission.EvidenceFile
		for _, path := range args[1:] {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Printf("Error reading %s: %v\n", path, err)
				return
			}
			files = append(files, submission.EvidenceFile{
				Name: filepath.Base(path),
				Data: data,
			})
		}

		sub, err := workflow.Submit(associateID, uint(taskID), files)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Submitted %d screenshot(s) for task #%d, status: %s\n",
			len(sub.Attachments), sub.TaskID, sub.Status)
		fmt.Println("A manager will review your submission.")
	}),
}

func init() {
	submitCmd.Flags().StringP("as", "a", "", "Associate ID to act as")
}
