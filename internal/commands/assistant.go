package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/tui"
)

var assistantCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Run the onboarding assistant",
	Long: `Run the onboarding assistant that walks through the mandatory setup
steps (ODC access, personal details, security training). Confirming all of
them unlocks the full task checklist.`,
	Run: withStore(func(cmd *cobra.Command, args []string) {
		associateID, _ := cmd.Flags().GetString("as")
		if associateID == "" {
			fmt.Println("Error: --as <associate-id> is required")
			return
		}

		emp, err := store.EmployeeByAssociateID(associateID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if emp.MandatoryDone {
			fmt.Println("All mandatory tasks are already completed. Your full checklist is unlocked.")
			return
		}

		completed, err := tui.RunAssistantTUI(emp.Name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if !completed {
			fmt.Println("Come back once the remaining setup steps are done.")
			return
		}

		if err := store.SetMandatoryDone(associateID, true); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("All mandatory tasks completed. Your full checklist is now unlocked:")
		fmt.Printf("  onboard tasks --as %s\n", associateID)
	}),
}

func init() {
	assistantCmd.Flags().StringP("as", "a", "", "Associate ID to act as")
}
