package commands

import (
	"github.com/spf13/cobra"

	"github.com/onboardhq/onboardpath/internal/config"
	"github.com/onboardhq/onboardpath/internal/db"
	"github.com/onboardhq/onboardpath/internal/progress"
	"github.com/onboardhq/onboardpath/internal/submission"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg      *config.Config
	store    *db.Store
	engine   *progress.Engine
	workflow *submission.Workflow
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "An employee-onboarding tracker",
	Long: `onboard tracks new-hire onboarding from the terminal.
Associates work through a gated task checklist, submit screenshot evidence
for review, and log incident tickets; managers review submissions, assign
tasks, and watch aggregate progress.`,
}

// initStore loads config, opens the database and wires the rules engine.
// Panics on init failure, same as any broken installation would.
func initStore() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic(err)
	}
	store, err = db.Open(cfg.DBPath)
	if err != nil {
		panic(err)
	}
	engine = progress.NewEngine(store, progress.PolicyForMode(cfg.GatingMode))
	workflow = submission.NewWorkflow(store)
}

// withStore wraps a command function to initialize the database first
func withStore(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initStore()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(assistantCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(ticketCmd)
	rootCmd.AddCommand(versionCmd)
}
