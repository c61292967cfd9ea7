// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/wishplan/internal/config"
	"fjacquet/wishplan/internal/container"
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/planner"
)

// CommonFlags represents the flags that are shared by multiple commands.
type CommonFlags struct {
	Input    string
	Output   string
	Wishlist string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// App holds the wired dependencies; built before any command runs.
	App *container.Container

	// SharedFlags are the persistent flags available to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "wishplan",
		Short: "A CLI tool to manage a wishlist and plan purchases.",
		Long: `wishplan manages a personal wishlist and projects when each item becomes
affordable: by accumulating monthly savings, or immediately via a financing
offer whose amortization cost is computed.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to wishplan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			logging.SetDefaultLogger(logging.NewLogrusAdapterFromLogger(Log))

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			if SharedFlags.Wishlist != "" {
				cfg.Data.WishlistFile = SharedFlags.Wishlist
			}
			Log = config.ConfigureLoggingFromConfig(cfg)

			App, err = container.NewContainer(cfg, planner.SystemClock())
			if err != nil {
				Log.Fatalf("Failed to wire dependencies: %v", err)
			}
		},
		// Persist learned state after ANY command finishes.
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if App == nil {
				return
			}
			if err := App.Wishlist().Save(); err != nil {
				Log.Warnf("Failed to save wishlist: %v", err)
			}
			if err := App.Suggester().SaveMappings(); err != nil {
				Log.Warnf("Failed to save category mappings: %v", err)
			}
		},
	}
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Wishlist, "wishlist", "w", "", "Wishlist database file")
}
