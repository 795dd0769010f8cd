package main

import (
	"os"

	"github.com/Aram-az/ESSDev-Lifeyears/config"
	"github.com/Aram-az/ESSDev-Lifeyears/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose    bool
	configFile string

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "lifeyears",
	Short: "Lifeyears mock API and terminal client",
	Long: `lifeyears serves the Lifeyears mock REST API and provides a terminal
client for it: fetch fixture data, view the appointment dashboard, and
capture onboarding submissions into local storage.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Log.Development)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (default $LIFEYEARS_CONFIG)")

	rootCmd.AddCommand(serveCmd, fetchCmd, dashboardCmd, onboardCmd, submissionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
