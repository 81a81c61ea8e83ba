// Package cli is the travelplanner command line: serve, migrate and openapi.
package cli

import (
	"fmt"
	"os"

	intconfig "travelplanner/internal/config"

	"github.com/spf13/cobra"
)

var (
	env     intconfig.Env
	dbURL   string
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:           "travelplanner",
	Short:         "Travel planner REST backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env = intconfig.LoadEnv()
		if dbURL != "" {
			env.DatabaseURL = dbURL
		}
		if logJSON {
			env.LogFormat = "json"
		}
		env.ConfigureLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "Database URL (overrides TRAVEL_PLANNER_DB_URL)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON log lines")
	rootCmd.AddCommand(serveCmd, migrateCmd, openapiCmd)
}
