package cli

import (
	"fmt"

	intconfig "travelplanner/internal/config"
	"travelplanner/internal/db"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var printOnly bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables in the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if printOnly {
			target, err := db.ParseURL(env.DatabaseURL)
			if err != nil {
				return err
			}
			for _, stmt := range db.Statements(target.Driver) {
				fmt.Fprintln(cmd.OutOrStdout(), stmt+";")
			}
			return nil
		}

		conn, err := intconfig.Open(cmd.Context(), env.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := db.Migrate(cmd.Context(), conn); err != nil {
			return err
		}
		logrus.WithField("driver", conn.DriverName()).Info("schema up to date")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&printOnly, "print", false, "Print the DDL instead of applying it")
}
