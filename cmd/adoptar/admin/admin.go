package admin

import (
	"adoptar/cmd/adoptar/admin/migrate"
	"adoptar/cmd/adoptar/admin/promote"
	"adoptar/cmd/adoptar/admin/seed"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(migrate.Command)
	Command.AddCommand(promote.Command)
	Command.AddCommand(seed.Command)
}

var Command = &cobra.Command{
	Use:     "admin",
	Aliases: []string{"adm"},
	Short:   "Privileged direct-to-database management commands for platform operators",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
