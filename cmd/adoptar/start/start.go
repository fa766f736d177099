package start

import (
	"adoptar/cmd/adoptar/start/controller"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(controller.Command)
}

var Command = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s"},
	Short:   "Starts application components",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
