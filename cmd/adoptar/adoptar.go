package adoptar

import (
	"fmt"
	"os"
	"strings"

	"adoptar/cmd/adoptar/admin"
	"adoptar/cmd/adoptar/start"
	"adoptar/internal/cli"
	"adoptar/internal/common"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
}

func init() {
	Command.AddCommand(admin.Command)
	Command.AddCommand(start.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		cli.InitLogging(viper.GetString("log-level"))
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:   "adoptar",
	Short: "Multi-tenant backend for an animal adoption platform",
	Long:  "Multi-tenant backend where shelters publish animal listings, the public submits adoption requests, and administrators manage both through a token-authenticated API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
