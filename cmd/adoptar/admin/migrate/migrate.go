package migrate

import (
	"fmt"

	"adoptar/internal/cli"
	"adoptar/internal/common"
	"adoptar/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "steps",
		DefaultValue: 0,
		Usage:        "number of migration steps to run, negative values roll back, 0 runs everything pending",
		Type:         cli.FlagTypeInteger,
	},
	{
		Name:         "mysql-host",
		Short:        'H',
		DefaultValue: "127.0.0.1",
		Usage:        "specifies the hostname of the database",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mysql-port",
		Short:        'P',
		DefaultValue: 3306,
		Usage:        "specifies the port which the database is listening on",
		Type:         cli.FlagTypeInteger,
	},
	{
		Name:         "mysql-database",
		Short:        'N',
		DefaultValue: "adoptar",
		Usage:        "specifies the name of the central database schema",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mysql-user",
		Short:        'U',
		DefaultValue: "adoptar",
		Usage:        "specifies the username to use to login",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mysql-password",
		Short:        'p',
		DefaultValue: "password",
		Usage:        "specifies the password to use to login",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "migrate",
	Aliases: []string{"m"},
	Short:   "Runs database schema migrations",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.Debugf("starting logging engine...")
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)
		logrus.Debugf("started logging engine")

		logrus.Infof("establishing connection to database...")
		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			Host:     viper.GetString("mysql-host"),
			Port:     viper.GetInt("mysql-port"),
			Username: viper.GetString("mysql-user"),
			Password: viper.GetString("mysql-password"),
			Database: viper.GetString("mysql-database"),
		})
		if err != nil {
			return fmt.Errorf("failed to establish connection to database: %s", err)
		}
		defer databaseConnection.Close()
		logrus.Debugf("established connection to database")

		if err := database.MigrateMysql(database.MigrateOpts{
			Connection:  databaseConnection,
			Steps:       viper.GetInt("steps"),
			ServiceLogs: serviceLogs,
		}); err != nil {
			return fmt.Errorf("failed to run migrations: %s", err)
		}
		logrus.Infof("migrations are up-to-date")
		return nil
	},
}
