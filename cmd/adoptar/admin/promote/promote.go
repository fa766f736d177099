package promote

import (
	"fmt"

	"adoptar/internal/cli"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"
	"adoptar/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "email",
		DefaultValue: "",
		Usage:        "the email address of the administrator account to promote",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "revoke",
		DefaultValue: false,
		Usage:        "revokes the platform administrator role instead of granting it",
		Type:         cli.FlagTypeBool,
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
	Use:     "promote",
	Aliases: []string{"pr"},
	Short:   "Grants (or revokes) the platform administrator role on an account",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		email := viper.GetString("email")
		if email == "" {
			return fmt.Errorf("failed to receive an email address, specify one with --email")
		}

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

		administrator, err := models.GetAdministratorV1(models.GetAdministratorV1Opts{
			Db:    databaseConnection,
			Email: &email,
		})
		if err != nil {
			return fmt.Errorf("failed to retrieve administrator with email[%s]: %s", email, err)
		}

		isSuperAdmin := !viper.GetBool("revoke")
		if err := models.SetSuperAdminV1(models.SetSuperAdminV1Opts{
			Db:           databaseConnection,
			Email:        administrator.Email,
			EsSuperAdmin: isSuperAdmin,
		}); err != nil {
			return fmt.Errorf("failed to update administrator with email[%s]: %s", email, err)
		}

		if isSuperAdmin {
			logrus.Infof("administrator[%v] with email[%s] is now a platform administrator", administrator.Id, administrator.Email)
		} else {
			logrus.Infof("administrator[%v] with email[%s] is no longer a platform administrator", administrator.Id, administrator.Email)
		}
		return nil
	},
}
