package controller

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"adoptar/internal/assets"
	"adoptar/internal/cache"
	"adoptar/internal/cli"
	"adoptar/internal/common"
	"adoptar/internal/controller"
	"adoptar/internal/database"
	"adoptar/internal/email"
	"adoptar/internal/queue"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "listen-addr",
		DefaultValue: "0.0.0.0:8080",
		Usage:        "specifies the listen address of the server",
		Type:         cli.FlagTypeString,
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
	{
		Name:         "redis-addr",
		DefaultValue: "localhost:6379",
		Usage:        "defines the hostname (including port) of the redis server",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "redis-username",
		DefaultValue: "adoptar",
		Usage:        "defines the username used to login to redis",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "redis-password",
		DefaultValue: "password",
		Usage:        "defines the password used to login to redis",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "nats-addr",
		DefaultValue: "",
		Usage:        "defines the hostname (including port) of the nats server, leave empty to deliver notifications without a queue",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "nats-username",
		DefaultValue: "",
		Usage:        "defines the username used to login to nats",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "nats-password",
		DefaultValue: "",
		Usage:        "defines the password used to login to nats",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "jwt-secret",
		DefaultValue: "",
		Usage:        "specifies the secret used to sign administrator tokens",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "jwt-ttl",
		DefaultValue: controller.DefaultTokenTtl,
		Usage:        "specifies how long issued administrator tokens stay valid",
		Type:         cli.FlagTypeDuration,
	},
	{
		Name:         "jwt-issuer",
		DefaultValue: "adoptar",
		Usage:        "specifies the issuer claim on issued administrator tokens",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "jwt-audience",
		DefaultValue: "adoptar",
		Usage:        "specifies the audience claim on issued administrator tokens",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "cloudinary-cloud-name",
		DefaultValue: "",
		Usage:        "defines the cloudinary cloud name, leave empty to disable image uploads",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "cloudinary-api-key",
		DefaultValue: "",
		Usage:        "defines the cloudinary api key",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "cloudinary-api-secret",
		DefaultValue: "",
		Usage:        "defines the cloudinary api secret",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "sender-email",
		DefaultValue: "noreply@adoptar.ar",
		Usage:        "defines the notification sender's address",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "sender-name",
		DefaultValue: "Adoptar Notificaciones",
		Usage:        "defines the notification sender's name",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "smtp-hostname",
		DefaultValue: "",
		Usage:        "defines the smtp server's hostname, leave empty to disable email notifications",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "smtp-port",
		DefaultValue: 587,
		Usage:        "defines the smtp server's port",
		Type:         cli.FlagTypeInteger,
	},
	{
		Name:         "smtp-username",
		DefaultValue: "",
		Usage:        "defines the smtp server user's email address",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "smtp-password",
		DefaultValue: "",
		Usage:        "defines the smtp server user's password",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "worker-consumer-id",
		DefaultValue: "adoptar-controller",
		Usage:        "defines the durable consumer id used by the notification worker",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "controller",
	Aliases: []string{"c"},
	Short:   "Starts the controller component",
	Long:    "Starts the controller component which serves the public listing endpoints and the authenticated administration API",
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
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}
		defer databaseConnection.Close()
		logrus.Debugf("established connection to database")

		logrus.Infof("starting connection freshness verifier...")
		databaseConnectionOk := true
		databaseConnectionStatusLastUpdatedAt := time.Now()
		databaseConnectionStatusUpdates := make(chan bool)
		var databaseConnectionStatusMutex sync.Mutex
		go func() {
			for {
				statusUpdate := <-databaseConnectionStatusUpdates
				databaseConnectionStatusMutex.Lock()
				if statusUpdate != databaseConnectionOk {
					logAtLevel := logrus.Infof
					if !statusUpdate {
						logAtLevel = logrus.Warnf
					}
					logAtLevel("database connection freshness status switched to '%v'", statusUpdate)
					databaseConnectionStatusLastUpdatedAt = time.Now()
				}
				databaseConnectionOk = statusUpdate
				databaseConnectionStatusMutex.Unlock()
			}
		}()
		go func() {
			for {
				logrus.Tracef("verifying database connection freshness...")
				if err := database.CheckMysqlConnection(databaseConnection); err != nil {
					logrus.Errorf("failed to check mysql connection: %s", err)
					databaseConnectionStatusUpdates <- false
				} else {
					logrus.Tracef("database connection freshness verified")
					databaseConnectionStatusUpdates <- true
				}
				<-time.After(3 * time.Second)
			}
		}()

		logrus.Infof("establishing connection to cache...")
		if err := cache.InitRedis(cache.InitRedisOpts{
			Addr:        viper.GetString("redis-addr"),
			Username:    viper.GetString("redis-username"),
			Password:    viper.GetString("redis-password"),
			ServiceLogs: serviceLogs,
		}); err != nil {
			return fmt.Errorf("failed to initialise redis cache: %w", err)
		}
		logrus.Debugf("established connection to cache")

		natsAddr := viper.GetString("nats-addr")
		if natsAddr != "" {
			logrus.Infof("establishing connection to queue...")
			if err := queue.InitNats(queue.InitNatsOpts{
				Addr:        natsAddr,
				Username:    viper.GetString("nats-username"),
				Password:    viper.GetString("nats-password"),
				ServiceLogs: serviceLogs,
			}); err != nil {
				return fmt.Errorf("failed to initialise nats queue: %w", err)
			}
			logrus.Debugf("established connection to queue")
		} else {
			logrus.Warnf("queue is not configured, notifications will be delivered in-process")
		}

		logrus.Infof("initialising application...")
		controllerOpts := controller.HttpApplicationOpts{
			CacheConnection:    cache.Get(),
			DatabaseConnection: databaseConnection,
			JwtAudience:        viper.GetString("jwt-audience"),
			JwtIssuer:          viper.GetString("jwt-issuer"),
			JwtSecret:          viper.GetString("jwt-secret"),
			JwtTtl:             viper.GetDuration("jwt-ttl"),
			QueueConnection:    queue.Get(),
			ReadinessChecks: []func() error{
				func() error {
					if !databaseConnectionOk {
						return fmt.Errorf("database connection is pending restoration")
					}
					return nil
				},
			},
			LivenessChecks: []func() error{
				func() error {
					if !databaseConnectionOk && databaseConnectionStatusLastUpdatedAt.Before(time.Now().Add(-30*time.Second)) {
						return fmt.Errorf("database connection is invalid")
					}
					return nil
				},
			},
			ServiceLogs: serviceLogs,
		}

		cloudName := viper.GetString("cloudinary-cloud-name")
		if cloudName != "" {
			logrus.Infof("initialising image uploads...")
			controllerOpts.AssetsConfig = &assets.Config{
				CloudName: cloudName,
				ApiKey:    viper.GetString("cloudinary-api-key"),
				ApiSecret: viper.GetString("cloudinary-api-secret"),
			}
		}

		smtpHostname := viper.GetString("smtp-hostname")
		if smtpHostname != "" {
			logrus.Infof("initialising email...")
			controllerOpts.EmailConfig = &controller.SmtpServerConfig{
				Config: email.SmtpConfig{
					Hostname: smtpHostname,
					Port:     viper.GetInt("smtp-port"),
					Username: viper.GetString("smtp-username"),
					Password: viper.GetString("smtp-password"),
				},
				Sender: email.User{
					Address: viper.GetString("sender-email"),
					Name:    viper.GetString("sender-name"),
				},
			}
		}

		controllerHandler, err := controller.GetHttpApplication(controllerOpts)
		if err != nil {
			return fmt.Errorf("failed to initialise application: %w", err)
		}
		logrus.Debugf("initialised application")

		workerContext, cancelWorker := context.WithCancel(cmd.Context())
		defer cancelWorker()
		if queue.Get() != nil {
			logrus.Infof("starting notification worker...")
			go func() {
				if err := controller.StartNotificationWorker(controller.StartNotificationWorkerOpts{
					ConsumerId: viper.GetString("worker-consumer-id"),
					Context:    workerContext,
				}); err != nil {
					logrus.Errorf("notification worker stopped: %s", err)
				}
			}()
		}

		logrus.Infof("initialising application server...")
		httpServerDone := make(chan common.Done)
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		go func() {
			sig := <-sigs
			logrus.Infof("received signal: %s", sig)
			cancelWorker()
			httpServerDone <- common.Done{}
		}()
		server, err := common.NewHttpServer(common.NewHttpServerOpts{
			Addr:        viper.GetString("listen-addr"),
			Done:        httpServerDone,
			Handler:     controllerHandler,
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to create new http server: %w", err)
		}
		logrus.Debugf("initialised server")
		logrus.Infof("starting server...")
		if err := server.Start(); err != nil {
			return fmt.Errorf("failed to start http server: %w", err)
		}
		if queueConnection := queue.Get(); queueConnection != nil {
			if err := queueConnection.Close(); err != nil {
				logrus.Warnf("failed to drain queue connection: %s", err)
			}
		}
		logrus.Infof("shut down gracefully")
		return nil
	},
}
