package database

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

type ConnectOpts struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

func (o *ConnectOpts) Validate() error {
	if o.Host == "" {
		return fmt.Errorf("failed to receive a host")
	}
	if o.Port < 1024 || o.Port > 65535 {
		return fmt.Errorf("failed to receive a valid port")
	}
	if o.Database == "" {
		return fmt.Errorf("failed to receive a database name")
	}
	return nil
}

func ConnectMysql(opts ConnectOpts) (*sql.DB, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate connection options: %w", err)
	}
	addr := net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))

	config := mysql.Config{
		User:                 opts.Username,
		Passwd:               opts.Password,
		Net:                  "tcp",
		Addr:                 addr,
		DBName:               opts.Database,
		AllowNativePasswords: true,
		ParseTime:            true,
		MultiStatements:      true,
	}

	connection, err := sql.Open("mysql", config.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}
	if err := connection.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return connection, nil
}

func CheckMysqlConnection(connection *sql.DB) error {
	if connection == nil {
		return fmt.Errorf("failed to receive a connection")
	}
	if _, err := connection.Exec("SELECT 1"); err != nil {
		return fmt.Errorf("failed to verify connection: %w", err)
	}
	return nil
}
