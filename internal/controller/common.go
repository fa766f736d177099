package controller

import (
	"database/sql"
	"time"

	"adoptar/internal/assets"
	"adoptar/internal/cache"
	"adoptar/internal/common"
	"adoptar/internal/email"
	"adoptar/internal/queue"
)

const (
	// revocationCachePrefix namespaces the jti entries of logged-out
	// tokens in the cache
	revocationCachePrefix = "revoked-token"

	// DefaultTokenTtl is how long issued tokens stay valid when no
	// explicit duration is configured
	DefaultTokenTtl = 24 * time.Hour
)

type jwtSettings struct {
	Audience string
	Issuer   string
	Secret   string
	Ttl      time.Duration
}

// SmtpServerConfig carries the SMTP relay credentials plus the sender
// identity used on outgoing notifications.
type SmtpServerConfig struct {
	Config email.SmtpConfig
	Sender email.User
}

func (c SmtpServerConfig) IsSet() bool {
	return c.Config.Hostname != ""
}

var assetsClient *assets.Client
var cacheInstance cache.Cache
var dbInstance *sql.DB
var jwtConfig jwtSettings
var queueInstance queue.Instance
var serviceLogs *chan<- common.ServiceLog
var smtpConfig SmtpServerConfig
