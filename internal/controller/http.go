package controller

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"adoptar/internal/assets"
	"adoptar/internal/cache"
	"adoptar/internal/common"
	"adoptar/internal/queue"

	"github.com/gorilla/mux"
)

type HttpApplicationOpts struct {
	// AssetsConfig configures the image hosting client; when nil the
	// upload endpoints respond with a server error
	AssetsConfig *assets.Config

	// CacheConnection provides the cache used for the token revocation
	// list
	CacheConnection cache.Cache

	// DatabaseConnection provides a connection to a MySQL compatible database
	DatabaseConnection *sql.DB

	// EmailConfig provides SMTP configuration for notifications to be sent
	EmailConfig *SmtpServerConfig

	// JwtAudience and JwtIssuer end up in the registered claims of
	// issued tokens
	JwtAudience string
	JwtIssuer   string

	// JwtSecret signs issued tokens, change this to invalidate all
	// administrator sessions with immediate effect
	JwtSecret string

	// JwtTtl is how long issued tokens stay valid, DefaultTokenTtl
	// applies when unset
	JwtTtl time.Duration

	// LivenessChecks are sequentially executed when the liveness probe endpoint is hit
	LivenessChecks []func() error

	// ReadinessChecks are sequentially executed when the readiness probe endpoint is hit
	ReadinessChecks []func() error

	// QueueConnection provides the queue used for notification
	// dispatch; when nil notifications fall back to direct delivery
	QueueConnection queue.Instance

	// ServiceLogs is a centralised channel where logs get sent to
	ServiceLogs chan<- common.ServiceLog
}

func (o HttpApplicationOpts) Validate() error {
	errs := []error{}

	if o.CacheConnection == nil {
		errs = append(errs, fmt.Errorf("failed to receive a cache connection: %w", ErrorMissingCacheConnection))
	}

	if o.DatabaseConnection == nil {
		errs = append(errs, fmt.Errorf("failed to receive a database connection: %w", ErrorMissingDatabaseConnection))
	}

	if o.JwtSecret == "" {
		errs = append(errs, fmt.Errorf("failed to receive a jwt secret: %w", ErrorMissingJwtSecret))
	}

	if o.ServiceLogs == nil {
		errs = append(errs, fmt.Errorf("failed to receive a service log: %w", ErrorMissingServiceLog))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func GetHttpApplication(opts HttpApplicationOpts) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialise http application: %w", err)
	}

	// initialise common globals

	serviceLogs = &opts.ServiceLogs

	dbInstance = opts.DatabaseConnection
	cacheInstance = opts.CacheConnection
	queueInstance = opts.QueueConnection

	jwtConfig = jwtSettings{
		Audience: opts.JwtAudience,
		Issuer:   opts.JwtIssuer,
		Secret:   opts.JwtSecret,
		Ttl:      opts.JwtTtl,
	}
	if jwtConfig.Ttl <= 0 {
		jwtConfig.Ttl = DefaultTokenTtl
	}

	if opts.AssetsConfig != nil {
		client, err := assets.NewClient(*opts.AssetsConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise assets client: %w", err)
		}
		assetsClient = client
	} else {
		*serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "image uploads are not enabled")
	}

	if opts.EmailConfig == nil {
		*serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "email notifications are not enabled")
	} else {
		smtpConfig = *opts.EmailConfig
	}
	*serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "email status: %v", smtpConfig.IsSet())

	handler := mux.NewRouter()
	handler.NotFoundHandler = common.GetNotFoundHandler()
	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:          handler,
		ServiceLogs:     *serviceLogs,
		LivenessChecks:  opts.LivenessChecks,
		ReadinessChecks: opts.ReadinessChecks,
	})

	api := handler.PathPrefix("/api").Subrouter()
	apiOpts := RouteRegistrationOpts{
		Router:      api,
		ServiceLogs: *serviceLogs,
	}

	registerAuthRoutes(apiOpts)
	registerAnimalRoutes(apiOpts)
	registerAdoptionRequestRoutes(apiOpts)
	registerOrganizationRoutes(apiOpts)
	registerSuccessStoryRoutes(apiOpts)
	registerContactRequestRoutes(apiOpts)
	registerSuperAdminRoutes(apiOpts)
	registerUploadRoutes(apiOpts)
	registerDashboardRoutes(apiOpts)

	if err := handler.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		*serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "registered route[%s] with methods[%s]", pathTemplate, strings.Join(methods, "|"))
		return nil
	}); err != nil {
		return nil, err
	}

	return handler, nil
}

type RouteRegistrationOpts struct {
	Router      *mux.Router
	ServiceLogs chan<- common.ServiceLog
}
