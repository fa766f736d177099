package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"adoptar/internal/auth"
	"adoptar/internal/authz"
	"adoptar/internal/cache"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"
)

const adminAuthRequestContext common.HttpContextKey = "controller-auth"

var (
	errorNoToken      = errors.New("no_token")
	errorInvalidToken = errors.New("invalid_token")
)

// adminIdentity is the authenticated administrator attached to a
// request after the auth middleware has run.
type adminIdentity struct {
	AdminId      int64  `json:"adminId"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	OrgId        int64  `json:"orgId"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`

	// TokenId is the jti of the presented token, revoked on logout
	TokenId string `json:"tokenId"`

	// SourceIp is the IP address that the request came from
	SourceIp string `json:"sourceIp"`
}

func (i adminIdentity) caller() *authz.Caller {
	return &authz.Caller{
		AdminId:      i.AdminId,
		OrgId:        i.OrgId,
		IsSuperAdmin: i.IsSuperAdmin,
	}
}

// authenticate resolves the request's bearer token into an identity. It
// is a pure helper so endpoints with optional authentication can use it
// without the middleware's failure responses.
func authenticate(r *http.Request) (*adminIdentity, error) {
	authorizationHeader := r.Header.Get("Authorization")
	if authorizationHeader == "" {
		return nil, errorNoToken
	}
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return nil, fmt.Errorf("%w: malformed authorization header", errorInvalidToken)
	}
	token := strings.TrimPrefix(authorizationHeader, "Bearer ")

	claims, err := auth.ValidateJwt(jwtConfig.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorInvalidToken, err)
	}

	if _, err := cacheInstance.Get(fmt.Sprintf("%s:%s", revocationCachePrefix, claims.ID)); err == nil {
		return nil, fmt.Errorf("%w: token has been revoked", errorInvalidToken)
	} else if !errors.Is(err, cache.ErrorNotFound) {
		return nil, fmt.Errorf("failed to check revocation list: %w", err)
	}

	return &adminIdentity{
		AdminId:      claims.AdminId,
		Email:        claims.Email,
		Username:     claims.Username,
		OrgId:        claims.OrgId,
		IsSuperAdmin: claims.IsSuperAdmin,
		TokenId:      claims.ID,
		SourceIp:     r.RemoteAddr,
	}, nil
}

// getAuthedIdentity returns the identity set by the auth middleware.
func getAuthedIdentity(r *http.Request) adminIdentity {
	return r.Context().Value(adminAuthRequestContext).(adminIdentity)
}

// getOptionalIdentity returns the caller's identity when a valid token
// is presented and nil otherwise; public endpoints use this to widen
// visibility for owning administrators.
func getOptionalIdentity(r *http.Request) *adminIdentity {
	identity, err := authenticate(r)
	if err != nil {
		return nil
	}
	return identity
}

func getRouteAuther(serviceLogs chan<- common.ServiceLog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
			serviceLogs <- common.ServiceLogf(common.LogLevelTrace, "auth middleware is executing")
			identity, err := authenticate(r)
			if err != nil {
				if errors.Is(err, errorNoToken) {
					common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "NO_TOKEN", "failed to receive an authorization header")
					return
				}
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "INVALID_TOKEN", "failed to validate the provided token")
				return
			}
			log(common.LogLevelInfo, fmt.Sprintf("processing request from admin[%v]", identity.AdminId))
			authContext := context.WithValue(r.Context(), adminAuthRequestContext, *identity)
			next.ServeHTTP(w, r.WithContext(authContext))
		})
	}
}

// getSuperAdminRouteAuther layers the cross-tenant gate on top of the
// normal auther. The super-admin flag is re-read from the store on
// every call since the claim is only a snapshot from issue time.
func getSuperAdminRouteAuther(serviceLogs chan<- common.ServiceLog) func(http.Handler) http.Handler {
	auther := getRouteAuther(serviceLogs)
	return func(next http.Handler) http.Handler {
		return auther(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := getAuthedIdentity(r)
			admin, err := models.GetAdministratorV1(models.GetAdministratorV1Opts{
				Db: dbInstance,
				Id: &identity.AdminId,
			})
			if err != nil {
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "INVALID_TOKEN", "failed to resolve the current administrator")
				return
			}
			if !admin.EsSuperAdmin {
				common.SendHttpFailResponse(w, r, http.StatusForbidden, "FORBIDDEN", "this endpoint requires super-administrator access")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
