package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"adoptar/internal/auth"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"

	"github.com/google/uuid"
)

func registerAuthRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	routes := opts.Router.PathPrefix("/auth").Subrouter()
	routes.HandleFunc("/login", handleLoginV1).Methods(http.MethodPost)
	routes.Handle("/logout", requiresAuth(http.HandlerFunc(handleLogoutV1))).Methods(http.MethodPost)
	routes.Handle("/me", requiresAuth(http.HandlerFunc(handleGetProfileV1))).Methods(http.MethodGet)
}

type handleLoginV1Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type handleLoginV1Output struct {
	Token         string               `json:"token"`
	Administrador models.Administrator `json:"administrador"`
}

func handleLoginV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleLoginV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}
	if input.Email == "" || input.Password == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to receive an email and a password")
		return
	}

	admin, err := models.AuthenticateAdministratorV1(models.AuthenticateAdministratorV1Opts{
		Db:       dbInstance,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		sendModelError(w, r, err, "failed to authenticate")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("admin[%v] authenticated successfully", admin.Id))

	token, err := auth.GenerateJwt(auth.GenerateJwtOpts{
		AdminId:      admin.Id,
		Audience:     jwtConfig.Audience,
		Email:        admin.Email,
		Id:           uuid.New().String(),
		IsSuperAdmin: admin.EsSuperAdmin,
		Issuer:       jwtConfig.Issuer,
		OrgId:        admin.OrganizacionId,
		Secret:       jwtConfig.Secret,
		Ttl:          jwtConfig.Ttl,
		Username:     admin.Username,
	})
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "SERVER_ERROR", "failed to issue a token")
		return
	}
	log(common.LogLevelDebug, "issued token successfully")

	common.SendHttpSuccessResponse(w, r, http.StatusOK, handleLoginV1Output{
		Token:         token,
		Administrador: *admin,
	})
}

type handleLogoutV1Output struct {
	IsSuccessful bool `json:"isSuccessful"`
}

// handleLogoutV1 revokes the presented token by caching its jti until
// it would have expired anyway.
func handleLogoutV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	identity := getAuthedIdentity(r)

	revocationKey := fmt.Sprintf("%s:%s", revocationCachePrefix, identity.TokenId)
	if err := cacheInstance.Set(revocationKey, time.Now().Format(time.RFC3339), jwtConfig.Ttl); err != nil {
		log(common.LogLevelWarn, fmt.Sprintf("failed to revoke token[%s]: %s", identity.TokenId, err))
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "SERVER_ERROR", "failed to log out")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("token[%s] has been revoked", identity.TokenId))

	common.SendHttpSuccessResponse(w, r, http.StatusOK, handleLogoutV1Output{
		IsSuccessful: true,
	})
}

func handleGetProfileV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	admin, err := models.GetAdministratorV1(models.GetAdministratorV1Opts{
		Db: dbInstance,
		Id: &identity.AdminId,
	})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the current administrator")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, admin)
}
