package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"adoptar/internal/common"
	"adoptar/internal/controller/models"
	"adoptar/internal/validate"

	"github.com/gorilla/mux"
)

func registerOrganizationRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	routes := opts.Router.PathPrefix("/organization").Subrouter()
	routes.Handle("", requiresAuth(http.HandlerFunc(handleGetOwnOrganizationV1))).Methods(http.MethodGet)
	routes.Handle("", requiresAuth(http.HandlerFunc(handleUpdateOwnOrganizationV1))).Methods(http.MethodPut)
	routes.HandleFunc("/{slug}", handleGetPublicOrganizationV1).Methods(http.MethodGet)
}

func handleGetOwnOrganizationV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	org, err := models.GetOrganizationV1(models.GetOrganizationV1Opts{Db: dbInstance, Id: &identity.OrgId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the organization")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, org)
}

type handleUpdateOwnOrganizationV1Input struct {
	Nombre        *string `json:"nombre"`
	Email         *string `json:"email"`
	Telefono      *string `json:"telefono"`
	Whatsapp      *string `json:"whatsapp"`
	Direccion     *string `json:"direccion"`
	LogoUrl       *string `json:"logo_url"`
	Descripcion   *string `json:"descripcion"`
	Instagram     *string `json:"instagram"`
	Facebook      *string `json:"facebook"`
	DonacionAlias *string `json:"donacion_alias"`
	DonacionCbu   *string `json:"donacion_cbu"`
	DonacionInfo  *string `json:"donacion_info"`
}

func (i handleUpdateOwnOrganizationV1Input) fieldsToSet() map[string]any {
	fields := map[string]any{}
	set := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	set("nombre", i.Nombre)
	set("email", i.Email)
	set("telefono", i.Telefono)
	set("whatsapp", i.Whatsapp)
	set("direccion", i.Direccion)
	set("logo_url", i.LogoUrl)
	set("descripcion", i.Descripcion)
	set("instagram", i.Instagram)
	set("facebook", i.Facebook)
	set("donacion_alias", i.DonacionAlias)
	set("donacion_cbu", i.DonacionCbu)
	set("donacion_info", i.DonacionInfo)
	return fields
}

func handleUpdateOwnOrganizationV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleUpdateOwnOrganizationV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}
	if input.Email != nil && validate.Email(*input.Email) != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to receive a valid email")
		return
	}
	if input.LogoUrl != nil && validate.Url(*input.LogoUrl) != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to receive a valid logo_url")
		return
	}
	fieldsToSet := input.fieldsToSet()
	if len(fieldsToSet) == 0 {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to receive any fields to update")
		return
	}

	if err := models.UpdateOrganizationV1(models.UpdateOrganizationV1Opts{
		Db:          dbInstance,
		Id:          identity.OrgId,
		FieldsToSet: fieldsToSet,
	}); err != nil {
		sendModelError(w, r, err, "failed to update the organization")
		return
	}

	org, err := models.GetOrganizationV1(models.GetOrganizationV1Opts{Db: dbInstance, Id: &identity.OrgId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the updated organization")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, org)
}

// handleGetPublicOrganizationV1 serves the public shelter profile:
// inactive organizations read as not-found and contact/banking fields
// meant for administrators are stripped.
func handleGetPublicOrganizationV1(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	org, err := models.GetOrganizationV1(models.GetOrganizationV1Opts{Db: dbInstance, Slug: &slug})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the organization")
		return
	}
	if !org.Activa {
		common.SendHttpFailResponse(w, r, http.StatusNotFound, "NOT_FOUND", "failed to retrieve the organization")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, org.PublicView())
}
