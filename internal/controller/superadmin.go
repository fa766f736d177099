package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"adoptar/internal/auth"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"
	"adoptar/internal/validate"

	"github.com/gorilla/mux"
)

func registerSuperAdminRoutes(opts RouteRegistrationOpts) {
	requiresSuperAdmin := getSuperAdminRouteAuther(opts.ServiceLogs)

	routes := opts.Router.PathPrefix("/super-admin").Subrouter()
	routes.Handle("/organizations", requiresSuperAdmin(http.HandlerFunc(handleListOrganizationsV1))).Methods(http.MethodGet)
	routes.Handle("/organizations", requiresSuperAdmin(http.HandlerFunc(handleCreateOrganizationV1))).Methods(http.MethodPost)
	routes.Handle("/organizations/{orgId}/toggle", requiresSuperAdmin(http.HandlerFunc(handleToggleOrganizationV1))).Methods(http.MethodPut)
	routes.Handle("/contact-requests", requiresSuperAdmin(http.HandlerFunc(handleListContactRequestsV1))).Methods(http.MethodGet)
	routes.Handle("/contact-requests/{requestId}", requiresSuperAdmin(http.HandlerFunc(handleUpdateContactRequestV1))).Methods(http.MethodPut)
}

func handleListOrganizationsV1(w http.ResponseWriter, r *http.Request) {
	organizations, err := models.ListOrganizationCountersV1(dbInstance)
	if err != nil {
		sendModelError(w, r, err, "failed to list organizations")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, organizations)
}

type handleCreateOrganizationV1Input struct {
	Nombre      string  `json:"nombre"`
	Slug        string  `json:"slug"`
	Email       *string `json:"email"`
	Telefono    *string `json:"telefono"`
	Direccion   *string `json:"direccion"`
	Descripcion *string `json:"descripcion"`

	AdminUsername string `json:"admin_username"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

type handleCreateOrganizationV1Output struct {
	Organizacion  models.Organization  `json:"organizacion"`
	Administrador models.Administrator `json:"administrador"`
}

// handleCreateOrganizationV1 onboards a new shelter together with its
// first administrator account, all-or-nothing.
func handleCreateOrganizationV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleCreateOrganizationV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}

	validationErrors := []string{}
	if input.Nombre == "" {
		validationErrors = append(validationErrors, "missing nombre")
	}
	if input.AdminUsername == "" {
		validationErrors = append(validationErrors, "missing admin_username")
	}
	if input.AdminEmail == "" || validate.Email(input.AdminEmail) != nil {
		validationErrors = append(validationErrors, "missing or invalid admin_email")
	}
	if input.AdminPassword == "" {
		validationErrors = append(validationErrors, "missing admin_password")
	}
	if input.Email != nil && validate.Email(*input.Email) != nil {
		validationErrors = append(validationErrors, "invalid email")
	}
	if len(validationErrors) > 0 {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to validate input", validationErrors)
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = validate.Slugify(input.Nombre)
	}
	if err := validate.Slug(slug); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("slug[%s] is not valid", slug))
		return
	}

	passwordHash, err := auth.HashPassword(input.AdminPassword)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "SERVER_ERROR", "failed to process the administrator password")
		return
	}

	output, err := models.CreateOrganizationV1(models.CreateOrganizationV1Opts{
		Db: dbInstance,

		Nombre:      input.Nombre,
		Slug:        slug,
		Email:       input.Email,
		Telefono:    input.Telefono,
		Direccion:   input.Direccion,
		Descripcion: input.Descripcion,

		AdminUsername:     input.AdminUsername,
		AdminEmail:        input.AdminEmail,
		AdminPasswordHash: passwordHash,
	})
	if err != nil {
		sendModelError(w, r, err, "failed to create the organization")
		return
	}
	log(common.LogLevelInfo, fmt.Sprintf("created organization[%v] with administrator[%v]", output.Organization.Id, output.Administrator.Id))

	common.SendHttpSuccessResponse(w, r, http.StatusCreated, handleCreateOrganizationV1Output{
		Organizacion:  output.Organization,
		Administrador: output.Administrator,
	})
}

func handleToggleOrganizationV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	orgId, err := strconv.ParseInt(mux.Vars(r)["orgId"], 10, 64)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse the organization id")
		return
	}
	org, err := models.ToggleOrganizationV1(dbInstance, orgId)
	if err != nil {
		sendModelError(w, r, err, "failed to toggle the organization")
		return
	}
	log(common.LogLevelInfo, fmt.Sprintf("organization[%v] activa is now %v", org.Id, org.Activa))
	common.SendHttpSuccessResponse(w, r, http.StatusOK, org)
}

func handleListContactRequestsV1(w http.ResponseWriter, r *http.Request) {
	listOpts := models.ListContactRequestsV1Opts{Db: dbInstance}
	if rawEstado := r.URL.Query().Get("estado"); rawEstado != "" {
		estado := models.ContactStatus(rawEstado)
		if !estado.IsValid() {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("estado[%s] is not recognised", rawEstado))
			return
		}
		listOpts.Estado = &estado
	}
	requests, err := models.ListContactRequestsV1(listOpts)
	if err != nil {
		sendModelError(w, r, err, "failed to list contact requests")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, requests)
}

type handleUpdateContactRequestV1Input struct {
	Estado     *models.ContactStatus `json:"estado"`
	NotasAdmin *string               `json:"notas_admin"`
}

func handleUpdateContactRequestV1(w http.ResponseWriter, r *http.Request) {
	requestId, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse the contact request id")
		return
	}
	if _, err := models.GetContactRequestV1(models.GetContactRequestV1Opts{Db: dbInstance, Id: requestId}); err != nil {
		sendModelError(w, r, err, "failed to retrieve the contact request")
		return
	}

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleUpdateContactRequestV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}
	if input.Estado == nil && input.NotasAdmin == nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to receive any fields to update")
		return
	}

	if err := models.UpdateContactRequestV1(models.UpdateContactRequestV1Opts{
		Db:         dbInstance,
		Id:         requestId,
		Estado:     input.Estado,
		NotasAdmin: input.NotasAdmin,
	}); err != nil {
		sendModelError(w, r, err, "failed to update the contact request")
		return
	}

	request, err := models.GetContactRequestV1(models.GetContactRequestV1Opts{Db: dbInstance, Id: requestId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the updated contact request")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, request)
}
