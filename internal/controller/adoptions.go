package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"adoptar/internal/authz"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"
	"adoptar/internal/email"

	"github.com/gorilla/mux"
)

func registerAdoptionRequestRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	routes := opts.Router.PathPrefix("/adoption-requests").Subrouter()
	routes.HandleFunc("", handleCreateAdoptionRequestV1).Methods(http.MethodPost)
	routes.Handle("", requiresAuth(http.HandlerFunc(handleListAdoptionRequestsV1))).Methods(http.MethodGet)
	routes.Handle("/stats", requiresAuth(http.HandlerFunc(handleGetAdoptionStatsV1))).Methods(http.MethodGet)
	routes.Handle("/{requestId}", requiresAuth(http.HandlerFunc(handleGetAdoptionRequestV1))).Methods(http.MethodGet)
	routes.Handle("/{requestId}", requiresAuth(http.HandlerFunc(handleUpdateAdoptionRequestV1))).Methods(http.MethodPatch)
	routes.Handle("/{requestId}", requiresAuth(http.HandlerFunc(handleDeleteAdoptionRequestV1))).Methods(http.MethodDelete)
}

type handleCreateAdoptionRequestV1Input struct {
	AnimalId               int64   `json:"animal_id"`
	NombreCompleto         string  `json:"nombre_completo"`
	Edad                   int     `json:"edad"`
	Email                  string  `json:"email"`
	TelefonoWhatsapp       string  `json:"telefono_whatsapp"`
	Instagram              *string `json:"instagram"`
	CiudadZona             string  `json:"ciudad_zona"`
	TipoVivienda           string  `json:"tipo_vivienda"`
	ViveSoloAcompanado     string  `json:"vive_solo_acompanado"`
	TodosDeAcuerdo         bool    `json:"todos_de_acuerdo"`
	TieneOtrosAnimales     bool    `json:"tiene_otros_animales"`
	OtrosAnimalesCastrados *string `json:"otros_animales_castrados"`
	ExperienciaPrevia      *string `json:"experiencia_previa"`
	PuedeCubrirGastos      bool    `json:"puede_cubrir_gastos"`
	VeterinariaQueUsa      *string `json:"veterinaria_que_usa"`
	Motivacion             string  `json:"motivacion"`
	CompromisoCastracion   bool    `json:"compromiso_castracion"`
	AceptaContacto         bool    `json:"acepta_contacto"`
}

// handleCreateAdoptionRequestV1 is the public application form. The
// response returns as soon as the row is persisted; the notification
// to the shelter is dispatched asynchronously and never fails the
// request.
func handleCreateAdoptionRequestV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleCreateAdoptionRequestV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}

	request, err := models.CreateAdoptionRequestV1(models.CreateAdoptionRequestV1Opts{
		Db: dbInstance,

		AnimalId:               input.AnimalId,
		NombreCompleto:         input.NombreCompleto,
		Edad:                   input.Edad,
		Email:                  input.Email,
		TelefonoWhatsapp:       input.TelefonoWhatsapp,
		Instagram:              input.Instagram,
		CiudadZona:             input.CiudadZona,
		TipoVivienda:           input.TipoVivienda,
		ViveSoloAcompanado:     input.ViveSoloAcompanado,
		TodosDeAcuerdo:         input.TodosDeAcuerdo,
		TieneOtrosAnimales:     input.TieneOtrosAnimales,
		OtrosAnimalesCastrados: input.OtrosAnimalesCastrados,
		ExperienciaPrevia:      input.ExperienciaPrevia,
		PuedeCubrirGastos:      input.PuedeCubrirGastos,
		VeterinariaQueUsa:      input.VeterinariaQueUsa,
		Motivacion:             input.Motivacion,
		CompromisoCastracion:   input.CompromisoCastracion,
		AceptaContacto:         input.AceptaContacto,
	})
	if err != nil {
		sendModelError(w, r, err, "failed to create the adoption request")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("created solicitud[%v] for animal[%v]", request.Id, request.AnimalId))

	dispatchSolicitudNotification(buildSolicitudNotification(*request))

	common.SendHttpSuccessResponse(w, r, http.StatusCreated, request)
}

func buildSolicitudNotification(request models.AdoptionRequest) solicitudNotificationMessage {
	message := solicitudNotificationMessage{
		Notification: email.SolicitudNotification{
			SolicitudId:          request.Id,
			NombreCompleto:       request.NombreCompleto,
			Edad:                 request.Edad,
			Email:                request.Email,
			TelefonoWhatsapp:     request.TelefonoWhatsapp,
			CiudadZona:           request.CiudadZona,
			TipoVivienda:         request.TipoVivienda,
			ViveSoloAcompanado:   request.ViveSoloAcompanado,
			TodosDeAcuerdo:       request.TodosDeAcuerdo,
			TieneOtrosAnimales:   request.TieneOtrosAnimales,
			PuedeCubrirGastos:    request.PuedeCubrirGastos,
			Motivacion:           request.Motivacion,
			CompromisoCastracion: request.CompromisoCastracion,
			FechaSolicitud:       request.FechaSolicitud.Format(time.RFC1123),
		},
	}
	if request.Instagram != nil {
		message.Notification.Instagram = *request.Instagram
	}
	if request.OtrosAnimalesCastrados != nil {
		message.Notification.OtrosAnimalesCastrados = *request.OtrosAnimalesCastrados
	}
	if request.ExperienciaPrevia != nil {
		message.Notification.ExperienciaPrevia = *request.ExperienciaPrevia
	}
	if request.VeterinariaQueUsa != nil {
		message.Notification.VeterinariaQueUsa = *request.VeterinariaQueUsa
	}
	if request.Animal != nil {
		message.Notification.AnimalId = request.Animal.Id
		message.Notification.AnimalNombre = request.Animal.Nombre
		message.Notification.AnimalEspecie = request.Animal.Especie
		if request.Animal.Organizacion != nil {
			org := request.Animal.Organizacion
			message.Recipient.Name = org.Nombre
			if org.Email != nil {
				message.Recipient.Address = *org.Email
			}
		}
	}
	return message
}

func handleListAdoptionRequestsV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	query := r.URL.Query()

	listOpts := models.ListAdoptionRequestsV1Opts{Db: dbInstance}
	if !identity.IsSuperAdmin {
		listOpts.OrganizacionId = &identity.OrgId
	} else if rawOrgId := query.Get("organizacion_id"); rawOrgId != "" {
		orgId, err := strconv.ParseInt(rawOrgId, 10, 64)
		if err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse organizacion_id")
			return
		}
		listOpts.OrganizacionId = &orgId
	}
	if rawEstado := query.Get("estado_solicitud"); rawEstado != "" {
		estado := models.RequestStatus(rawEstado)
		if !estado.IsValid() {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("estado_solicitud[%s] is not recognised", rawEstado))
			return
		}
		listOpts.EstadoSolicitud = &estado
	}
	if rawAnimalId := query.Get("animal_id"); rawAnimalId != "" {
		animalId, err := strconv.ParseInt(rawAnimalId, 10, 64)
		if err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse animal_id")
			return
		}
		listOpts.AnimalId = &animalId
	}

	requests, err := models.ListAdoptionRequestsV1(listOpts)
	if err != nil {
		sendModelError(w, r, err, "failed to list adoption requests")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, requests)
}

func handleGetAdoptionStatsV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	statsOpts := models.GetAdoptionStatsV1Opts{Db: dbInstance}
	if !identity.IsSuperAdmin {
		statsOpts.OrganizacionId = &identity.OrgId
	}
	stats, err := models.GetAdoptionStatsV1(statsOpts)
	if err != nil {
		sendModelError(w, r, err, "failed to aggregate adoption request statistics")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, stats)
}

// authorizeAdoptionRequestAccess loads the request and applies the
// tenant rule through the linked animal's owning organization,
// existence first so unknown ids read as not-found rather than
// forbidden.
func authorizeAdoptionRequestAccess(w http.ResponseWriter, r *http.Request, identity adminIdentity) *models.AdoptionRequest {
	requestId, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse the request id")
		return nil
	}
	request, err := models.GetAdoptionRequestV1(models.GetAdoptionRequestV1Opts{Db: dbInstance, Id: requestId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the adoption request")
		return nil
	}
	if request.Animal == nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "SERVER_ERROR", "failed to resolve the linked animal")
		return nil
	}
	if err := authz.Authorize(identity.caller(), authz.OperationWriteTenant, request.Animal.OrganizacionId); err != nil {
		sendModelError(w, r, err, "failed to authorize the operation")
		return nil
	}
	return request
}

func handleGetAdoptionRequestV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	request := authorizeAdoptionRequestAccess(w, r, identity)
	if request == nil {
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, request)
}

type handleUpdateAdoptionRequestV1Input struct {
	EstadoSolicitud models.RequestStatus `json:"estado_solicitud"`
}

func handleUpdateAdoptionRequestV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	request := authorizeAdoptionRequestAccess(w, r, identity)
	if request == nil {
		return
	}

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleUpdateAdoptionRequestV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}

	if err := models.UpdateAdoptionRequestStatusV1(models.UpdateAdoptionRequestStatusV1Opts{
		Db:              dbInstance,
		Id:              request.Id,
		EstadoSolicitud: input.EstadoSolicitud,
	}); err != nil {
		sendModelError(w, r, err, "failed to update the adoption request")
		return
	}

	updated, err := models.GetAdoptionRequestV1(models.GetAdoptionRequestV1Opts{Db: dbInstance, Id: request.Id})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the updated adoption request")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, updated)
}

type handleDeleteAdoptionRequestV1Output struct {
	RequestId    int64 `json:"request_id"`
	IsSuccessful bool  `json:"isSuccessful"`
}

func handleDeleteAdoptionRequestV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	identity := getAuthedIdentity(r)
	request := authorizeAdoptionRequestAccess(w, r, identity)
	if request == nil {
		return
	}

	if err := models.DeleteAdoptionRequestV1(models.DeleteAdoptionRequestV1Opts{
		Db: dbInstance,
		Id: request.Id,
	}); err != nil {
		sendModelError(w, r, err, "failed to delete the adoption request")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("solicitud[%v] has been deleted", request.Id))

	common.SendHttpSuccessResponse(w, r, http.StatusOK, handleDeleteAdoptionRequestV1Output{
		RequestId:    request.Id,
		IsSuccessful: true,
	})
}
