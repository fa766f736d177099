package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"adoptar/internal/common"
	"adoptar/internal/controller/models"
	"adoptar/internal/validate"
)

func registerContactRequestRoutes(opts RouteRegistrationOpts) {
	routes := opts.Router.PathPrefix("/contact-requests").Subrouter()
	routes.HandleFunc("", handleCreateContactRequestV1).Methods(http.MethodPost)
}

type handleCreateContactRequestV1Input struct {
	NombreRefugio    string  `json:"nombre_refugio"`
	NombreContacto   string  `json:"nombre_contacto"`
	Email            string  `json:"email"`
	Telefono         string  `json:"telefono"`
	Ciudad           string  `json:"ciudad"`
	Descripcion      string  `json:"descripcion"`
	Instagram        *string `json:"instagram"`
	Facebook         *string `json:"facebook"`
	CantidadAnimales *string `json:"cantidad_animales"`
}

// handleCreateContactRequestV1 is the public onboarding form for
// shelters that want to join the platform.
func handleCreateContactRequestV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleCreateContactRequestV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}
	if input.Email != "" && validate.Email(input.Email) != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to receive a valid email")
		return
	}

	requestId, err := models.CreateContactRequestV1(models.CreateContactRequestV1Opts{
		Db: dbInstance,

		NombreRefugio:    input.NombreRefugio,
		NombreContacto:   input.NombreContacto,
		Email:            input.Email,
		Telefono:         input.Telefono,
		Ciudad:           input.Ciudad,
		Descripcion:      input.Descripcion,
		Instagram:        input.Instagram,
		Facebook:         input.Facebook,
		CantidadAnimales: input.CantidadAnimales,
	})
	if err != nil {
		sendModelError(w, r, err, "failed to create the contact request")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("created contact request[%v] from refugio[%s]", requestId, input.NombreRefugio))

	request, err := models.GetContactRequestV1(models.GetContactRequestV1Opts{Db: dbInstance, Id: requestId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the created contact request")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusCreated, request)
}
