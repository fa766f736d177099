package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"adoptar/internal/authz"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"

	"github.com/gorilla/mux"
)

func registerSuccessStoryRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	routes := opts.Router.PathPrefix("/casos-exito").Subrouter()
	routes.HandleFunc("", handleListSuccessStoriesV1).Methods(http.MethodGet)
	routes.Handle("", requiresAuth(http.HandlerFunc(handleCreateSuccessStoryV1))).Methods(http.MethodPost)
	routes.HandleFunc("/{orgSlug}", handleListOrgSuccessStoriesV1).Methods(http.MethodGet)
	routes.Handle("/{storyId:[0-9]+}", requiresAuth(http.HandlerFunc(handleUpdateSuccessStoryV1))).Methods(http.MethodPut)
}

// handleListSuccessStoriesV1 is the public wall: every active
// organization with at least one published story.
func handleListSuccessStoriesV1(w http.ResponseWriter, r *http.Request) {
	groups, err := models.ListSuccessStoriesGroupedV1(dbInstance)
	if err != nil {
		sendModelError(w, r, err, "failed to list success stories")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, groups)
}

func handleListOrgSuccessStoriesV1(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["orgSlug"]
	org, err := models.GetOrganizationV1(models.GetOrganizationV1Opts{Db: dbInstance, Slug: &slug})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the organization")
		return
	}
	if !org.Activa {
		common.SendHttpFailResponse(w, r, http.StatusNotFound, "NOT_FOUND", "failed to retrieve the organization")
		return
	}
	stories, err := models.ListSuccessStoriesV1(models.ListSuccessStoriesV1Opts{Db: dbInstance, OrganizacionId: &org.Id})
	if err != nil {
		sendModelError(w, r, err, "failed to list success stories")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, models.SuccessStoryGroup{
		Organizacion: *org,
		CasosExito:   stories,
	})
}

type handleCreateSuccessStoryV1Input struct {
	AnimalId      int64   `json:"animal_id"`
	Titulo        string  `json:"titulo"`
	Historia      string  `json:"historia"`
	FotoActual1   *string `json:"foto_actual_1"`
	FotoActual2   *string `json:"foto_actual_2"`
	FotoActual3   *string `json:"foto_actual_3"`
	FechaAdopcion string  `json:"fecha_adopcion"`
}

func handleCreateSuccessStoryV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	identity := getAuthedIdentity(r)

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleCreateSuccessStoryV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}

	validationErrors := []string{}
	if input.AnimalId == 0 {
		validationErrors = append(validationErrors, "missing animal_id")
	}
	if input.Titulo == "" {
		validationErrors = append(validationErrors, "missing titulo")
	}
	if input.Historia == "" {
		validationErrors = append(validationErrors, "missing historia")
	}
	if input.FechaAdopcion == "" {
		validationErrors = append(validationErrors, "missing fecha_adopcion")
	}
	if len(validationErrors) > 0 {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to validate input", validationErrors)
		return
	}
	fechaAdopcion, err := time.Parse("2006-01-02", input.FechaAdopcion)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse fecha_adopcion, expected YYYY-MM-DD")
		return
	}

	animal, err := models.GetAnimalV1(models.GetAnimalV1Opts{Db: dbInstance, Id: input.AnimalId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the animal")
		return
	}
	if err := authz.Authorize(identity.caller(), authz.OperationWriteTenant, animal.OrganizacionId); err != nil {
		sendModelError(w, r, err, "failed to authorize the operation")
		return
	}

	storyId, err := models.CreateSuccessStoryV1(models.CreateSuccessStoryV1Opts{
		Db: dbInstance,

		AnimalId:       animal.Id,
		OrganizacionId: animal.OrganizacionId,
		Titulo:         input.Titulo,
		Historia:       input.Historia,
		FotoActual1:    input.FotoActual1,
		FotoActual2:    input.FotoActual2,
		FotoActual3:    input.FotoActual3,
		FechaAdopcion:  fechaAdopcion,
	})
	if err != nil {
		if errors.Is(err, models.ErrorDuplicateEntry) {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "DUPLICATE_ERROR", fmt.Sprintf("animal[%v] already has a success story", animal.Id))
			return
		}
		sendModelError(w, r, err, "failed to create the success story")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("created caso[%v] for animal[%v]", storyId, animal.Id))

	story, err := models.GetSuccessStoryV1(models.GetSuccessStoryV1Opts{Db: dbInstance, Id: storyId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the created success story")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusCreated, story)
}

type handleUpdateSuccessStoryV1Input struct {
	Titulo        *string `json:"titulo"`
	Historia      *string `json:"historia"`
	FotoActual1   *string `json:"foto_actual_1"`
	FotoActual2   *string `json:"foto_actual_2"`
	FotoActual3   *string `json:"foto_actual_3"`
	FechaAdopcion *string `json:"fecha_adopcion"`
}

func handleUpdateSuccessStoryV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	identity := getAuthedIdentity(r)

	storyId, err := strconv.ParseInt(mux.Vars(r)["storyId"], 10, 64)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse the story id")
		return
	}

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleUpdateSuccessStoryV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}

	story, err := models.GetSuccessStoryV1(models.GetSuccessStoryV1Opts{Db: dbInstance, Id: storyId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the success story")
		return
	}
	if err := authz.Authorize(identity.caller(), authz.OperationWriteTenant, story.OrganizacionId); err != nil {
		sendModelError(w, r, err, "failed to authorize the operation")
		return
	}

	fieldsToSet := map[string]any{}
	if input.Titulo != nil {
		if *input.Titulo == "" {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to validate input", []string{"titulo cannot be empty"})
			return
		}
		fieldsToSet["titulo"] = *input.Titulo
	}
	if input.Historia != nil {
		if *input.Historia == "" {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to validate input", []string{"historia cannot be empty"})
			return
		}
		fieldsToSet["historia"] = *input.Historia
	}
	if input.FotoActual1 != nil {
		fieldsToSet["foto_actual_1"] = *input.FotoActual1
	}
	if input.FotoActual2 != nil {
		fieldsToSet["foto_actual_2"] = *input.FotoActual2
	}
	if input.FotoActual3 != nil {
		fieldsToSet["foto_actual_3"] = *input.FotoActual3
	}
	if input.FechaAdopcion != nil {
		fechaAdopcion, err := time.Parse("2006-01-02", *input.FechaAdopcion)
		if err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse fecha_adopcion, expected YYYY-MM-DD")
			return
		}
		fieldsToSet["fecha_adopcion"] = fechaAdopcion
	}
	if len(fieldsToSet) == 0 {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to receive any fields to update")
		return
	}

	if err := models.UpdateSuccessStoryV1(models.UpdateSuccessStoryV1Opts{
		Db:          dbInstance,
		Id:          story.Id,
		FieldsToSet: fieldsToSet,
	}); err != nil {
		sendModelError(w, r, err, "failed to update the success story")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("updated caso[%v]", story.Id))

	updated, err := models.GetSuccessStoryV1(models.GetSuccessStoryV1Opts{Db: dbInstance, Id: story.Id})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the updated success story")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, updated)
}
