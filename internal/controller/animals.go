package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"adoptar/internal/authz"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"

	"github.com/gorilla/mux"
)

func registerAnimalRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	routes := opts.Router.PathPrefix("/animals").Subrouter()
	routes.HandleFunc("", handleListAnimalsV1).Methods(http.MethodGet)
	routes.HandleFunc("/{animalId}", handleGetAnimalV1).Methods(http.MethodGet)
	routes.Handle("", requiresAuth(http.HandlerFunc(handleCreateAnimalV1))).Methods(http.MethodPost)
	routes.Handle("/{animalId}", requiresAuth(http.HandlerFunc(handleUpdateAnimalV1))).Methods(http.MethodPut)
	routes.Handle("/{animalId}/status", requiresAuth(http.HandlerFunc(handleUpdateAnimalStatusV1))).Methods(http.MethodPatch)
	routes.Handle("/{animalId}", requiresAuth(http.HandlerFunc(handleDeleteAnimalV1))).Methods(http.MethodDelete)
}

func getAnimalIdParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["animalId"], 10, 64)
}

// handleListAnimalsV1 serves the public catalogue. Anonymous callers
// and administrators browsing another tenant never see adopted
// animals; an administrator listing their own tenant sees everything.
func handleListAnimalsV1(w http.ResponseWriter, r *http.Request) {
	identity := getOptionalIdentity(r)

	query := r.URL.Query()
	listOpts := models.ListAnimalsV1Opts{Db: dbInstance}

	var scopedOrgId *int64
	if rawOrgId := query.Get("organizacion_id"); rawOrgId != "" {
		orgId, err := strconv.ParseInt(rawOrgId, 10, 64)
		if err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse organizacion_id")
			return
		}
		scopedOrgId = &orgId
	}
	if identity != nil && !identity.IsSuperAdmin {
		// tenant scoping always wins over caller-supplied filters
		scopedOrgId = &identity.OrgId
	}
	listOpts.OrganizacionId = scopedOrgId

	canSeeAll := false
	if identity != nil && scopedOrgId != nil {
		canSeeAll = authz.CanSeeAllStatuses(identity.caller(), *scopedOrgId)
	}
	if !canSeeAll {
		listOpts.VisibleStatuses = []models.AnimalStatus{
			models.AnimalStatusDisponible,
			models.AnimalStatusEnProceso,
			models.AnimalStatusEnTransito,
		}
	}

	if rawEstado := query.Get("estado"); rawEstado != "" {
		estado := models.AnimalStatus(rawEstado)
		if !estado.IsValid() {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", fmt.Sprintf("estado[%s] is not recognised", rawEstado))
			return
		}
		listOpts.Estado = &estado
	}
	if especie := query.Get("especie"); especie != "" {
		listOpts.Especie = &especie
	}
	if tamanio := query.Get("tamanio"); tamanio != "" {
		listOpts.Tamanio = &tamanio
	}
	if busqueda := query.Get("busqueda"); busqueda != "" {
		listOpts.Busqueda = &busqueda
	}

	animals, err := models.ListAnimalsV1(listOpts)
	if err != nil {
		sendModelError(w, r, err, "failed to list animals")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, animals)
}

// handleGetAnimalV1 returns one animal. Adopted animals respond with
// not-found to everyone except the owning tenant and super
// administrators even though the row exists.
func handleGetAnimalV1(w http.ResponseWriter, r *http.Request) {
	animalId, err := getAnimalIdParam(r)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse the animal id")
		return
	}
	animal, err := models.GetAnimalV1(models.GetAnimalV1Opts{Db: dbInstance, Id: animalId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the animal")
		return
	}

	identity := getOptionalIdentity(r)
	var caller *authz.Caller
	if identity != nil {
		caller = identity.caller()
	}
	if animal.Estado == models.AnimalStatusAdoptado && !authz.CanSeeAllStatuses(caller, animal.OrganizacionId) {
		common.SendHttpFailResponse(w, r, http.StatusNotFound, "NOT_FOUND", "failed to retrieve the animal")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, animal)
}

type handleCreateAnimalV1Input struct {
	Nombre                string  `json:"nombre"`
	Especie               string  `json:"especie"`
	Sexo                  string  `json:"sexo"`
	EdadAproximada        string  `json:"edad_aproximada"`
	Tamanio               string  `json:"tamanio"`
	RazaMezcla            *string `json:"raza_mezcla"`
	DescripcionHistoria   string  `json:"descripcion_historia"`
	EstadoCastracion      bool    `json:"estado_castracion"`
	EstadoVacunacion      *string `json:"estado_vacunacion"`
	EstadoDesparasitacion bool    `json:"estado_desparasitacion"`
	SocializaPerros       bool    `json:"socializa_perros"`
	SocializaGatos        bool    `json:"socializa_gatos"`
	SocializaNinos        bool    `json:"socializa_ninos"`
	NecesidadesEspeciales *string `json:"necesidades_especiales"`
	TipoHogarIdeal        *string `json:"tipo_hogar_ideal"`
	PublicadoPor          string  `json:"publicado_por"`
	ContactoRescatista    string  `json:"contacto_rescatista"`
	FotoPrincipal         string  `json:"foto_principal"`
	Foto2                 *string `json:"foto_2"`
	Foto3                 *string `json:"foto_3"`
	Foto4                 *string `json:"foto_4"`
	Foto5                 *string `json:"foto_5"`
}

func handleCreateAnimalV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	identity := getAuthedIdentity(r)

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleCreateAnimalV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}

	animalId, err := models.CreateAnimalV1(models.CreateAnimalV1Opts{
		Db: dbInstance,

		OrganizacionId:  identity.OrgId,
		AdministradorId: identity.AdminId,

		Nombre:                input.Nombre,
		Especie:               input.Especie,
		Sexo:                  input.Sexo,
		EdadAproximada:        input.EdadAproximada,
		Tamanio:               input.Tamanio,
		RazaMezcla:            input.RazaMezcla,
		DescripcionHistoria:   input.DescripcionHistoria,
		EstadoCastracion:      input.EstadoCastracion,
		EstadoVacunacion:      input.EstadoVacunacion,
		EstadoDesparasitacion: input.EstadoDesparasitacion,
		SocializaPerros:       input.SocializaPerros,
		SocializaGatos:        input.SocializaGatos,
		SocializaNinos:        input.SocializaNinos,
		NecesidadesEspeciales: input.NecesidadesEspeciales,
		TipoHogarIdeal:        input.TipoHogarIdeal,
		PublicadoPor:          input.PublicadoPor,
		ContactoRescatista:    input.ContactoRescatista,
		FotoPrincipal:         input.FotoPrincipal,
		Foto2:                 input.Foto2,
		Foto3:                 input.Foto3,
		Foto4:                 input.Foto4,
		Foto5:                 input.Foto5,
	})
	if err != nil {
		sendModelError(w, r, err, "failed to create the animal")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("created animal[%v] for org[%v]", animalId, identity.OrgId))

	animal, err := models.GetAnimalV1(models.GetAnimalV1Opts{Db: dbInstance, Id: animalId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the created animal")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusCreated, animal)
}

// authorizeAnimalWrite loads the animal and applies the tenant rule,
// existence first so an unauthorized caller still learns the row
// exists (except where visibility rules say otherwise).
func authorizeAnimalWrite(w http.ResponseWriter, r *http.Request, identity adminIdentity) *models.Animal {
	animalId, err := getAnimalIdParam(r)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse the animal id")
		return nil
	}
	animal, err := models.GetAnimalV1(models.GetAnimalV1Opts{Db: dbInstance, Id: animalId})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the animal")
		return nil
	}
	if err := authz.Authorize(identity.caller(), authz.OperationWriteTenant, animal.OrganizacionId); err != nil {
		sendModelError(w, r, err, "failed to authorize the operation")
		return nil
	}
	return animal
}

type handleUpdateAnimalV1Input struct {
	Nombre                *string `json:"nombre"`
	Especie               *string `json:"especie"`
	Sexo                  *string `json:"sexo"`
	EdadAproximada        *string `json:"edad_aproximada"`
	Tamanio               *string `json:"tamanio"`
	RazaMezcla            *string `json:"raza_mezcla"`
	DescripcionHistoria   *string `json:"descripcion_historia"`
	EstadoCastracion      *bool   `json:"estado_castracion"`
	EstadoVacunacion      *string `json:"estado_vacunacion"`
	EstadoDesparasitacion *bool   `json:"estado_desparasitacion"`
	SocializaPerros       *bool   `json:"socializa_perros"`
	SocializaGatos        *bool   `json:"socializa_gatos"`
	SocializaNinos        *bool   `json:"socializa_ninos"`
	NecesidadesEspeciales *string `json:"necesidades_especiales"`
	TipoHogarIdeal        *string `json:"tipo_hogar_ideal"`
	PublicadoPor          *string `json:"publicado_por"`
	ContactoRescatista    *string `json:"contacto_rescatista"`
	FotoPrincipal         *string `json:"foto_principal"`
	Foto2                 *string `json:"foto_2"`
	Foto3                 *string `json:"foto_3"`
	Foto4                 *string `json:"foto_4"`
	Foto5                 *string `json:"foto_5"`
}

func (i handleUpdateAnimalV1Input) fieldsToSet() map[string]any {
	fields := map[string]any{}
	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	setBool := func(column string, value *bool) {
		if value != nil {
			fields[column] = *value
		}
	}
	setString("nombre", i.Nombre)
	setString("especie", i.Especie)
	setString("sexo", i.Sexo)
	setString("edad_aproximada", i.EdadAproximada)
	setString("tamanio", i.Tamanio)
	setString("raza_mezcla", i.RazaMezcla)
	setString("descripcion_historia", i.DescripcionHistoria)
	setBool("estado_castracion", i.EstadoCastracion)
	setString("estado_vacunacion", i.EstadoVacunacion)
	setBool("estado_desparasitacion", i.EstadoDesparasitacion)
	setBool("socializa_perros", i.SocializaPerros)
	setBool("socializa_gatos", i.SocializaGatos)
	setBool("socializa_ninos", i.SocializaNinos)
	setString("necesidades_especiales", i.NecesidadesEspeciales)
	setString("tipo_hogar_ideal", i.TipoHogarIdeal)
	setString("publicado_por", i.PublicadoPor)
	setString("contacto_rescatista", i.ContactoRescatista)
	setString("foto_principal", i.FotoPrincipal)
	setString("foto_2", i.Foto2)
	setString("foto_3", i.Foto3)
	setString("foto_4", i.Foto4)
	setString("foto_5", i.Foto5)
	return fields
}

func (i handleUpdateAnimalV1Input) validate() error {
	if i.Especie != nil && !isOneOf(*i.Especie, models.AnimalSpecies) {
		return fmt.Errorf("especie must be one of %v", models.AnimalSpecies)
	}
	if i.Sexo != nil && !isOneOf(*i.Sexo, models.AnimalSexes) {
		return fmt.Errorf("sexo must be one of %v", models.AnimalSexes)
	}
	if i.Tamanio != nil && !isOneOf(*i.Tamanio, models.AnimalSizes) {
		return fmt.Errorf("tamanio must be one of %v", models.AnimalSizes)
	}
	return nil
}

func isOneOf(value string, list []string) bool {
	for _, entry := range list {
		if value == entry {
			return true
		}
	}
	return false
}

func handleUpdateAnimalV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	animal := authorizeAnimalWrite(w, r, identity)
	if animal == nil {
		return
	}

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleUpdateAnimalV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}
	if err := input.validate(); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	fieldsToSet := input.fieldsToSet()
	if len(fieldsToSet) == 0 {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to receive any fields to update")
		return
	}

	if err := models.UpdateAnimalV1(models.UpdateAnimalV1Opts{
		Db:          dbInstance,
		Id:          animal.Id,
		FieldsToSet: fieldsToSet,
	}); err != nil {
		sendModelError(w, r, err, "failed to update the animal")
		return
	}

	updated, err := models.GetAnimalV1(models.GetAnimalV1Opts{Db: dbInstance, Id: animal.Id})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the updated animal")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, updated)
}

type handleUpdateAnimalStatusV1Input struct {
	Estado models.AnimalStatus `json:"estado"`
}

func handleUpdateAnimalStatusV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	animal := authorizeAnimalWrite(w, r, identity)
	if animal == nil {
		return
	}

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}
	var input handleUpdateAnimalStatusV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "failed to parse request body")
		return
	}

	if err := models.UpdateAnimalStatusV1(models.UpdateAnimalStatusV1Opts{
		Db:     dbInstance,
		Id:     animal.Id,
		Estado: input.Estado,
	}); err != nil {
		sendModelError(w, r, err, "failed to update the animal status")
		return
	}

	updated, err := models.GetAnimalV1(models.GetAnimalV1Opts{Db: dbInstance, Id: animal.Id})
	if err != nil {
		sendModelError(w, r, err, "failed to retrieve the updated animal")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, updated)
}

type handleDeleteAnimalV1Output struct {
	AnimalId     int64 `json:"animal_id"`
	IsSuccessful bool  `json:"isSuccessful"`
}

func handleDeleteAnimalV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	identity := getAuthedIdentity(r)
	animal := authorizeAnimalWrite(w, r, identity)
	if animal == nil {
		return
	}

	if err := models.DeleteAnimalV1(models.DeleteAnimalV1Opts{
		Db: dbInstance,
		Id: animal.Id,
	}); err != nil {
		sendModelError(w, r, err, "failed to delete the animal")
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("animal[%v] has been deleted", animal.Id))

	common.SendHttpSuccessResponse(w, r, http.StatusOK, handleDeleteAnimalV1Output{
		AnimalId:     animal.Id,
		IsSuccessful: true,
	})
}
