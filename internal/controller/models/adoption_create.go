package models

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// MinimumAdopterAge is the youngest age at which an adoption request
// is accepted.
const MinimumAdopterAge = 18

// MinimumMotivationLength is the shortest motivation text accepted,
// in characters.
const MinimumMotivationLength = 20

type CreateAdoptionRequestV1Opts struct {
	Db *sql.DB

	AnimalId               int64
	NombreCompleto         string
	Edad                   int
	Email                  string
	TelefonoWhatsapp       string
	Instagram              *string
	CiudadZona             string
	TipoVivienda           string
	ViveSoloAcompanado     string
	TodosDeAcuerdo         bool
	TieneOtrosAnimales     bool
	OtrosAnimalesCastrados *string
	ExperienciaPrevia      *string
	PuedeCubrirGastos      bool
	VeterinariaQueUsa      *string
	Motivacion             string
	CompromisoCastracion   bool
	AceptaContacto         bool
}

// Validate checks every adopter-side precondition. The animal-side
// checks (existence, requestable status) are separate so the handler
// can map them to their own response codes.
func (o CreateAdoptionRequestV1Opts) Validate() error {
	errs := []error{}
	if o.NombreCompleto == "" {
		errs = append(errs, fmt.Errorf("missing nombre_completo"))
	}
	if o.Edad < MinimumAdopterAge {
		errs = append(errs, fmt.Errorf("edad must be at least %v", MinimumAdopterAge))
	}
	if o.Email == "" {
		errs = append(errs, fmt.Errorf("missing email"))
	}
	if o.TelefonoWhatsapp == "" {
		errs = append(errs, fmt.Errorf("missing telefono_whatsapp"))
	}
	if o.CiudadZona == "" {
		errs = append(errs, fmt.Errorf("missing ciudad_zona"))
	}
	if !isInList(o.TipoVivienda, HousingTypes) {
		errs = append(errs, fmt.Errorf("tipo_vivienda must be one of %v", HousingTypes))
	}
	if o.ViveSoloAcompanado == "" {
		errs = append(errs, fmt.Errorf("missing vive_solo_acompanado"))
	}
	if !o.TodosDeAcuerdo {
		errs = append(errs, fmt.Errorf("todos_de_acuerdo must be true"))
	}
	if len(strings.TrimSpace(o.Motivacion)) < MinimumMotivationLength {
		errs = append(errs, fmt.Errorf("motivacion must be at least %v characters", MinimumMotivationLength))
	}
	if !o.CompromisoCastracion {
		errs = append(errs, fmt.Errorf("compromiso_castracion must be true"))
	}
	if len(errs) > 0 {
		errs = append([]error{ErrorValidationFailed}, errs...)
		return errors.Join(errs...)
	}
	return nil
}

// CreateAdoptionRequestV1 files an adoption request against an animal.
// The animal must exist and be in a requestable status; the request
// always starts as Nueva with a server-side timestamp.
func CreateAdoptionRequestV1(opts CreateAdoptionRequestV1Opts) (*AdoptionRequest, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("models.CreateAdoptionRequestV1: %w", err)
	}

	animal, err := GetAnimalV1(GetAnimalV1Opts{Db: opts.Db, Id: opts.AnimalId})
	if err != nil {
		return nil, err
	}
	if !animal.Estado.IsRequestable() {
		return nil, fmt.Errorf("models.CreateAdoptionRequestV1: animal[%v] is in estado[%s]: %w", animal.Id, animal.Estado, ErrorAnimalNotAvailable)
	}

	var requestId int64
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			INSERT INTO solicitudes_adopcion(
				animal_id,
				nombre_completo,
				edad,
				email,
				telefono_whatsapp,
				instagram,
				ciudad_zona,
				tipo_vivienda,
				vive_solo_acompanado,
				todos_de_acuerdo,
				tiene_otros_animales,
				otros_animales_castrados,
				experiencia_previa,
				puede_cubrir_gastos,
				veterinaria_que_usa,
				motivacion,
				compromiso_castracion,
				acepta_contacto,
				estado_solicitud
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
		Args: []any{
			opts.AnimalId,
			opts.NombreCompleto,
			opts.Edad,
			opts.Email,
			opts.TelefonoWhatsapp,
			opts.Instagram,
			opts.CiudadZona,
			opts.TipoVivienda,
			opts.ViveSoloAcompanado,
			opts.TodosDeAcuerdo,
			opts.TieneOtrosAnimales,
			opts.OtrosAnimalesCastrados,
			opts.ExperienciaPrevia,
			opts.PuedeCubrirGastos,
			opts.VeterinariaQueUsa,
			opts.Motivacion,
			opts.CompromisoCastracion,
			opts.AceptaContacto,
			string(RequestStatusNueva),
		},
		FnSource:     "models.CreateAdoptionRequestV1",
		RowsAffected: oneRowAffected,
		LastInsertId: func(id int64) { requestId = id },
	}); err != nil {
		return nil, err
	}

	return GetAdoptionRequestV1(GetAdoptionRequestV1Opts{Db: opts.Db, Id: requestId})
}
