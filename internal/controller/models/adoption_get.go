package models

import (
	"database/sql"
	"fmt"
)

const adoptionRequestColumns = `
	id,
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
	estado_solicitud,
	fecha_solicitud
`

func scanAdoptionRequest(scan func(dest ...any) error) (*AdoptionRequest, error) {
	var request AdoptionRequest
	if err := scan(
		&request.Id,
		&request.AnimalId,
		&request.NombreCompleto,
		&request.Edad,
		&request.Email,
		&request.TelefonoWhatsapp,
		&request.Instagram,
		&request.CiudadZona,
		&request.TipoVivienda,
		&request.ViveSoloAcompanado,
		&request.TodosDeAcuerdo,
		&request.TieneOtrosAnimales,
		&request.OtrosAnimalesCastrados,
		&request.ExperienciaPrevia,
		&request.PuedeCubrirGastos,
		&request.VeterinariaQueUsa,
		&request.Motivacion,
		&request.CompromisoCastracion,
		&request.AceptaContacto,
		&request.EstadoSolicitud,
		&request.FechaSolicitud,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

type GetAdoptionRequestV1Opts struct {
	Db *sql.DB

	Id int64
}

// GetAdoptionRequestV1 returns an adoption request with its animal
// joined in so callers can check tenant ownership.
func GetAdoptionRequestV1(opts GetAdoptionRequestV1Opts) (*AdoptionRequest, error) {
	var request *AdoptionRequest
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT %s
				FROM solicitudes_adopcion
				WHERE id = ?
		`, adoptionRequestColumns),
		Args:     []any{opts.Id},
		FnSource: "models.GetAdoptionRequestV1",
		ProcessRow: func(row *sql.Row) error {
			scanned, err := scanAdoptionRequest(row.Scan)
			if err != nil {
				return err
			}
			request = scanned
			return nil
		},
	}); err != nil {
		return nil, err
	}
	animal, err := GetAnimalV1(GetAnimalV1Opts{Db: opts.Db, Id: request.AnimalId})
	if err != nil {
		return nil, fmt.Errorf("models.GetAdoptionRequestV1: failed to load referenced animal: %w", err)
	}
	request.Animal = animal
	return request, nil
}
