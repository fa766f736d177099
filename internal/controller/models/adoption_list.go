package models

import (
	"database/sql"
	"fmt"
	"strings"
)

type ListAdoptionRequestsV1Opts struct {
	Db *sql.DB

	// OrganizacionId scopes the listing to requests for animals of one
	// organization; nil means every organization (super-administrator)
	OrganizacionId *int64

	EstadoSolicitud *RequestStatus
	AnimalId        *int64
}

// ListAdoptionRequestsV1 returns adoption requests ordered by filing
// date, newest first, each with a summary of the referenced animal.
func ListAdoptionRequestsV1(opts ListAdoptionRequestsV1Opts) ([]AdoptionRequest, error) {
	conditions := []string{}
	args := []any{}

	if opts.OrganizacionId != nil {
		conditions = append(conditions, "a.organizacion_id = ?")
		args = append(args, *opts.OrganizacionId)
	}
	if opts.EstadoSolicitud != nil {
		conditions = append(conditions, "s.estado_solicitud = ?")
		args = append(args, string(*opts.EstadoSolicitud))
	}
	if opts.AnimalId != nil {
		conditions = append(conditions, "s.animal_id = ?")
		args = append(args, *opts.AnimalId)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	requests := []AdoptionRequest{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT
				%s,
				a.id,
				a.nombre,
				a.especie,
				a.foto_principal,
				a.estado,
				a.organizacion_id
				FROM solicitudes_adopcion s
				JOIN animales a ON a.id = s.animal_id
				%s
				ORDER BY s.fecha_solicitud DESC
		`, prefixColumns(adoptionRequestColumns, "s"), whereClause),
		Args:     args,
		FnSource: "models.ListAdoptionRequestsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var request AdoptionRequest
			var animal Animal
			if err := rows.Scan(
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
				&animal.Id,
				&animal.Nombre,
				&animal.Especie,
				&animal.FotoPrincipal,
				&animal.Estado,
				&animal.OrganizacionId,
			); err != nil {
				return err
			}
			request.Animal = &animal
			requests = append(requests, request)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return requests, nil
}
