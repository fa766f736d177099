package models

import (
	"database/sql"
	"fmt"
	"strings"
)

type ListAnimalsV1Opts struct {
	Db *sql.DB

	// OrganizacionId scopes the listing to one organization
	OrganizacionId *int64

	// VisibleStatuses restricts the estado column; an empty slice
	// means every status is visible
	VisibleStatuses []AnimalStatus

	// Estado, Especie and Tamanio are caller-supplied filters that
	// AND-combine with the visibility restriction
	Estado  *AnimalStatus
	Especie *string
	Tamanio *string

	// Busqueda matches against nombre and descripcion_historia
	Busqueda *string
}

// ListAnimalsV1 returns animals ordered by publication date, newest
// first. Caller filters never widen the visible status set.
func ListAnimalsV1(opts ListAnimalsV1Opts) ([]Animal, error) {
	conditions := []string{}
	args := []any{}

	if opts.OrganizacionId != nil {
		conditions = append(conditions, "organizacion_id = ?")
		args = append(args, *opts.OrganizacionId)
	}
	if len(opts.VisibleStatuses) > 0 {
		placeholders := make([]string, len(opts.VisibleStatuses))
		for i, status := range opts.VisibleStatuses {
			placeholders[i] = "?"
			args = append(args, string(status))
		}
		conditions = append(conditions, fmt.Sprintf("estado IN (%s)", strings.Join(placeholders, ", ")))
	}
	if opts.Estado != nil {
		conditions = append(conditions, "estado = ?")
		args = append(args, string(*opts.Estado))
	}
	if opts.Especie != nil {
		conditions = append(conditions, "especie = ?")
		args = append(args, *opts.Especie)
	}
	if opts.Tamanio != nil {
		conditions = append(conditions, "tamanio = ?")
		args = append(args, *opts.Tamanio)
	}
	if opts.Busqueda != nil {
		conditions = append(conditions, "(nombre LIKE ? OR descripcion_historia LIKE ?)")
		pattern := "%" + *opts.Busqueda + "%"
		args = append(args, pattern, pattern)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	animals := []Animal{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT %s
				FROM animales
				%s
				ORDER BY fecha_publicacion DESC
		`, animalColumns, whereClause),
		Args:     args,
		FnSource: "models.ListAnimalsV1",
		ProcessRows: func(rows *sql.Rows) error {
			animal, err := scanAnimal(rows.Scan)
			if err != nil {
				return err
			}
			animals = append(animals, *animal)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return animals, nil
}
