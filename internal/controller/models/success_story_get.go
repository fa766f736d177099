package models

import (
	"database/sql"
)

type GetSuccessStoryV1Opts struct {
	Db *sql.DB

	Id int64
}

func GetSuccessStoryV1(opts GetSuccessStoryV1Opts) (*SuccessStory, error) {
	var story *SuccessStory
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			SELECT
				id,
				animal_id,
				organizacion_id,
				titulo,
				historia,
				foto_actual_1,
				foto_actual_2,
				foto_actual_3,
				fecha_adopcion,
				fecha_publicacion
				FROM casos_exito
				WHERE id = ?
		`,
		Args:     []any{opts.Id},
		FnSource: "models.GetSuccessStoryV1",
		ProcessRow: func(row *sql.Row) error {
			var scanned SuccessStory
			if err := row.Scan(
				&scanned.Id,
				&scanned.AnimalId,
				&scanned.OrganizacionId,
				&scanned.Titulo,
				&scanned.Historia,
				&scanned.FotoActual1,
				&scanned.FotoActual2,
				&scanned.FotoActual3,
				&scanned.FechaAdopcion,
				&scanned.FechaPublicacion,
			); err != nil {
				return err
			}
			story = &scanned
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return story, nil
}
