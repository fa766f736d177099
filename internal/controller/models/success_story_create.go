package models

import (
	"database/sql"
	"time"
)

type CreateSuccessStoryV1Opts struct {
	Db *sql.DB

	AnimalId       int64
	OrganizacionId int64
	Titulo         string
	Historia       string
	FotoActual1    *string
	FotoActual2    *string
	FotoActual3    *string
	FechaAdopcion  time.Time
}

// CreateSuccessStoryV1 publishes a success story. The unique key on
// animal_id surfaces ErrorDuplicateEntry when one already exists.
func CreateSuccessStoryV1(opts CreateSuccessStoryV1Opts) (int64, error) {
	var storyId int64
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			INSERT INTO casos_exito(
				animal_id,
				organizacion_id,
				titulo,
				historia,
				foto_actual_1,
				foto_actual_2,
				foto_actual_3,
				fecha_adopcion
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
		Args: []any{
			opts.AnimalId,
			opts.OrganizacionId,
			opts.Titulo,
			opts.Historia,
			opts.FotoActual1,
			opts.FotoActual2,
			opts.FotoActual3,
			opts.FechaAdopcion,
		},
		FnSource:     "models.CreateSuccessStoryV1",
		RowsAffected: oneRowAffected,
		LastInsertId: func(id int64) { storyId = id },
	}); err != nil {
		return 0, err
	}
	return storyId, nil
}
