package models

import (
	"database/sql"
	"fmt"
)

type DeleteAnimalV1Opts struct {
	Db *sql.DB

	Id int64
}

// DeleteAnimalV1 removes an animal unless adoption requests reference
// it, in which case ErrorHasDependencies is returned and the row is
// left untouched. The foreign key is ON DELETE RESTRICT so a race with
// a concurrent request creation still cannot orphan anything.
func DeleteAnimalV1(opts DeleteAnimalV1Opts) error {
	var requestCount int64
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			SELECT COUNT(*)
				FROM solicitudes_adopcion
				WHERE animal_id = ?
		`,
		Args:     []any{opts.Id},
		FnSource: "models.DeleteAnimalV1",
		ProcessRow: func(row *sql.Row) error {
			return row.Scan(&requestCount)
		},
	}); err != nil {
		return err
	}
	if requestCount > 0 {
		return fmt.Errorf("models.DeleteAnimalV1: %v adoption requests reference this animal: %w", requestCount, ErrorHasDependencies)
	}

	return executeMysqlDelete(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			DELETE FROM animales
				WHERE id = ?
		`,
		Args:         []any{opts.Id},
		FnSource:     "models.DeleteAnimalV1",
		RowsAffected: oneRowAffected,
	})
}
