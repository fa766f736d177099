package models

import (
	"database/sql"
	"fmt"
	"strings"
)

type UpdateAnimalV1Opts struct {
	Db *sql.DB

	Id int64

	// FieldsToSet maps column names to their new values; only the
	// provided keys change so an explicit false is honoured while an
	// absent field is left alone
	FieldsToSet map[string]any
}

// UpdateAnimalV1 applies a partial update to an animal.
func UpdateAnimalV1(opts UpdateAnimalV1Opts) error {
	if len(opts.FieldsToSet) == 0 {
		return fmt.Errorf("models.UpdateAnimalV1: nothing to update: %w", ErrorInvalidInput)
	}
	_, fieldSetters, fieldValues, err := parseUpdateMap(opts.FieldsToSet)
	if err != nil {
		return fmt.Errorf("models.UpdateAnimalV1: failed to parse update map: %w", err)
	}
	args := append(fieldValues, opts.Id)
	return executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			UPDATE animales
				SET %s
				WHERE id = ?
		`, strings.Join(fieldSetters, ", ")),
		Args:     args,
		FnSource: "models.UpdateAnimalV1",
	})
}

type UpdateAnimalStatusV1Opts struct {
	Db *sql.DB

	Id     int64
	Estado AnimalStatus
}

// UpdateAnimalStatusV1 changes only the estado column. Any transition
// between valid statuses is allowed, including re-listing an adopted
// animal.
func UpdateAnimalStatusV1(opts UpdateAnimalStatusV1Opts) error {
	if !opts.Estado.IsValid() {
		return fmt.Errorf("models.UpdateAnimalStatusV1: estado[%s] is not recognised: %w", opts.Estado, ErrorValidationFailed)
	}
	return executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			UPDATE animales
				SET estado = ?
				WHERE id = ?
		`,
		Args:     []any{string(opts.Estado), opts.Id},
		FnSource: "models.UpdateAnimalStatusV1",
	})
}
