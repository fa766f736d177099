package models

import (
	"database/sql"
	"fmt"
	"strings"
)

type UpdateSuccessStoryV1Opts struct {
	Db *sql.DB

	Id int64

	// FieldsToSet maps column names to their new values; keys must be
	// columns of the casos_exito table
	FieldsToSet map[string]any
}

// UpdateSuccessStoryV1 applies a partial update to a success story.
func UpdateSuccessStoryV1(opts UpdateSuccessStoryV1Opts) error {
	if len(opts.FieldsToSet) == 0 {
		return fmt.Errorf("models.UpdateSuccessStoryV1: nothing to update: %w", ErrorInvalidInput)
	}
	_, fieldSetters, fieldValues, err := parseUpdateMap(opts.FieldsToSet)
	if err != nil {
		return fmt.Errorf("models.UpdateSuccessStoryV1: failed to parse update map: %w", err)
	}
	args := append(fieldValues, opts.Id)
	return executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			UPDATE casos_exito
				SET %s
				WHERE id = ?
		`, strings.Join(fieldSetters, ", ")),
		Args:     args,
		FnSource: "models.UpdateSuccessStoryV1",
	})
}
