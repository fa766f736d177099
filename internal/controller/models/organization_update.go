package models

import (
	"database/sql"
	"fmt"
	"strings"
)

type UpdateOrganizationV1Opts struct {
	Db *sql.DB

	Id int64

	// FieldsToSet maps column names to their new values; keys must be
	// columns of the organizaciones table
	FieldsToSet map[string]any
}

// UpdateOrganizationV1 applies a partial update to an organization.
func UpdateOrganizationV1(opts UpdateOrganizationV1Opts) error {
	if len(opts.FieldsToSet) == 0 {
		return fmt.Errorf("models.UpdateOrganizationV1: nothing to update: %w", ErrorInvalidInput)
	}
	_, fieldSetters, fieldValues, err := parseUpdateMap(opts.FieldsToSet)
	if err != nil {
		return fmt.Errorf("models.UpdateOrganizationV1: failed to parse update map: %w", err)
	}
	args := append(fieldValues, opts.Id)
	return executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			UPDATE organizaciones
				SET %s
				WHERE id = ?
		`, strings.Join(fieldSetters, ", ")),
		Args:     args,
		FnSource: "models.UpdateOrganizationV1",
	})
}

// ToggleOrganizationV1 flips the activa flag and returns the new value.
func ToggleOrganizationV1(db *sql.DB, id int64) (*Organization, error) {
	org, err := GetOrganizationV1(GetOrganizationV1Opts{Db: db, Id: &id})
	if err != nil {
		return nil, err
	}
	if err := executeMysqlUpdate(mysqlQueryInput{
		Db: db,
		Stmt: `
			UPDATE organizaciones
				SET activa = ?
				WHERE id = ?
		`,
		Args:         []any{!org.Activa, id},
		FnSource:     "models.ToggleOrganizationV1",
		RowsAffected: oneRowAffected,
	}); err != nil {
		return nil, err
	}
	org.Activa = !org.Activa
	return org, nil
}
