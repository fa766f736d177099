package models

import "database/sql"

type SetSuperAdminV1Opts struct {
	Db *sql.DB

	Email        string
	EsSuperAdmin bool
}

// SetSuperAdminV1 grants or revokes the platform administrator flag on
// the account with the given email.
func SetSuperAdminV1(opts SetSuperAdminV1Opts) error {
	return executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			UPDATE administradores
				SET es_super_admin = ?
				WHERE email = ?
		`,
		Args:         []any{opts.EsSuperAdmin, opts.Email},
		FnSource:     "models.SetSuperAdminV1",
		RowsAffected: atMostOneRowAffected,
	})
}

func atMostOneRowAffected(observed int64) bool {
	return observed <= 1
}
