package models

import "database/sql"

type CreateAdministratorV1Opts struct {
	Db *sql.DB

	OrganizacionId int64
	Username       string
	Email          string
	PasswordHash   string
	EsSuperAdmin   bool
}

func CreateAdministratorV1(opts CreateAdministratorV1Opts) (int64, error) {
	var adminId int64
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			INSERT INTO administradores(
				organizacion_id,
				username,
				email,
				password_hash,
				es_super_admin
			) VALUES (?, ?, ?, ?, ?)
		`,
		Args: []any{
			opts.OrganizacionId,
			opts.Username,
			opts.Email,
			opts.PasswordHash,
			opts.EsSuperAdmin,
		},
		FnSource:     "models.CreateAdministratorV1",
		RowsAffected: oneRowAffected,
		LastInsertId: func(id int64) { adminId = id },
	}); err != nil {
		return 0, err
	}
	return adminId, nil
}
