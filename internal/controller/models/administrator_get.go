package models

import (
	"database/sql"
	"fmt"
)

type GetAdministratorV1Opts struct {
	Db *sql.DB

	Id    *int64
	Email *string
}

// GetAdministratorV1 returns an administrator given either its id or
// email, with the owning organization joined in.
func GetAdministratorV1(opts GetAdministratorV1Opts) (*Administrator, error) {
	if opts.Id == nil && opts.Email == nil {
		return nil, fmt.Errorf("models.GetAdministratorV1: either the id or the email has to be specified: %w", ErrorInvalidInput)
	}
	selectorField := "a.id"
	var selectorValue any
	if opts.Id != nil {
		selectorValue = *opts.Id
	} else {
		selectorField = "a.email"
		selectorValue = *opts.Email
	}
	var admin *Administrator
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT
				a.id,
				a.organizacion_id,
				a.username,
				a.email,
				a.password_hash,
				a.es_super_admin,
				a.ultimo_acceso,
				a.fecha_creacion,
				%s
				FROM administradores a
				JOIN organizaciones o ON o.id = a.organizacion_id
				WHERE %s = ?
		`, prefixColumns(organizationColumns, "o"), selectorField),
		Args:     []any{selectorValue},
		FnSource: "models.GetAdministratorV1",
		ProcessRow: func(row *sql.Row) error {
			var scanned Administrator
			var org Organization
			if err := row.Scan(
				&scanned.Id,
				&scanned.OrganizacionId,
				&scanned.Username,
				&scanned.Email,
				&scanned.PasswordHash,
				&scanned.EsSuperAdmin,
				&scanned.UltimoAcceso,
				&scanned.FechaCreacion,
				&org.Id,
				&org.Nombre,
				&org.Slug,
				&org.Email,
				&org.Telefono,
				&org.Whatsapp,
				&org.Direccion,
				&org.LogoUrl,
				&org.Descripcion,
				&org.Instagram,
				&org.Facebook,
				&org.DonacionAlias,
				&org.DonacionCbu,
				&org.DonacionInfo,
				&org.Activa,
				&org.FechaCreacion,
			); err != nil {
				return err
			}
			scanned.Organizacion = &org
			admin = &scanned
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return admin, nil
}
