package models

import (
	"database/sql"
	"fmt"
)

type GetOrganizationV1Opts struct {
	Db *sql.DB

	Id   *int64
	Slug *string
}

const organizationColumns = `
	id,
	nombre,
	slug,
	email,
	telefono,
	whatsapp,
	direccion,
	logo_url,
	descripcion,
	instagram,
	facebook,
	donacion_alias,
	donacion_cbu,
	donacion_info,
	activa,
	fecha_creacion
`

func scanOrganization(scan func(dest ...any) error) (*Organization, error) {
	var org Organization
	if err := scan(
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
		return nil, err
	}
	return &org, nil
}

// GetOrganizationV1 returns an organization given either its id or slug.
func GetOrganizationV1(opts GetOrganizationV1Opts) (*Organization, error) {
	if opts.Id == nil && opts.Slug == nil {
		return nil, fmt.Errorf("models.GetOrganizationV1: either the id or the slug has to be specified: %w", ErrorInvalidInput)
	}
	selectorField := "id"
	var selectorValue any
	if opts.Id != nil {
		selectorValue = *opts.Id
	} else {
		selectorField = "slug"
		selectorValue = *opts.Slug
	}
	var org *Organization
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT %s
				FROM organizaciones
				WHERE %s = ?
		`, organizationColumns, selectorField),
		Args:     []any{selectorValue},
		FnSource: "models.GetOrganizationV1",
		ProcessRow: func(row *sql.Row) error {
			scanned, err := scanOrganization(row.Scan)
			if err != nil {
				return err
			}
			org = scanned
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return org, nil
}
