package models

import (
	"database/sql"
	"fmt"
)

type ListOrganizationsV1Opts struct {
	Db *sql.DB

	// ActiveOnly excludes deactivated organizations from the listing
	ActiveOnly bool
}

// ListOrganizationsV1 returns organizations ordered by registration
// date, newest first. Super-administrator listings include inactive
// rows plus per-organization counters.
func ListOrganizationsV1(opts ListOrganizationsV1Opts) ([]Organization, error) {
	stmt := fmt.Sprintf(`
		SELECT %s
			FROM organizaciones
			ORDER BY fecha_creacion DESC
	`, organizationColumns)
	if opts.ActiveOnly {
		stmt = fmt.Sprintf(`
			SELECT %s
				FROM organizaciones
				WHERE activa = TRUE
				ORDER BY fecha_creacion DESC
		`, organizationColumns)
	}
	organizations := []Organization{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db:       opts.Db,
		Stmt:     stmt,
		Args:     []any{},
		FnSource: "models.ListOrganizationsV1",
		ProcessRows: func(rows *sql.Rows) error {
			org, err := scanOrganization(rows.Scan)
			if err != nil {
				return err
			}
			organizations = append(organizations, *org)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return organizations, nil
}

type OrganizationCounters struct {
	Organization
	AnimalCount        int64 `json:"cantidad_animales"`
	AdministratorCount int64 `json:"cantidad_administradores"`
}

// ListOrganizationCountersV1 is the super-administrator view: every
// organization with its animal and administrator counts.
func ListOrganizationCountersV1(db *sql.DB) ([]OrganizationCounters, error) {
	listing := []OrganizationCounters{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: db,
		Stmt: fmt.Sprintf(`
			SELECT %s,
				(SELECT COUNT(*) FROM animales a WHERE a.organizacion_id = o.id) AS cantidad_animales,
				(SELECT COUNT(*) FROM administradores m WHERE m.organizacion_id = o.id) AS cantidad_administradores
				FROM organizaciones o
				ORDER BY o.fecha_creacion DESC
		`, prefixColumns(organizationColumns, "o")),
		Args:     []any{},
		FnSource: "models.ListOrganizationCountersV1",
		ProcessRows: func(rows *sql.Rows) error {
			var entry OrganizationCounters
			if err := rows.Scan(
				&entry.Id,
				&entry.Nombre,
				&entry.Slug,
				&entry.Email,
				&entry.Telefono,
				&entry.Whatsapp,
				&entry.Direccion,
				&entry.LogoUrl,
				&entry.Descripcion,
				&entry.Instagram,
				&entry.Facebook,
				&entry.DonacionAlias,
				&entry.DonacionCbu,
				&entry.DonacionInfo,
				&entry.Activa,
				&entry.FechaCreacion,
				&entry.AnimalCount,
				&entry.AdministratorCount,
			); err != nil {
				return err
			}
			listing = append(listing, entry)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return listing, nil
}
