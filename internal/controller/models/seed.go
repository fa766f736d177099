package models

import (
	"database/sql"
	"errors"
	"fmt"
)

type UpsertOrganizationV1Opts struct {
	Db *sql.DB

	Nombre      string
	Slug        string
	Email       *string
	Telefono    *string
	Direccion   *string
	Descripcion *string
}

// UpsertOrganizationV1 creates the organization when its slug is new,
// otherwise refreshes the seeded fields. Used by seeding only.
func UpsertOrganizationV1(opts UpsertOrganizationV1Opts) (*Organization, error) {
	existing, err := GetOrganizationV1(GetOrganizationV1Opts{Db: opts.Db, Slug: &opts.Slug})
	if err != nil && !errors.Is(err, ErrorNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := UpdateOrganizationV1(UpdateOrganizationV1Opts{
			Db: opts.Db,
			Id: existing.Id,
			FieldsToSet: map[string]any{
				"nombre":      opts.Nombre,
				"email":       opts.Email,
				"telefono":    opts.Telefono,
				"direccion":   opts.Direccion,
				"descripcion": opts.Descripcion,
			},
		}); err != nil {
			return nil, err
		}
		return GetOrganizationV1(GetOrganizationV1Opts{Db: opts.Db, Id: &existing.Id})
	}

	var orgId int64
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			INSERT INTO organizaciones(
				nombre,
				slug,
				email,
				telefono,
				direccion,
				descripcion
			) VALUES (?, ?, ?, ?, ?, ?)
		`,
		Args: []any{
			opts.Nombre,
			opts.Slug,
			opts.Email,
			opts.Telefono,
			opts.Direccion,
			opts.Descripcion,
		},
		FnSource:     "models.UpsertOrganizationV1",
		RowsAffected: oneRowAffected,
		LastInsertId: func(id int64) { orgId = id },
	}); err != nil {
		return nil, err
	}
	return GetOrganizationV1(GetOrganizationV1Opts{Db: opts.Db, Id: &orgId})
}

type UpsertAdministratorV1Opts struct {
	Db *sql.DB

	OrganizacionId int64
	Username       string
	Email          string
	PasswordHash   string
	EsSuperAdmin   bool
}

// UpsertAdministratorV1 creates the administrator when the email is
// new, otherwise resets its credentials and role. Used by seeding only.
func UpsertAdministratorV1(opts UpsertAdministratorV1Opts) (*Administrator, error) {
	existing, err := GetAdministratorV1(GetAdministratorV1Opts{Db: opts.Db, Email: &opts.Email})
	if err != nil && !errors.Is(err, ErrorNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := executeMysqlUpdate(mysqlQueryInput{
			Db: opts.Db,
			Stmt: `
				UPDATE administradores
					SET username = ?,
						password_hash = ?,
						es_super_admin = ?
					WHERE id = ?
			`,
			Args:     []any{opts.Username, opts.PasswordHash, opts.EsSuperAdmin, existing.Id},
			FnSource: "models.UpsertAdministratorV1",
		}); err != nil {
			return nil, err
		}
		return GetAdministratorV1(GetAdministratorV1Opts{Db: opts.Db, Id: &existing.Id})
	}

	adminId, err := CreateAdministratorV1(CreateAdministratorV1Opts{
		Db:             opts.Db,
		OrganizacionId: opts.OrganizacionId,
		Username:       opts.Username,
		Email:          opts.Email,
		PasswordHash:   opts.PasswordHash,
		EsSuperAdmin:   opts.EsSuperAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("models.UpsertAdministratorV1: %w", err)
	}
	return GetAdministratorV1(GetAdministratorV1Opts{Db: opts.Db, Id: &adminId})
}
