package models

import (
	"database/sql"
	"fmt"
)

type CreateOrganizationV1Opts struct {
	Db *sql.DB

	// Nombre is the organization's display name
	Nombre string

	// Slug uniquely identifies the organization in public URLs
	Slug string

	Email       *string
	Telefono    *string
	Direccion   *string
	Descripcion *string

	// AdminUsername, AdminEmail and AdminPasswordHash describe the
	// first administrator account, created in the same transaction
	AdminUsername     string
	AdminEmail        string
	AdminPasswordHash string
}

type CreateOrganizationV1Output struct {
	Organization  Organization
	Administrator Administrator
}

// CreateOrganizationV1 creates an organization together with its first
// administrator. Both inserts run in one transaction so a duplicate
// admin email never leaves an orphaned organization behind.
func CreateOrganizationV1(opts CreateOrganizationV1Opts) (*CreateOrganizationV1Output, error) {
	if opts.Db == nil {
		return nil, fmt.Errorf("models.CreateOrganizationV1: missing db input: %w", ErrorDatabaseUndefined)
	}
	tx, err := opts.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("models.CreateOrganizationV1: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	orgResult, err := tx.Exec(`
		INSERT INTO organizaciones(
			nombre,
			slug,
			email,
			telefono,
			direccion,
			descripcion
		) VALUES (?, ?, ?, ?, ?, ?)
	`,
		opts.Nombre,
		opts.Slug,
		opts.Email,
		opts.Telefono,
		opts.Direccion,
		opts.Descripcion,
	)
	if err != nil {
		if isMysqlDuplicateError(err) {
			return nil, fmt.Errorf("models.CreateOrganizationV1: duplicate slug: %w: %w", ErrorDuplicateEntry, err)
		}
		return nil, fmt.Errorf("models.CreateOrganizationV1: failed to insert organization: %w (%w)", ErrorInsertFailed, err)
	}
	orgId, err := orgResult.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("models.CreateOrganizationV1: failed to get organization id: %w", err)
	}

	adminResult, err := tx.Exec(`
		INSERT INTO administradores(
			organizacion_id,
			username,
			email,
			password_hash
		) VALUES (?, ?, ?, ?)
	`,
		orgId,
		opts.AdminUsername,
		opts.AdminEmail,
		opts.AdminPasswordHash,
	)
	if err != nil {
		if isMysqlDuplicateError(err) {
			return nil, fmt.Errorf("models.CreateOrganizationV1: duplicate administrator: %w: %w", ErrorDuplicateEntry, err)
		}
		return nil, fmt.Errorf("models.CreateOrganizationV1: failed to insert administrator: %w (%w)", ErrorInsertFailed, err)
	}
	adminId, err := adminResult.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("models.CreateOrganizationV1: failed to get administrator id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("models.CreateOrganizationV1: failed to commit transaction: %w", err)
	}

	org, err := GetOrganizationV1(GetOrganizationV1Opts{Db: opts.Db, Id: &orgId})
	if err != nil {
		return nil, fmt.Errorf("models.CreateOrganizationV1: failed to load created organization: %w", err)
	}
	return &CreateOrganizationV1Output{
		Organization: *org,
		Administrator: Administrator{
			Id:             adminId,
			OrganizacionId: orgId,
			Username:       opts.AdminUsername,
			Email:          opts.AdminEmail,
		},
	}, nil
}
