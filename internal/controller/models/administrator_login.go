package models

import (
	"database/sql"
	"errors"
	"fmt"

	"adoptar/internal/auth"
)

type AuthenticateAdministratorV1Opts struct {
	Db *sql.DB

	Email    string
	Password string
}

// AuthenticateAdministratorV1 checks the credentials and the owning
// organization's active flag. An unknown email and a wrong password
// fail the same way so callers cannot probe for accounts.
func AuthenticateAdministratorV1(opts AuthenticateAdministratorV1Opts) (*Administrator, error) {
	admin, err := GetAdministratorV1(GetAdministratorV1Opts{Db: opts.Db, Email: &opts.Email})
	if err != nil {
		if errors.Is(err, ErrorNotFound) {
			return nil, fmt.Errorf("models.AuthenticateAdministratorV1: unknown email: %w", ErrorCredentialsAuthenticationFailed)
		}
		return nil, err
	}
	if !auth.ValidatePassword(opts.Password, admin.PasswordHash) {
		return nil, fmt.Errorf("models.AuthenticateAdministratorV1: password mismatch: %w", ErrorCredentialsAuthenticationFailed)
	}
	if admin.Organizacion == nil || !admin.Organizacion.Activa {
		return nil, fmt.Errorf("models.AuthenticateAdministratorV1: organization[%v] is inactive: %w", admin.OrganizacionId, ErrorOrganizationInactive)
	}

	if err := executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			UPDATE administradores
				SET ultimo_acceso = NOW()
				WHERE id = ?
		`,
		Args:     []any{admin.Id},
		FnSource: "models.AuthenticateAdministratorV1",
	}); err != nil {
		return nil, err
	}
	return admin, nil
}
