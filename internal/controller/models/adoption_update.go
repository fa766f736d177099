package models

import (
	"database/sql"
	"fmt"
)

type UpdateAdoptionRequestStatusV1Opts struct {
	Db *sql.DB

	Id              int64
	EstadoSolicitud RequestStatus
}

// UpdateAdoptionRequestStatusV1 moves a request to any of the valid
// review states. There is no transition graph: reviewers may move
// requests freely, including back to an earlier state.
func UpdateAdoptionRequestStatusV1(opts UpdateAdoptionRequestStatusV1Opts) error {
	if !opts.EstadoSolicitud.IsValid() {
		return fmt.Errorf("models.UpdateAdoptionRequestStatusV1: estado_solicitud[%s] is not recognised: %w", opts.EstadoSolicitud, ErrorValidationFailed)
	}
	return executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			UPDATE solicitudes_adopcion
				SET estado_solicitud = ?
				WHERE id = ?
		`,
		Args:     []any{string(opts.EstadoSolicitud), opts.Id},
		FnSource: "models.UpdateAdoptionRequestStatusV1",
	})
}

type DeleteAdoptionRequestV1Opts struct {
	Db *sql.DB

	Id int64
}

// DeleteAdoptionRequestV1 removes a request unconditionally; the
// caller is responsible for the tenant check.
func DeleteAdoptionRequestV1(opts DeleteAdoptionRequestV1Opts) error {
	return executeMysqlDelete(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			DELETE FROM solicitudes_adopcion
				WHERE id = ?
		`,
		Args:         []any{opts.Id},
		FnSource:     "models.DeleteAdoptionRequestV1",
		RowsAffected: oneRowAffected,
	})
}
