package models

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type CreateContactRequestV1Opts struct {
	Db *sql.DB

	NombreRefugio    string
	NombreContacto   string
	Email            string
	Telefono         string
	Ciudad           string
	Descripcion      string
	Instagram        *string
	Facebook         *string
	CantidadAnimales *string
}

func (o CreateContactRequestV1Opts) Validate() error {
	errs := []error{}
	if o.NombreRefugio == "" {
		errs = append(errs, fmt.Errorf("missing nombre_refugio"))
	}
	if o.NombreContacto == "" {
		errs = append(errs, fmt.Errorf("missing nombre_contacto"))
	}
	if o.Email == "" {
		errs = append(errs, fmt.Errorf("missing email"))
	}
	if o.Telefono == "" {
		errs = append(errs, fmt.Errorf("missing telefono"))
	}
	if o.Ciudad == "" {
		errs = append(errs, fmt.Errorf("missing ciudad"))
	}
	if o.Descripcion == "" {
		errs = append(errs, fmt.Errorf("missing descripcion"))
	}
	if len(errs) > 0 {
		errs = append([]error{ErrorValidationFailed}, errs...)
		return errors.Join(errs...)
	}
	return nil
}

// CreateContactRequestV1 files a shelter onboarding request; it always
// starts as Pendiente.
func CreateContactRequestV1(opts CreateContactRequestV1Opts) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, fmt.Errorf("models.CreateContactRequestV1: %w", err)
	}
	var requestId int64
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			INSERT INTO solicitudes_contacto(
				nombre_refugio,
				nombre_contacto,
				email,
				telefono,
				ciudad,
				descripcion,
				instagram,
				facebook,
				cantidad_animales,
				estado
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
		Args: []any{
			opts.NombreRefugio,
			opts.NombreContacto,
			opts.Email,
			opts.Telefono,
			opts.Ciudad,
			opts.Descripcion,
			opts.Instagram,
			opts.Facebook,
			opts.CantidadAnimales,
			string(ContactStatusPendiente),
		},
		FnSource:     "models.CreateContactRequestV1",
		RowsAffected: oneRowAffected,
		LastInsertId: func(id int64) { requestId = id },
	}); err != nil {
		return 0, err
	}
	return requestId, nil
}

const contactRequestColumns = `
	id,
	nombre_refugio,
	nombre_contacto,
	email,
	telefono,
	ciudad,
	descripcion,
	instagram,
	facebook,
	cantidad_animales,
	estado,
	notas_admin,
	fecha_solicitud,
	fecha_respuesta
`

func scanContactRequest(scan func(dest ...any) error) (*ContactRequest, error) {
	var request ContactRequest
	if err := scan(
		&request.Id,
		&request.NombreRefugio,
		&request.NombreContacto,
		&request.Email,
		&request.Telefono,
		&request.Ciudad,
		&request.Descripcion,
		&request.Instagram,
		&request.Facebook,
		&request.CantidadAnimales,
		&request.Estado,
		&request.NotasAdmin,
		&request.FechaSolicitud,
		&request.FechaRespuesta,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

type ListContactRequestsV1Opts struct {
	Db *sql.DB

	Estado *ContactStatus
}

func ListContactRequestsV1(opts ListContactRequestsV1Opts) ([]ContactRequest, error) {
	conditions := []string{}
	args := []any{}
	if opts.Estado != nil {
		conditions = append(conditions, "estado = ?")
		args = append(args, string(*opts.Estado))
	}
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}
	requests := []ContactRequest{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT %s
				FROM solicitudes_contacto
				%s
				ORDER BY fecha_solicitud DESC
		`, contactRequestColumns, whereClause),
		Args:     args,
		FnSource: "models.ListContactRequestsV1",
		ProcessRows: func(rows *sql.Rows) error {
			request, err := scanContactRequest(rows.Scan)
			if err != nil {
				return err
			}
			requests = append(requests, *request)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return requests, nil
}

type GetContactRequestV1Opts struct {
	Db *sql.DB

	Id int64
}

func GetContactRequestV1(opts GetContactRequestV1Opts) (*ContactRequest, error) {
	var request *ContactRequest
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT %s
				FROM solicitudes_contacto
				WHERE id = ?
		`, contactRequestColumns),
		Args:     []any{opts.Id},
		FnSource: "models.GetContactRequestV1",
		ProcessRow: func(row *sql.Row) error {
			scanned, err := scanContactRequest(row.Scan)
			if err != nil {
				return err
			}
			request = scanned
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return request, nil
}

type UpdateContactRequestV1Opts struct {
	Db *sql.DB

	Id         int64
	Estado     *ContactStatus
	NotasAdmin *string
}

// UpdateContactRequestV1 updates the review state and/or reviewer
// notes; a state change also stamps fecha_respuesta.
func UpdateContactRequestV1(opts UpdateContactRequestV1Opts) error {
	fieldsToSet := map[string]any{}
	if opts.Estado != nil {
		if !opts.Estado.IsValid() {
			return fmt.Errorf("models.UpdateContactRequestV1: estado[%s] is not recognised: %w", *opts.Estado, ErrorValidationFailed)
		}
		fieldsToSet["estado"] = string(*opts.Estado)
		fieldsToSet["fecha_respuesta"] = DatabaseFunction("NOW()")
	}
	if opts.NotasAdmin != nil {
		fieldsToSet["notas_admin"] = *opts.NotasAdmin
	}
	if len(fieldsToSet) == 0 {
		return fmt.Errorf("models.UpdateContactRequestV1: nothing to update: %w", ErrorInvalidInput)
	}
	_, fieldSetters, fieldValues, err := parseUpdateMap(fieldsToSet)
	if err != nil {
		return fmt.Errorf("models.UpdateContactRequestV1: failed to parse update map: %w", err)
	}
	args := append(fieldValues, opts.Id)
	return executeMysqlUpdate(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			UPDATE solicitudes_contacto
				SET %s
				WHERE id = ?
		`, strings.Join(fieldSetters, ", ")),
		Args:     args,
		FnSource: "models.UpdateContactRequestV1",
	})
}
