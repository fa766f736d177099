package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var organizationTestColumns = []string{
	"id", "nombre", "slug", "email", "telefono", "whatsapp", "direccion",
	"logo_url", "descripcion", "instagram", "facebook", "donacion_alias",
	"donacion_cbu", "donacion_info", "activa", "fecha_creacion",
}

func organizationRow(id int64, nombre, slug string) *sqlmock.Rows {
	return sqlmock.NewRows(organizationTestColumns).
		AddRow(id, nombre, slug, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, true, time.Now())
}

func administratorRow(id, orgId int64, username, email string) *sqlmock.Rows {
	columns := []string{
		"id", "organizacion_id", "username", "email", "password_hash",
		"es_super_admin", "ultimo_acceso", "fecha_creacion",
	}
	values := []driver.Value{id, orgId, username, email, "hash", false, nil, time.Now()}
	for _, column := range organizationTestColumns {
		columns = append(columns, "o_"+column)
	}
	values = append(values, orgId, "Refugio", "refugio", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, true, time.Now())
	rows := sqlmock.NewRows(columns)
	rows.AddRow(values...)
	return rows
}

func TestUpsertOrganizationV1UpdatesExistingSlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	defer db.Close()

	mock.ExpectPrepare(`(?s)SELECT.*FROM organizaciones.*WHERE slug = \?`).
		ExpectQuery().
		WithArgs("patitas").
		WillReturnRows(organizationRow(7, "Patitas", "patitas"))
	mock.ExpectPrepare(`(?s)UPDATE organizaciones.*WHERE id = \?`).
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectPrepare(`(?s)SELECT.*FROM organizaciones.*WHERE id = \?`).
		ExpectQuery().
		WithArgs(int64(7)).
		WillReturnRows(organizationRow(7, "Patitas Felices", "patitas"))

	org, err := UpsertOrganizationV1(UpsertOrganizationV1Opts{
		Db:     db,
		Nombre: "Patitas Felices",
		Slug:   "patitas",
	})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if org.Id != 7 {
		t.Errorf("expected the existing organization row but got id[%v]", org.Id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected an update of the existing row, not an insert: %s", err)
	}
}

func TestUpsertOrganizationV1InsertsNewSlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	defer db.Close()

	mock.ExpectPrepare(`(?s)SELECT.*FROM organizaciones.*WHERE slug = \?`).
		ExpectQuery().
		WithArgs("nueva").
		WillReturnRows(sqlmock.NewRows(organizationTestColumns))
	mock.ExpectPrepare(`(?s)INSERT INTO organizaciones`).
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectPrepare(`(?s)SELECT.*FROM organizaciones.*WHERE id = \?`).
		ExpectQuery().
		WithArgs(int64(42)).
		WillReturnRows(organizationRow(42, "Nueva", "nueva"))

	org, err := UpsertOrganizationV1(UpsertOrganizationV1Opts{
		Db:     db,
		Nombre: "Nueva",
		Slug:   "nueva",
	})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if org.Id != 42 {
		t.Errorf("expected the inserted row's id but got id[%v]", org.Id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected an insert for the new slug: %s", err)
	}
}

func TestUpsertOrganizationV1PropagatesStoreFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	defer db.Close()

	mock.ExpectPrepare(`(?s)SELECT.*FROM organizaciones.*WHERE slug = \?`).
		ExpectQuery().
		WithArgs("patitas").
		WillReturnError(fmt.Errorf("store is offline"))

	if _, err := UpsertOrganizationV1(UpsertOrganizationV1Opts{
		Db:     db,
		Nombre: "Patitas",
		Slug:   "patitas",
	}); err == nil {
		t.Fatal("expected a store failure to propagate")
	} else if errors.Is(err, ErrorNotFound) {
		t.Errorf("expected a store failure, not a not-found signal: %s", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no writes after a failed lookup: %s", err)
	}
}

func TestUpsertAdministratorV1UpdatesExistingEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	defer db.Close()

	mock.ExpectPrepare(`(?s)SELECT.*FROM administradores a.*WHERE a\.email = \?`).
		ExpectQuery().
		WithArgs("ana@refugio.ar").
		WillReturnRows(administratorRow(3, 7, "ana", "ana@refugio.ar"))
	mock.ExpectPrepare(`(?s)UPDATE administradores.*WHERE id = \?`).
		ExpectExec().
		WithArgs("ana", "new-hash", true, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectPrepare(`(?s)SELECT.*FROM administradores a.*WHERE a\.id = \?`).
		ExpectQuery().
		WithArgs(int64(3)).
		WillReturnRows(administratorRow(3, 7, "ana", "ana@refugio.ar"))

	admin, err := UpsertAdministratorV1(UpsertAdministratorV1Opts{
		Db:             db,
		OrganizacionId: 7,
		Username:       "ana",
		Email:          "ana@refugio.ar",
		PasswordHash:   "new-hash",
		EsSuperAdmin:   true,
	})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if admin.Id != 3 {
		t.Errorf("expected the existing administrator row but got id[%v]", admin.Id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected an update of the existing row, not an insert: %s", err)
	}
}

func TestUpsertAdministratorV1InsertsNewEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	defer db.Close()

	emptyColumns := []string{"id"}
	mock.ExpectPrepare(`(?s)SELECT.*FROM administradores a.*WHERE a\.email = \?`).
		ExpectQuery().
		WithArgs("nueva@refugio.ar").
		WillReturnRows(sqlmock.NewRows(emptyColumns))
	mock.ExpectPrepare(`(?s)INSERT INTO administradores`).
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectPrepare(`(?s)SELECT.*FROM administradores a.*WHERE a\.id = \?`).
		ExpectQuery().
		WithArgs(int64(9)).
		WillReturnRows(administratorRow(9, 7, "nueva", "nueva@refugio.ar"))

	admin, err := UpsertAdministratorV1(UpsertAdministratorV1Opts{
		Db:             db,
		OrganizacionId: 7,
		Username:       "nueva",
		Email:          "nueva@refugio.ar",
		PasswordHash:   "hash",
		EsSuperAdmin:   false,
	})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if admin.Id != 9 {
		t.Errorf("expected the inserted row's id but got id[%v]", admin.Id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected an insert for the new email: %s", err)
	}
}
