package models

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var animalTestColumns = []string{
	"id", "organizacion_id", "administrador_id", "nombre", "especie", "sexo",
	"edad_aproximada", "tamanio", "raza_mezcla", "descripcion_historia",
	"estado_castracion", "estado_vacunacion", "estado_desparasitacion",
	"socializa_perros", "socializa_gatos", "socializa_ninos",
	"necesidades_especiales", "tipo_hogar_ideal", "estado", "publicado_por",
	"contacto_rescatista", "foto_principal", "foto_2", "foto_3", "foto_4",
	"foto_5", "fecha_publicacion", "fecha_actualizacion",
}

func animalRow(id, orgId int64, nombre string) *sqlmock.Rows {
	return sqlmock.NewRows(animalTestColumns).AddRow(
		id, orgId, int64(3), nombre, "Perro", "Hembra", "2 años", "Mediano",
		nil, "rescatada de la calle", true, nil, true, true, false, true,
		nil, nil, string(AnimalStatusDisponible), "refugio", "",
		"https://res.cloudinary.com/demo/luna.jpg", nil, nil, nil, nil,
		time.Now(), time.Now(),
	)
}

func TestGetAnimalV1AttachesOwningOrganization(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	defer db.Close()

	mock.ExpectPrepare(`(?s)SELECT.*FROM animales.*WHERE id = \?`).
		ExpectQuery().
		WithArgs(int64(5)).
		WillReturnRows(animalRow(5, 7, "Luna"))
	mock.ExpectPrepare(`(?s)SELECT.*FROM organizaciones.*WHERE id = \?`).
		ExpectQuery().
		WithArgs(int64(7)).
		WillReturnRows(organizationRow(7, "Patitas", "patitas"))

	animal, err := GetAnimalV1(GetAnimalV1Opts{Db: db, Id: 5})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if animal.Organizacion == nil {
		t.Fatal("expected the owning organization to be attached")
	}
	if animal.Organizacion.Id != 7 {
		t.Errorf("expected organization[7] but got organization[%v]", animal.Organizacion.Id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected both reads to run: %s", err)
	}
}

func TestGetAnimalV1PropagatesOrganizationLoadFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	defer db.Close()

	mock.ExpectPrepare(`(?s)SELECT.*FROM animales.*WHERE id = \?`).
		ExpectQuery().
		WithArgs(int64(5)).
		WillReturnRows(animalRow(5, 7, "Luna"))
	mock.ExpectPrepare(`(?s)SELECT.*FROM organizaciones.*WHERE id = \?`).
		ExpectQuery().
		WithArgs(int64(7)).
		WillReturnError(fmt.Errorf("store is offline"))

	if _, err := GetAnimalV1(GetAnimalV1Opts{Db: db, Id: 5}); err == nil {
		t.Fatal("expected a failed organization load to surface as an error")
	} else if errors.Is(err, ErrorNotFound) {
		t.Errorf("expected a store failure, not a not-found signal: %s", err)
	}
}

func TestGetAnimalV1ReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	defer db.Close()

	mock.ExpectPrepare(`(?s)SELECT.*FROM animales.*WHERE id = \?`).
		ExpectQuery().
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(animalTestColumns))

	if _, err := GetAnimalV1(GetAnimalV1Opts{Db: db, Id: 404}); !errors.Is(err, ErrorNotFound) {
		t.Errorf("expected a not-found signal but got: %s", err)
	}
}
