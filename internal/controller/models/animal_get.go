package models

import (
	"database/sql"
	"fmt"
)

const animalColumns = `
	id,
	organizacion_id,
	administrador_id,
	nombre,
	especie,
	sexo,
	edad_aproximada,
	tamanio,
	raza_mezcla,
	descripcion_historia,
	estado_castracion,
	estado_vacunacion,
	estado_desparasitacion,
	socializa_perros,
	socializa_gatos,
	socializa_ninos,
	necesidades_especiales,
	tipo_hogar_ideal,
	estado,
	publicado_por,
	contacto_rescatista,
	foto_principal,
	foto_2,
	foto_3,
	foto_4,
	foto_5,
	fecha_publicacion,
	fecha_actualizacion
`

func scanAnimal(scan func(dest ...any) error) (*Animal, error) {
	var animal Animal
	if err := scan(
		&animal.Id,
		&animal.OrganizacionId,
		&animal.AdministradorId,
		&animal.Nombre,
		&animal.Especie,
		&animal.Sexo,
		&animal.EdadAproximada,
		&animal.Tamanio,
		&animal.RazaMezcla,
		&animal.DescripcionHistoria,
		&animal.EstadoCastracion,
		&animal.EstadoVacunacion,
		&animal.EstadoDesparasitacion,
		&animal.SocializaPerros,
		&animal.SocializaGatos,
		&animal.SocializaNinos,
		&animal.NecesidadesEspeciales,
		&animal.TipoHogarIdeal,
		&animal.Estado,
		&animal.PublicadoPor,
		&animal.ContactoRescatista,
		&animal.FotoPrincipal,
		&animal.Foto2,
		&animal.Foto3,
		&animal.Foto4,
		&animal.Foto5,
		&animal.FechaPublicacion,
		&animal.FechaActualizacion,
	); err != nil {
		return nil, err
	}
	return &animal, nil
}

type GetAnimalV1Opts struct {
	Db *sql.DB

	Id int64
}

// GetAnimalV1 returns an animal by id regardless of status or owner;
// visibility is the caller's decision.
func GetAnimalV1(opts GetAnimalV1Opts) (*Animal, error) {
	var animal *Animal
	if err := executeMysqlSelect(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT %s
				FROM animales
				WHERE id = ?
		`, animalColumns),
		Args:     []any{opts.Id},
		FnSource: "models.GetAnimalV1",
		ProcessRow: func(row *sql.Row) error {
			scanned, err := scanAnimal(row.Scan)
			if err != nil {
				return err
			}
			animal = scanned
			return nil
		},
	}); err != nil {
		return nil, err
	}
	if animal != nil {
		// every animal row references an organization, so a failure
		// here is a store fault rather than an absent owner
		org, err := GetOrganizationV1(GetOrganizationV1Opts{Db: opts.Db, Id: &animal.OrganizacionId})
		if err != nil {
			return nil, fmt.Errorf("models.GetAnimalV1: failed to load organization[%v]: %w", animal.OrganizacionId, err)
		}
		animal.Organizacion = org
	}
	return animal, nil
}
