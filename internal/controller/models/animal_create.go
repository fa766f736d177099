package models

import (
	"database/sql"
	"errors"
	"fmt"
)

type CreateAnimalV1Opts struct {
	Db *sql.DB

	OrganizacionId  int64
	AdministradorId int64

	Nombre                string
	Especie               string
	Sexo                  string
	EdadAproximada        string
	Tamanio               string
	RazaMezcla            *string
	DescripcionHistoria   string
	EstadoCastracion      bool
	EstadoVacunacion      *string
	EstadoDesparasitacion bool
	SocializaPerros       bool
	SocializaGatos        bool
	SocializaNinos        bool
	NecesidadesEspeciales *string
	TipoHogarIdeal        *string
	PublicadoPor          string
	ContactoRescatista    string
	FotoPrincipal         string
	Foto2                 *string
	Foto3                 *string
	Foto4                 *string
	Foto5                 *string
}

func (o CreateAnimalV1Opts) Validate() error {
	errs := []error{}
	if o.Nombre == "" {
		errs = append(errs, fmt.Errorf("missing nombre"))
	}
	if !isInList(o.Especie, AnimalSpecies) {
		errs = append(errs, fmt.Errorf("especie must be one of %v", AnimalSpecies))
	}
	if !isInList(o.Sexo, AnimalSexes) {
		errs = append(errs, fmt.Errorf("sexo must be one of %v", AnimalSexes))
	}
	if o.EdadAproximada == "" {
		errs = append(errs, fmt.Errorf("missing edad_aproximada"))
	}
	if !isInList(o.Tamanio, AnimalSizes) {
		errs = append(errs, fmt.Errorf("tamanio must be one of %v", AnimalSizes))
	}
	if o.DescripcionHistoria == "" {
		errs = append(errs, fmt.Errorf("missing descripcion_historia"))
	}
	if o.PublicadoPor == "" {
		errs = append(errs, fmt.Errorf("missing publicado_por"))
	}
	if o.ContactoRescatista == "" {
		errs = append(errs, fmt.Errorf("missing contacto_rescatista"))
	}
	if o.FotoPrincipal == "" {
		errs = append(errs, fmt.Errorf("missing foto_principal"))
	}
	if len(errs) > 0 {
		errs = append([]error{ErrorValidationFailed}, errs...)
		return errors.Join(errs...)
	}
	return nil
}

// CreateAnimalV1 publishes a new animal. The estado column always
// starts at Disponible no matter what the caller sends.
func CreateAnimalV1(opts CreateAnimalV1Opts) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, fmt.Errorf("models.CreateAnimalV1: %w", err)
	}
	var animalId int64
	if err := executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			INSERT INTO animales(
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
				foto_5
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
		Args: []any{
			opts.OrganizacionId,
			opts.AdministradorId,
			opts.Nombre,
			opts.Especie,
			opts.Sexo,
			opts.EdadAproximada,
			opts.Tamanio,
			opts.RazaMezcla,
			opts.DescripcionHistoria,
			opts.EstadoCastracion,
			opts.EstadoVacunacion,
			opts.EstadoDesparasitacion,
			opts.SocializaPerros,
			opts.SocializaGatos,
			opts.SocializaNinos,
			opts.NecesidadesEspeciales,
			opts.TipoHogarIdeal,
			string(AnimalStatusDisponible),
			opts.PublicadoPor,
			opts.ContactoRescatista,
			opts.FotoPrincipal,
			opts.Foto2,
			opts.Foto3,
			opts.Foto4,
			opts.Foto5,
		},
		FnSource:     "models.CreateAnimalV1",
		RowsAffected: oneRowAffected,
		LastInsertId: func(id int64) { animalId = id },
	}); err != nil {
		return 0, err
	}
	return animalId, nil
}

func isInList(value string, list []string) bool {
	for _, entry := range list {
		if value == entry {
			return true
		}
	}
	return false
}
