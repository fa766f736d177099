package models

import (
	"database/sql"
	"fmt"
	"strings"
)

type ListSuccessStoriesV1Opts struct {
	Db *sql.DB

	// OrganizacionId limits stories to one organization
	OrganizacionId *int64
}

// ListSuccessStoriesV1 returns success stories ordered by publication
// date, newest first, each with a summary of the adopted animal.
func ListSuccessStoriesV1(opts ListSuccessStoriesV1Opts) ([]SuccessStory, error) {
	conditions := []string{}
	args := []any{}
	if opts.OrganizacionId != nil {
		conditions = append(conditions, "c.organizacion_id = ?")
		args = append(args, *opts.OrganizacionId)
	}
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	stories := []SuccessStory{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT
				c.id,
				c.animal_id,
				c.organizacion_id,
				c.titulo,
				c.historia,
				c.foto_actual_1,
				c.foto_actual_2,
				c.foto_actual_3,
				c.fecha_adopcion,
				c.fecha_publicacion,
				a.id,
				a.nombre,
				a.especie,
				a.foto_principal,
				a.estado,
				a.organizacion_id
				FROM casos_exito c
				JOIN animales a ON a.id = c.animal_id
				%s
				ORDER BY c.fecha_publicacion DESC
		`, whereClause),
		Args:     args,
		FnSource: "models.ListSuccessStoriesV1",
		ProcessRows: func(rows *sql.Rows) error {
			var story SuccessStory
			var animal Animal
			if err := rows.Scan(
				&story.Id,
				&story.AnimalId,
				&story.OrganizacionId,
				&story.Titulo,
				&story.Historia,
				&story.FotoActual1,
				&story.FotoActual2,
				&story.FotoActual3,
				&story.FechaAdopcion,
				&story.FechaPublicacion,
				&animal.Id,
				&animal.Nombre,
				&animal.Especie,
				&animal.FotoPrincipal,
				&animal.Estado,
				&animal.OrganizacionId,
			); err != nil {
				return err
			}
			story.Animal = &animal
			stories = append(stories, story)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return stories, nil
}

type SuccessStoryGroup struct {
	Organizacion Organization   `json:"organizacion"`
	CasosExito   []SuccessStory `json:"casos_exito"`
}

// ListSuccessStoriesGroupedV1 is the public listing: active
// organizations that have at least one story, each with its stories.
func ListSuccessStoriesGroupedV1(db *sql.DB) ([]SuccessStoryGroup, error) {
	organizations, err := ListOrganizationsV1(ListOrganizationsV1Opts{Db: db, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	groups := []SuccessStoryGroup{}
	for _, org := range organizations {
		orgId := org.Id
		stories, err := ListSuccessStoriesV1(ListSuccessStoriesV1Opts{Db: db, OrganizacionId: &orgId})
		if err != nil {
			return nil, err
		}
		if len(stories) == 0 {
			continue
		}
		groups = append(groups, SuccessStoryGroup{
			Organizacion: org,
			CasosExito:   stories,
		})
	}
	return groups, nil
}
