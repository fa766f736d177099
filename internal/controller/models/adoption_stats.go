package models

import (
	"database/sql"
	"fmt"
	"strings"
)

type AdoptionStats struct {
	Total        int64                   `json:"total"`
	Ultimos7Dias int64                   `json:"ultimos_7_dias"`
	PorEstado    map[RequestStatus]int64 `json:"por_estado"`
}

type GetAdoptionStatsV1Opts struct {
	Db *sql.DB

	// OrganizacionId scopes the stats to one organization; nil means
	// platform-wide (super-administrator)
	OrganizacionId *int64
}

// GetAdoptionStatsV1 aggregates request counts: total, grouped by
// review state, and the count filed within the last seven days.
func GetAdoptionStatsV1(opts GetAdoptionStatsV1Opts) (*AdoptionStats, error) {
	conditions := []string{}
	args := []any{}
	if opts.OrganizacionId != nil {
		conditions = append(conditions, "a.organizacion_id = ?")
		args = append(args, *opts.OrganizacionId)
	}
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	stats := &AdoptionStats{PorEstado: map[RequestStatus]int64{}}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: fmt.Sprintf(`
			SELECT
				s.estado_solicitud,
				COUNT(*),
				SUM(CASE WHEN s.fecha_solicitud >= NOW() - INTERVAL 7 DAY THEN 1 ELSE 0 END)
				FROM solicitudes_adopcion s
				JOIN animales a ON a.id = s.animal_id
				%s
				GROUP BY s.estado_solicitud
		`, whereClause),
		Args:     args,
		FnSource: "models.GetAdoptionStatsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var estado RequestStatus
			var count int64
			var recent int64
			if err := rows.Scan(&estado, &count, &recent); err != nil {
				return err
			}
			stats.PorEstado[estado] = count
			stats.Total += count
			stats.Ultimos7Dias += recent
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return stats, nil
}
