package models

import (
	"database/sql"
)

type DashboardStats struct {
	TotalAnimales        int64                   `json:"total_animales"`
	TotalSolicitudes     int64                   `json:"total_solicitudes"`
	AnimalesPorEstado    map[AnimalStatus]int64  `json:"animales_por_estado"`
	SolicitudesPorEstado map[RequestStatus]int64 `json:"solicitudes_por_estado"`
	SolicitudesRecientes int64                   `json:"solicitudes_ultimos_7_dias"`
	AnimalesRecientes    int64                   `json:"animales_ultimos_30_dias"`
	TasaAdopcion         float64                 `json:"tasa_adopcion"`
}

type GetDashboardStatsV1Opts struct {
	Db *sql.DB

	OrganizacionId int64
}

// GetDashboardStatsV1 aggregates one organization's animal and request
// counts for the administration dashboard. TasaAdopcion is the share of
// the organization's animals that ended up adopted, as a percentage.
func GetDashboardStatsV1(opts GetDashboardStatsV1Opts) (*DashboardStats, error) {
	stats := &DashboardStats{
		AnimalesPorEstado:    map[AnimalStatus]int64{},
		SolicitudesPorEstado: map[RequestStatus]int64{},
	}

	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			SELECT
				estado,
				COUNT(*),
				SUM(CASE WHEN fecha_publicacion >= NOW() - INTERVAL 30 DAY THEN 1 ELSE 0 END)
				FROM animales
				WHERE organizacion_id = ?
				GROUP BY estado
		`,
		Args:     []any{opts.OrganizacionId},
		FnSource: "models.GetDashboardStatsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var estado AnimalStatus
			var count int64
			var recent int64
			if err := rows.Scan(&estado, &count, &recent); err != nil {
				return err
			}
			stats.AnimalesPorEstado[estado] = count
			stats.TotalAnimales += count
			stats.AnimalesRecientes += recent
			return nil
		},
	}); err != nil {
		return nil, err
	}

	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
			SELECT
				s.estado_solicitud,
				COUNT(*),
				SUM(CASE WHEN s.fecha_solicitud >= NOW() - INTERVAL 7 DAY THEN 1 ELSE 0 END)
				FROM solicitudes_adopcion s
				JOIN animales a ON a.id = s.animal_id
				WHERE a.organizacion_id = ?
				GROUP BY s.estado_solicitud
		`,
		Args:     []any{opts.OrganizacionId},
		FnSource: "models.GetDashboardStatsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var estado RequestStatus
			var count int64
			var recent int64
			if err := rows.Scan(&estado, &count, &recent); err != nil {
				return err
			}
			stats.SolicitudesPorEstado[estado] = count
			stats.TotalSolicitudes += count
			stats.SolicitudesRecientes += recent
			return nil
		},
	}); err != nil {
		return nil, err
	}

	if stats.TotalAnimales > 0 {
		adopted := stats.AnimalesPorEstado[AnimalStatusAdoptado]
		stats.TasaAdopcion = float64(adopted) / float64(stats.TotalAnimales) * 100
	}
	return stats, nil
}
