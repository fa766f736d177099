package controller

import (
	"net/http"

	"adoptar/internal/common"
	"adoptar/internal/controller/models"
)

func registerDashboardRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	routes := opts.Router.PathPrefix("/dashboard").Subrouter()
	routes.Handle("/stats", requiresAuth(http.HandlerFunc(handleGetDashboardStatsV1))).Methods(http.MethodGet)
}

// handleGetDashboardStatsV1 aggregates the caller's own tenant; super
// administrators get the same view for their own organization rather
// than a platform-wide rollup.
func handleGetDashboardStatsV1(w http.ResponseWriter, r *http.Request) {
	identity := getAuthedIdentity(r)
	stats, err := models.GetDashboardStatsV1(models.GetDashboardStatsV1Opts{
		Db:             dbInstance,
		OrganizacionId: identity.OrgId,
	})
	if err != nil {
		sendModelError(w, r, err, "failed to aggregate dashboard statistics")
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, stats)
}
