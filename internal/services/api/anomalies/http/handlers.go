// Package http provides http transport for anomalies
package http

import (
	stdhttp "net/http"

	"toolwatch/internal/modkit/httpkit"
	"toolwatch/internal/services/api/anomalies/domain"
	svc "toolwatch/internal/services/api/anomalies/service"
)

// Register mounts anomaly endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// keyset page of anomalies, optional detail filter
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)

	// per-detail census
	httpkit.Get(r, "/counts", h.counts)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /anomalies/list Anomalies anomaliesList
// @Summary List anomalies
// @Tags Anomalies
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {object} domain.ListResp "ok"
// @Router /anomalies/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /anomalies/counts Anomalies anomaliesCounts
// @Summary Anomaly census by detail
// @Tags Anomalies
// @Produce json
// @Success 200 {object} domain.CountsResp "ok"
// @Router /anomalies/counts [get]
func (h *handlers) counts(r *stdhttp.Request) (any, error) {
	return h.svc.Counts(r.Context())
}
