// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"toolwatch/internal/modkit/httpkit"
	"toolwatch/internal/services/api/stats/domain"
	svc "toolwatch/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// duration profile for one open type
	httpkit.PostJSON[domain.SummaryInput](r, "/summary", h.summary)

	// manual vs auto comparison
	httpkit.Get(r, "/compare", h.compare)

	// per-type episode census
	httpkit.Get(r, "/counts", h.counts)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/summary Stats statsSummary
// @Summary Duration summary for one open type
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.SummaryInput true "Query"
// @Success 200 {object} domain.SummaryResp "ok"
// @Router /stats/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SummaryInput) (any, error) {
	return h.svc.Summary(r.Context(), in)
}

// swagger:route GET /stats/compare Stats statsCompare
// @Summary Manual vs auto duration comparison
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.CompareResp "ok"
// @Router /stats/compare [get]
func (h *handlers) compare(r *stdhttp.Request) (any, error) {
	return h.svc.Compare(r.Context())
}

// swagger:route GET /stats/counts Stats statsCounts
// @Summary Episode census by open type
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.CountsResp "ok"
// @Router /stats/counts [get]
func (h *handlers) counts(r *stdhttp.Request) (any, error) {
	return h.svc.Counts(r.Context())
}
