package adaptor

import (
	"net/http"

	"property-hub/internal/usecase"
	"property-hub/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// Stats handles GET /api/dashboard/stats (staff only)
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
