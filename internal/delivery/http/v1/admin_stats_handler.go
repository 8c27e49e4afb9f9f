package v1

import (
	"net/http"

	"sunnyside-backend/internal/usecase"
	"sunnyside-backend/pkg/utils"
)

type AdminStatsHandler struct {
	statsUC *usecase.StatsUsecase
}

func NewAdminStatsHandler(uc *usecase.StatsUsecase) *AdminStatsHandler {
	return &AdminStatsHandler{statsUC: uc}
}

func (h *AdminStatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUC.GetOrderStats(r.Context())
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}
