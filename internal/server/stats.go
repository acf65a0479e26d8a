package server

import "net/http"

func (h *Handler) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	dailyStats, err := h.stats.DailyStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dailyStats)
}
