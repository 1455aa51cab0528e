package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

// handleStatsOverview returns how many kits were issued over a period. It
// accepts optional `from`, `to` (RFC3339 timestamps) and `objective` query
// parameters. Without a period it covers the last 24 hours.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.writeError(w, r, newAPIError(http.StatusBadRequest, "invalid_query", errors.New("invalid 'from' timestamp")))
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.writeError(w, r, newAPIError(http.StatusBadRequest, "invalid_query", errors.New("invalid 'to' timestamp")))
			return
		}
	} else {
		req.To = time.Now()
	}

	if o := q.Get("objective"); o != "" {
		objective, err := domain.ParseObjective(o)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		req.Objective = &objective
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
