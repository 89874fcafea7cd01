package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/InMan-Labs/inman-website/internal/metrics"
	"github.com/InMan-Labs/inman-website/internal/roi"
	"github.com/InMan-Labs/inman-website/pkg/apperror"
	"github.com/InMan-Labs/inman-website/pkg/logger"
)

// inputsFromQuery reads incidents, mttr and cost. Missing parameters keep
// their defaults; values are not normalized here.
func inputsFromQuery(q url.Values) (roi.Inputs, error) {
	in := roi.DefaultInputs()
	fields := []struct {
		name string
		dst  *float64
	}{
		{"incidents", &in.IncidentsPerMonth},
		{"mttr", &in.MTTRHours},
		{"cost", &in.CostPerHour},
	}

	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return in, fmt.Errorf("%s must be a number", f.name)
		}
		*f.dst = v
	}
	return in, nil
}

// ROI answers GET /api/roi with the estimate for the clamped inputs.
func (h *Handler) ROI(w http.ResponseWriter, r *http.Request) {
	in, err := inputsFromQuery(r.URL.Query())
	if err != nil {
		apperror.WriteJSON(w, apperror.NewBadRequest(err.Error()))
		return
	}

	est := roi.NewEstimate(in)
	metrics.ROIEstimates.WithLabelValues("api").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(est); err != nil {
		h.log.Error("failed to encode estimate", logger.Error(err))
	}
}
