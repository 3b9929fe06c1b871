package costopt

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	Logger *zap.Logger
}

func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Optimize(input)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("cost optimization failed",
				zap.Float64("span_mm", input.SpanMM),
				zap.Float64("mu_knm", input.MuKNm),
				zap.Error(err))
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
