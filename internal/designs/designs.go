package designs

import (
	"encoding/json"
	"net/http"

	auth "Girder/internal/auth"
	repo "Girder/internal/repo"
)

// Handler persists and lists a user's saved design runs (optimization
// results serialized by the frontend).
type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Kind    string          `json:"kind"` // cost-optimization, rebar, beam-line
	Payload json.RawMessage `json:"payload"`
}

type SaveResponse struct {
	ID int `json:"id"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Kind == "" || len(req.Payload) == 0 {
		http.Error(w, "Kind and payload required", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveDesign(r.Context(), userID, req.Kind, req.Payload)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []repo.SavedDesign{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
