package assist

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fixline/lead-assist/internal/logging"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleRespond — one turn in, one reply out. Only malformed requests
// produce an error status; provider trouble is absorbed upstream and
// still answers 200 with a reply.
func (h *Handler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if verr := ValidateTurnRequest(&req); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	result, err := h.svc.ProcessTurn(r.Context(), req)
	if err != nil {
		logging.L().Error("turn processing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "processing error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
