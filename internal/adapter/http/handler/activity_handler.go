package handler

import (
	"net/http"
	"time"

	"github.com/iho/tradeledger/internal/adapter/http/dto"
	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/usecase"
)

// ActivityHandler handles activity trail queries.
type ActivityHandler struct {
	activityUC *usecase.ActivityUseCase
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityUC *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{activityUC: activityUC}
}

// List returns activity entries newest first.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ActivityFilter{
		Action:     domain.ActivityAction(r.URL.Query().Get("action")),
		EntityType: domain.EntityType(r.URL.Query().Get("entity_type")),
		UserID:     r.URL.Query().Get("user_id"),
		Limit:      parseIntQuery(r, "limit", 0),
	}

	if filter.Action != "" && !filter.Action.Valid() {
		writeError(w, http.StatusBadRequest, "unknown action", string(filter.Action))
		return
	}

	if from, ok := parseTimeQuery(r, "from"); ok {
		filter.From = &from
	}
	if to, ok := parseTimeQuery(r, "to"); ok {
		filter.To = &to
	}

	entries, err := h.activityUC.Query(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to query activity", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ActivityEntriesFromDomain(entries))
}

func parseTimeQuery(r *http.Request, key string) (time.Time, bool) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
