package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tradeledger/internal/adapter/http/dto"
	"github.com/iho/tradeledger/internal/usecase"
)

// DebtHandler handles supplier debt queries.
type DebtHandler struct {
	debtUC *usecase.DebtUseCase
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtUC *usecase.DebtUseCase) *DebtHandler {
	return &DebtHandler{debtUC: debtUC}
}

// ListBySupplier returns a supplier's outstanding debts grouped by item.
func (h *DebtHandler) ListBySupplier(w http.ResponseWriter, r *http.Request) {
	supplierID := chi.URLParam(r, "id")
	if supplierID == "" {
		writeError(w, http.StatusBadRequest, "missing supplier ID", "")
		return
	}

	debts, err := h.debtUC.ListOutstanding(r.Context(), supplierID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list supplier debts", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ItemDebtsFromDomain(debts))
}
