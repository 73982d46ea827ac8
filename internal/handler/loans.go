package handler

import (
	"fmt"
	"net/http"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/service"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/utils"
	"github.com/gorilla/mux"
)

// CreateLoan creates a loan together with its amortization plan
func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var p service.LoanParams
	if !h.decode(w, r, &p) {
		return
	}
	loan, posted, err := h.svc.CreateLoan(p)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"loan":          loan,
		"ledger_posted": posted,
	})
}

// ListLoans returns all loans
func (h *Handler) ListLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.svc.ListLoans()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, loans)
}

// DeleteLoan removes a loan and its plan
func (h *Handler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteLoan(mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LoanPlan returns the full amortization plan
func (h *Handler) LoanPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.LoanPlan(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, plan)
}

// LoanInstallmentsForMonth returns the plan rows of one period
func (h *Handler) LoanInstallmentsForMonth(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.LoanInstallmentsForMonth(mux.Vars(r)["id"], r.URL.Query().Get("month"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rows)
}

// LoanSummary returns the loan aggregates
func (h *Handler) LoanSummary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.LoanSummary(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, totals)
}

// ToggleLoanInstallment flips a plan row between pending and paid
func (h *Handler) ToggleLoanInstallment(w http.ResponseWriter, r *http.Request) {
	in, posted, err := h.svc.ToggleLoanInstallment(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"installment":   in,
		"ledger_posted": posted,
	})
}

// ExportLoanPlan streams the amortization plan as a CSV download
func (h *Handler) ExportLoanPlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	plan, err := h.svc.LoanPlan(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=emprestimo-%s.csv", id))
	if err := utils.WriteLoanPlanCSV(w, plan); err != nil {
		h.log.Errorf("Failed to write loan plan CSV: %v", err)
	}
}
