package handler

import (
	"net/http"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/repository"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/service"
	"github.com/gorilla/mux"
)

// ListTransactions returns ledger entries matching the query filters
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.TransactionFilter{
		Month:    q.Get("month"),
		Type:     q.Get("type"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	txs, err := h.svc.ListTransactions(f)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, txs)
}

// AddTransaction appends a manual ledger entry
func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var p service.TransactionParams
	if !h.decode(w, r, &p) {
		return
	}
	t, err := h.svc.AddTransaction(p)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, t)
}

// DeleteTransaction removes a ledger entry
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTransaction(mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
