package handler

import (
	"net/http"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/service"
	"github.com/gorilla/mux"
)

// AddHolding creates a portfolio position
func (h *Handler) AddHolding(w http.ResponseWriter, r *http.Request) {
	var p service.HoldingParams
	if !h.decode(w, r, &p) {
		return
	}
	holding, err := h.svc.AddHolding(p)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, holding)
}

// ListHoldings returns every portfolio position
func (h *Handler) ListHoldings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.svc.ListHoldings()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, holdings)
}

// UpdateHolding updates a position's quantity and manual price
func (h *Handler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	var p service.HoldingParams
	if !h.decode(w, r, &p) {
		return
	}
	holding, err := h.svc.UpdateHolding(mux.Vars(r)["id"], p)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, holding)
}

// DeleteHolding removes a position
func (h *Handler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteHolding(mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Portfolio values every holding at live or manual prices
func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	valuation, err := h.svc.PortfolioValuation(r.Context(), r.URL.Query().Get("currency"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, valuation)
}
