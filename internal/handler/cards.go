package handler

import (
	"fmt"
	"net/http"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/service"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/utils"
	"github.com/gorilla/mux"
)

// CreateCard handles card creation
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var p service.CardParams
	if !h.decode(w, r, &p) {
		return
	}
	card, err := h.svc.CreateCard(p)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, card)
}

// ListCards returns all cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListCards()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, cards)
}

// UpdateCard replaces a card's settings
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var p service.CardParams
	if !h.decode(w, r, &p) {
		return
	}
	card, err := h.svc.UpdateCard(mux.Vars(r)["id"], p)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, card)
}

// DeleteCard removes a card and everything under it
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCard(mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddCharge records a purchase on a card
func (h *Handler) AddCharge(w http.ResponseWriter, r *http.Request) {
	var p service.ChargeParams
	if !h.decode(w, r, &p) {
		return
	}
	charge, err := h.svc.AddCharge(mux.Vars(r)["id"], p)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, charge)
}

// ListCharges returns a card's purchases
func (h *Handler) ListCharges(w http.ResponseWriter, r *http.Request) {
	charges, err := h.svc.ListCharges(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, charges)
}

// DeleteCharge removes a purchase and its installments
func (h *Handler) DeleteCharge(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCharge(mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CardInvoice returns the installments of one invoice month
func (h *Handler) CardInvoice(w http.ResponseWriter, r *http.Request) {
	installments, err := h.svc.CardInvoice(mux.Vars(r)["id"], r.URL.Query().Get("month"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, installments)
}

// CardSummary returns the card aggregates for the viewed month
func (h *Handler) CardSummary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.CardSummary(mux.Vars(r)["id"], r.URL.Query().Get("month"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, totals)
}

// ToggleCardInstallment flips an installment between pending and paid
func (h *Handler) ToggleCardInstallment(w http.ResponseWriter, r *http.Request) {
	in, posted, err := h.svc.ToggleCardInstallment(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"installment":   in,
		"ledger_posted": posted,
	})
}

// PayInvoice settles every pending installment of one invoice month
func (h *Handler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Month string `json:"month"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	total, posted, err := h.svc.RegisterInvoicePayment(mux.Vars(r)["id"], req.Month)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"total":         total,
		"ledger_posted": posted,
	})
}

// ExportInvoice streams one invoice month as a CSV download
func (h *Handler) ExportInvoice(w http.ResponseWriter, r *http.Request) {
	cardID := mux.Vars(r)["id"]
	month := r.URL.Query().Get("month")
	card, err := h.svc.GetCard(cardID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	installments, err := h.svc.CardInvoice(cardID, month)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=fatura-%s-%s.csv", card.Name, month))
	if err := utils.WriteInvoiceCSV(w, card, month, installments); err != nil {
		h.log.Errorf("Failed to write invoice CSV: %v", err)
	}
}
