package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/integrations/ecb"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/integrations/quotes"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc    *service.Service
	quotes *quotes.Client
	fx     *ecb.Client
	log    *logrus.Logger
}

func NewHandler(svc *service.Service, q *quotes.Client, fx *ecb.Client, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, quotes: q, fx: fx, log: log}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			h.log.Errorf("Failed to encode response: %v", err)
		}
	}
}

// respondError maps service errors to HTTP status codes: rejected input
// becomes 400, missing records 404, anything else 500.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		h.log.Errorf("Request failed: %v", err)
	}
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}
