package handler

import "net/http"

// Login handles authentication and returns a bearer token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		h.respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
