package handlers

import (
	"net/http"
)

type CreateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.Clients.Register(r.Context(), req.Name, req.Phone, req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Log.Info("client registered", "name", c.Name, "phone", c.Phone, "email", c.Email)
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Store.Clients().Load(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}
