package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"doce-festa/go_backend/internal/domain/rental"
)

type CreateMaterialRequest struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreateMaterial clamps quantity to at least 1 and price to at least 0, the
// same bounds the registration form enforces.
func (h *Handlers) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req CreateMaterialRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	category, err := rental.ParseCategory(req.Category)
	if err != nil {
		h.writeError(w, r, &rental.ValidationError{Violations: rental.Violations{"category": "invalid"}})
		return
	}
	qty := max(req.Quantity, 1)
	price := decimal.Max(req.Price, decimal.Zero)

	m, err := h.Materials.Register(r.Context(), category, req.Name, qty, price)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Log.Info("material registered", "category", m.Category.String(), "name", m.Name, "quantity", m.QuantityAvailable, "price", m.UnitPrice.String())
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handlers) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.Store.Materials().Load(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, materials)
}
