package handlers

import (
	"net/http"
	"strconv"

	"doce-festa/go_backend/internal/domain/quote"
	"doce-festa/go_backend/internal/domain/quote/pdf"
)

type CreateQuoteRequest struct {
	Client string            `json:"client"`
	Items  []quote.Selection `json:"items"`
}

type QuotePreview struct {
	Client     string             `json:"client"`
	IssuedDate string             `json:"issued_date"`
	Items      []QuotePreviewItem `json:"items"`
	Total      string             `json:"total"`
	Deposit    string             `json:"deposit"`
	FileName   string             `json:"file_name"`
}

type QuotePreviewItem struct {
	Category  string `json:"category"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

func (h *Handlers) prepareQuote(r *http.Request) (quote.Quote, error) {
	var req CreateQuoteRequest
	if err := decode(r, &req); err != nil {
		return quote.Quote{}, err
	}
	q, err := h.Quotes.Prepare(r.Context(), req.Client, req.Items)
	if err != nil {
		return quote.Quote{}, err
	}
	h.Log.Info("quote assembled", "client", q.Client.Name, "items", len(q.Items), "total", q.Total.StringFixed(2))
	return q, nil
}

// PreviewQuote returns the priced quote with amounts already rounded for display.
func (h *Handlers) PreviewQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.prepareQuote(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := QuotePreview{
		Client:     q.Client.Name,
		IssuedDate: q.IssuedDate.Format("2006-01-02"),
		Items:      make([]QuotePreviewItem, 0, len(q.Items)),
		Total:      q.Total.StringFixed(2),
		Deposit:    q.Deposit.StringFixed(2),
		FileName:   pdf.FileName(q.Client.Name),
	}
	for _, it := range q.Items {
		out.Items = append(out.Items, QuotePreviewItem{
			Category:  it.Category.String(),
			Name:      it.Name,
			Quantity:  it.Qty,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Subtotal:  it.Subtotal.StringFixed(2),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.prepareQuote(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", pdf.ContentDisposition(q.Client.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
