package pdf

import (
	"fmt"

	"github.com/shopspring/decimal"

	"doce-festa/go_backend/internal/domain/quote"
)

type SectionKind int

const (
	SectionTitle SectionKind = iota
	SectionDate
	SectionClient
	SectionItems
	SectionTotals
	SectionFooter
)

// Section is one block of the document. Text sections use Lines; the item
// section uses Header and Rows.
type Section struct {
	Kind   SectionKind
	Lines  []string
	Header []string
	Rows   [][]string
}

// Document is the layout-independent content of a rendered quote.
type Document struct {
	Title    string
	Subject  string
	Author   string
	LogoPath string
	Sections []Section
}

// Branding holds the fixed texts printed on every quote.
type Branding struct {
	Title    string
	Company  string
	Phone    string
	Hours    string
	PIX      string
	LogoPath string
}

func DefaultBranding() Branding {
	return Branding{
		Title:    "DOCE DE FESTA - ORÇAMENTO DE LOCAÇÃO",
		Company:  "Doce de Festa",
		Phone:    "(48) 99846-6161",
		Hours:    "Segunda a Sexta, das 8h às 17h (sem fechar ao meio-dia)",
		PIX:      "09.266.448.0001/26",
		LogoPath: "logo.png",
	}
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// BuildDocument lays the quote out as ordered sections: title, date,
// client, items, totals, footer.
func BuildDocument(q quote.Quote, b Branding) (Document, error) {
	if len(q.Items) == 0 {
		return Document{}, fmt.Errorf("%w: quote has no items", ErrRender)
	}

	rows := make([][]string, 0, len(q.Items))
	for _, it := range q.Items {
		rows = append(rows, []string{
			it.Category.Label(),
			it.Name,
			fmt.Sprintf("%d", it.Qty),
			money(it.UnitPrice),
			money(it.Subtotal),
		})
	}

	return Document{
		Title:    b.Title,
		Subject:  "Orçamento " + q.Client.Name,
		Author:   b.Company,
		LogoPath: b.LogoPath,
		Sections: []Section{
			{Kind: SectionTitle, Lines: []string{b.Title}},
			{Kind: SectionDate, Lines: []string{"Data: " + q.IssuedDate.Format("02/01/2006")}},
			{Kind: SectionClient, Lines: []string{
				"Cliente: " + q.Client.Name,
				fmt.Sprintf("Telefone: %s | Email: %s", q.Client.Phone, q.Client.Email),
			}},
			{
				Kind:   SectionItems,
				Lines:  []string{"Itens Selecionados:"},
				Header: []string{"Categoria", "Item", "Qtd", "Preço", "Subtotal"},
				Rows:   rows,
			},
			{Kind: SectionTotals, Lines: []string{
				"Total: " + money(q.Total),
				"Entrada (30%): " + money(q.Deposit),
			}},
			{Kind: SectionFooter, Lines: []string{
				"Contato: " + b.Phone,
				"Atendimento: " + b.Hours,
				"PIX: " + b.PIX,
			}},
		},
	}, nil
}
