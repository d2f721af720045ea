package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"doce-festa/go_backend/internal/domain/rental"
)

// DepositRate is the share of the total paid up front to reserve a rental.
var DepositRate = decimal.RequireFromString("0.30")

type LineItem struct {
	Category  rental.Category `json:"category"`
	Name      string          `json:"name"`
	Qty       int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Quote is the computed, unpersisted result of pricing a selection for a
// client. Items keep the order the caller selected them in. Amounts are
// exact; rounding happens when the quote is rendered.
type Quote struct {
	Client     rental.Client   `json:"client"`
	Items      []LineItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Deposit    decimal.Decimal `json:"deposit"`
	IssuedDate time.Time       `json:"issued_date"`
}
