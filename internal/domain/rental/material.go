package rental

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Category int

const (
	Tableware Category = iota + 1
	Tablecloth
	Napkin
	Placemat
)

var Categories = []Category{Tableware, Tablecloth, Napkin, Placemat}

func (c Category) String() string {
	switch c {
	case Tableware:
		return "Tableware"
	case Tablecloth:
		return "Tablecloth"
	case Napkin:
		return "Napkin"
	case Placemat:
		return "Placemat"
	default:
		return "Unknown"
	}
}

// Label is the name printed on quotes.
func (c Category) Label() string {
	switch c {
	case Tableware:
		return "Louça"
	case Tablecloth:
		return "Toalha"
	case Napkin:
		return "Guardanapo"
	case Placemat:
		return "Sousplat"
	default:
		return "?"
	}
}

func (c Category) Valid() bool { return c >= Tableware && c <= Placemat }

// ParseCategory accepts the canonical names and the printed labels, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Material is a rentable inventory item, identified by name.
type Material struct {
	Category          Category        `json:"category"`
	Name              string          `json:"name"`
	QuantityAvailable int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"price"`
}

// NewMaterial validates category and name. Quantity and price bounds are
// the caller's input layer concern and are taken as given.
func NewMaterial(category Category, name string, quantity int, unitPrice decimal.Decimal) (Material, error) {
	m := Material{
		Category:          category,
		Name:              strings.TrimSpace(name),
		QuantityAvailable: quantity,
		UnitPrice:         unitPrice,
	}
	v := Violations{}
	if !category.Valid() {
		v["category"] = "invalid"
	}
	Required("name", m.Name, v)
	if err := v.Err(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// CheckStock reports a stored material that can never be quoted: less than
// one unit available or a negative price.
func (m Material) CheckStock() error {
	if m.QuantityAvailable < 1 {
		return fmt.Errorf("%w: quantity %d for %q must be at least 1", ErrRange, m.QuantityAvailable, m.Name)
	}
	if m.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: price %s for %q must not be negative", ErrRange, m.UnitPrice, m.Name)
	}
	return nil
}
