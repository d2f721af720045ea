package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"doce-festa/go_backend/internal/domain/rental"
)

// Selection is one requested material, referenced by name.
type Selection struct {
	Material string `json:"material"`
	Qty      int    `json:"quantity"`
}

// Pick is a resolved material with the quantity to rent.
type Pick struct {
	Material rental.Material
	Qty      int
}

type Assembler struct {
	store rental.Store
	now   func() time.Time
}

func NewAssembler(store rental.Store) *Assembler {
	return &Assembler{store: store, now: time.Now}
}

// WithClock replaces the clock used for the issued date.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// ResolveClient returns the first client named name.
func (a *Assembler) ResolveClient(ctx context.Context, name string) (rental.Client, error) {
	clients, err := a.store.Clients().Load(ctx)
	if err != nil {
		return rental.Client{}, fmt.Errorf("load clients: %w", err)
	}
	if len(clients) == 0 {
		return rental.Client{}, fmt.Errorf("%w: no clients registered", rental.ErrNotFound)
	}
	c, ok := rental.FirstClient(clients, name)
	if !ok {
		return rental.Client{}, fmt.Errorf("%w: client %q", rental.ErrNotFound, name)
	}
	return c, nil
}

// ResolveMaterial returns the first material named name.
func (a *Assembler) ResolveMaterial(ctx context.Context, name string) (rental.Material, error) {
	materials, err := a.store.Materials().Load(ctx)
	if err != nil {
		return rental.Material{}, fmt.Errorf("load materials: %w", err)
	}
	return resolveMaterial(materials, name)
}

func resolveMaterial(materials []rental.Material, name string) (rental.Material, error) {
	if len(materials) == 0 {
		return rental.Material{}, fmt.Errorf("%w: no materials registered", rental.ErrNotFound)
	}
	m, ok := rental.FirstMaterial(materials, name)
	if !ok {
		return rental.Material{}, fmt.Errorf("%w: material %q", rental.ErrNotFound, name)
	}
	return m, nil
}

// BuildLineItem prices qty units of m. qty must be within 1..m.QuantityAvailable.
func BuildLineItem(m rental.Material, qty int) (LineItem, error) {
	if qty < 1 || qty > m.QuantityAvailable {
		return LineItem{}, fmt.Errorf("%w: quantity %d for %q must be between 1 and %d",
			rental.ErrRange, qty, m.Name, m.QuantityAvailable)
	}
	return LineItem{
		Category:  m.Category,
		Name:      m.Name,
		Qty:       qty,
		UnitPrice: m.UnitPrice,
		Subtotal:  m.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}, nil
}

// Assemble prices picks for client in the given order. A material may
// appear only once per quote.
func (a *Assembler) Assemble(client rental.Client, picks []Pick) (Quote, error) {
	if len(picks) == 0 {
		return Quote{}, rental.ErrEmptySelection
	}
	q := Quote{
		Client:     client,
		Items:      make([]LineItem, 0, len(picks)),
		Total:      decimal.Zero,
		IssuedDate: truncateToDay(a.now()),
	}
	seen := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		if _, dup := seen[p.Material.Name]; dup {
			return Quote{}, &rental.ValidationError{Violations: rental.Violations{
				"items": fmt.Sprintf("duplicate material %q", p.Material.Name),
			}}
		}
		seen[p.Material.Name] = struct{}{}

		item, err := BuildLineItem(p.Material, p.Qty)
		if err != nil {
			return Quote{}, err
		}
		q.Items = append(q.Items, item)
		q.Total = q.Total.Add(item.Subtotal)
	}
	q.Deposit = q.Total.Mul(DepositRate)
	return q, nil
}

// Prepare resolves the client and every selection against one snapshot of
// the store and assembles the quote.
func (a *Assembler) Prepare(ctx context.Context, clientName string, selections []Selection) (Quote, error) {
	if len(selections) == 0 {
		return Quote{}, rental.ErrEmptySelection
	}
	client, err := a.ResolveClient(ctx, clientName)
	if err != nil {
		return Quote{}, err
	}
	materials, err := a.store.Materials().Load(ctx)
	if err != nil {
		return Quote{}, fmt.Errorf("load materials: %w", err)
	}
	picks := make([]Pick, 0, len(selections))
	for _, s := range selections {
		m, err := resolveMaterial(materials, s.Material)
		if err != nil {
			return Quote{}, err
		}
		picks = append(picks, Pick{Material: m, Qty: s.Qty})
	}
	return a.Assemble(client, picks)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
