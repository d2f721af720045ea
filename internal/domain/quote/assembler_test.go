package quote

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"doce-festa/go_backend/internal/domain/rental"
)

var fixedNow = time.Date(2025, 3, 14, 15, 4, 5, 0, time.UTC)

func newTestAssembler(clients []rental.Client, materials []rental.Material) *Assembler {
	store := &rental.MemoryStore{
		ClientRecords:   rental.NewMemoryCollection(clients...),
		MaterialRecords: rental.NewMemoryCollection(materials...),
	}
	return NewAssembler(store).WithClock(func() time.Time { return fixedNow })
}

func mat(cat rental.Category, name string, qty int, price string) rental.Material {
	return rental.Material{Category: cat, Name: name, QuantityAvailable: qty, UnitPrice: decimal.RequireFromString(price)}
}

func TestAssemble_SinglePlate(t *testing.T) {
	client := rental.Client{Name: "Maria Silva", Phone: "48999990000"}
	plate := mat(rental.Tableware, "Plate", 50, "2.50")
	a := newTestAssembler([]rental.Client{client}, []rental.Material{plate})

	q, err := a.Assemble(client, []Pick{{Material: plate, Qty: 10}})
	if err != nil {
		t.Fatal(err)
	}
	if got := q.Items[0].Subtotal.StringFixed(2); got != "25.00" {
		t.Errorf("subtotal = %s, want 25.00", got)
	}
	if got := q.Total.StringFixed(2); got != "25.00" {
		t.Errorf("total = %s, want 25.00", got)
	}
	if got := q.Deposit.StringFixed(2); got != "7.50" {
		t.Errorf("deposit = %s, want 7.50", got)
	}
	if !q.IssuedDate.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("issued date = %v", q.IssuedDate)
	}
}

func TestAssemble_TwoMaterials(t *testing.T) {
	client := rental.Client{Name: "Ana", Phone: "1"}
	plate := mat(rental.Tableware, "Plate", 10, "1.50")
	napkin := mat(rental.Napkin, "Napkin", 100, "0.20")
	a := newTestAssembler(nil, nil)

	q, err := a.Assemble(client, []Pick{{plate, 4}, {napkin, 20}})
	if err != nil {
		t.Fatal(err)
	}
	if !q.Total.Equal(decimal.RequireFromString("10")) {
		t.Errorf("total = %s, want 10.00", q.Total)
	}
	if got := q.Deposit.StringFixed(2); got != "3.00" {
		t.Errorf("deposit = %s, want 3.00", got)
	}
}

func TestAssemble_TotalsAreExact(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	a := newTestAssembler(nil, nil)
	client := rental.Client{Name: "Ana", Phone: "1"}

	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(30)
		picks := make([]Pick, 0, n)
		want := decimal.Zero
		for i := 0; i < n; i++ {
			price := decimal.New(int64(r.Intn(100000)), -2)
			qty := 1 + r.Intn(500)
			m := rental.Material{Category: rental.Tableware, Name: string(rune('A'+i%26)) + string(rune('a'+i/26)), QuantityAvailable: 500, UnitPrice: price}
			picks = append(picks, Pick{Material: m, Qty: qty})
			want = want.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		}
		q, err := a.Assemble(client, picks)
		if err != nil {
			t.Fatal(err)
		}
		if !q.Total.Equal(want) {
			t.Fatalf("round %d: total %s, want %s", round, q.Total, want)
		}
		sum := decimal.Zero
		for _, it := range q.Items {
			sum = sum.Add(it.Subtotal)
		}
		if !sum.Equal(q.Total) {
			t.Fatalf("round %d: items sum %s != total %s", round, sum, q.Total)
		}
		if q.Deposit.StringFixed(2) != want.Mul(decimal.RequireFromString("0.3")).Round(2).StringFixed(2) {
			t.Fatalf("round %d: deposit %s", round, q.Deposit)
		}
	}
}

func TestAssemble_PreservesSelectionOrder(t *testing.T) {
	a := newTestAssembler(nil, nil)
	picks := []Pick{
		{mat(rental.Tableware, "B", 5, "1"), 1},
		{mat(rental.Tableware, "A", 5, "1"), 1},
		{mat(rental.Tableware, "C", 5, "1"), 1},
	}
	q, err := a.Assemble(rental.Client{Name: "x", Phone: "y"}, picks)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"B", "A", "C"} {
		if q.Items[i].Name != want {
			t.Fatalf("item %d = %s, want %s", i, q.Items[i].Name, want)
		}
	}
}

func TestAssemble_Errors(t *testing.T) {
	a := newTestAssembler(nil, nil)
	client := rental.Client{Name: "x", Phone: "y"}
	plate := mat(rental.Tableware, "Plate", 5, "1")

	if _, err := a.Assemble(client, nil); !errors.Is(err, rental.ErrEmptySelection) {
		t.Errorf("expected ErrEmptySelection, got %v", err)
	}
	if _, err := a.Assemble(client, []Pick{{plate, 1}, {plate, 2}}); !errors.Is(err, rental.ErrValidation) {
		t.Errorf("expected ErrValidation for duplicate material, got %v", err)
	}
	if _, err := a.Assemble(client, []Pick{{plate, 6}}); !errors.Is(err, rental.ErrRange) {
		t.Errorf("expected ErrRange, got %v", err)
	}
}

func TestBuildLineItem_Bounds(t *testing.T) {
	plate := mat(rental.Tableware, "Plate", 50, "2.50")
	for _, qty := range []int{-1, 0, 51, 1000} {
		if _, err := BuildLineItem(plate, qty); !errors.Is(err, rental.ErrRange) {
			t.Errorf("qty %d: expected ErrRange, got %v", qty, err)
		}
	}
	for _, qty := range []int{1, 50} {
		if _, err := BuildLineItem(plate, qty); err != nil {
			t.Errorf("qty %d: unexpected error %v", qty, err)
		}
	}
}

func TestResolve_EmptyAndMissing(t *testing.T) {
	ctx := context.Background()
	empty := newTestAssembler(nil, nil)
	if _, err := empty.ResolveClient(ctx, "Ana"); !errors.Is(err, rental.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := empty.ResolveMaterial(ctx, "Plate"); !errors.Is(err, rental.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	a := newTestAssembler(
		[]rental.Client{{Name: "Ana", Phone: "1"}, {Name: "Ana", Phone: "2"}},
		[]rental.Material{mat(rental.Tableware, "Plate", 5, "1")},
	)
	if _, err := a.ResolveClient(ctx, "Bia"); !errors.Is(err, rental.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	c, err := a.ResolveClient(ctx, "Ana")
	if err != nil || c.Phone != "1" {
		t.Errorf("expected first Ana, got %+v, %v", c, err)
	}
	if _, err := a.ResolveMaterial(ctx, "Cup"); !errors.Is(err, rental.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPrepare(t *testing.T) {
	ctx := context.Background()
	a := newTestAssembler(
		[]rental.Client{{Name: "Maria Silva", Phone: "48999990000"}},
		[]rental.Material{mat(rental.Tableware, "Plate", 4, "1.50"), mat(rental.Napkin, "Napkin", 20, "0.20")},
	)
	q, err := a.Prepare(ctx, "Maria Silva", []Selection{{"Napkin", 20}, {"Plate", 4}})
	if err != nil {
		t.Fatal(err)
	}
	if q.Items[0].Name != "Napkin" || q.Total.StringFixed(2) != "10.00" {
		t.Fatalf("unexpected quote %+v", q)
	}
	if _, err := a.Prepare(ctx, "Maria Silva", nil); !errors.Is(err, rental.ErrEmptySelection) {
		t.Errorf("expected ErrEmptySelection, got %v", err)
	}
	if _, err := a.Prepare(ctx, "Maria Silva", []Selection{{"Plate", 5}}); !errors.Is(err, rental.ErrRange) {
		t.Errorf("expected ErrRange, got %v", err)
	}
}
