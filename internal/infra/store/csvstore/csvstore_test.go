package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"doce-festa/go_backend/internal/domain/rental"
)

func TestLoad_MissingAndEmptyFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := New(dir, "clients.csv", "materials.csv")

	clients, err := s.Clients().Load(ctx)
	if err != nil || len(clients) != 0 {
		t.Fatalf("missing file: got %v, %v", clients, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "materials.csv"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	materials, err := s.Materials().Load(ctx)
	if err != nil || len(materials) != 0 {
		t.Fatalf("empty file: got %v, %v", materials, err)
	}
}

func TestAppendAndSave_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := New(dir, "clients.csv", "materials.csv")

	for _, c := range []rental.Client{
		{Name: "Maria Silva", Phone: "48999990000"},
		{Name: "Souza, João", Phone: "4833", Email: "j@x.com"},
		{Name: "Maria Silva", Phone: "000"},
	} {
		if err := s.Clients().AppendAndSave(ctx, c); err != nil {
			t.Fatal(err)
		}
	}
	clients, err := s.Clients().Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(clients) != 3 || clients[1].Name != "Souza, João" || clients[2].Phone != "000" {
		t.Fatalf("unexpected clients %+v", clients)
	}

	plate := rental.Material{Category: rental.Tableware, Name: "Plate", QuantityAvailable: 50, UnitPrice: decimal.RequireFromString("2.50")}
	if err := s.Materials().AppendAndSave(ctx, plate); err != nil {
		t.Fatal(err)
	}
	materials, err := s.Materials().Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(materials) != 1 || materials[0].Category != rental.Tableware || !materials[0].UnitPrice.Equal(plate.UnitPrice) || materials[0].QuantityAvailable != 50 {
		t.Fatalf("unexpected materials %+v", materials)
	}

	raw, _ := os.ReadFile(filepath.Join(dir, "materials.csv"))
	if !strings.HasPrefix(string(raw), "category,name,quantity,price\n") {
		t.Errorf("unexpected header in %q", raw)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestLoad_LegacyHeaders(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	legacy := "categoria,nome,quantidade,preco\nLouça,Prato raso,50,2.5\nGuardanapo,Guardanapo linho,100.0,0.2\n"
	if err := os.WriteFile(filepath.Join(dir, "materials.csv"), []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "clients.csv"), []byte("nome,telefone,email\nAna,123,\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(dir, "clients.csv", "materials.csv")

	materials, err := s.Materials().Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(materials) != 2 || materials[0].Category != rental.Tableware || materials[1].QuantityAvailable != 100 {
		t.Fatalf("unexpected materials %+v", materials)
	}
	clients, err := s.Clients().Load(ctx)
	if err != nil || len(clients) != 1 || clients[0].Email != "" {
		t.Fatalf("unexpected clients %+v, %v", clients, err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"header":   "a,b,c,d\n",
		"columns":  "category,name,quantity,price\nTableware,Plate,5\n",
		"category": "category,name,quantity,price\nChair,Plate,5,1\n",
		"quantity": "category,name,quantity,price\nTableware,Plate,five,1\n",
		"price":    "category,name,quantity,price\nTableware,Plate,5,abc\n",
		"no stock": "category,name,quantity,price\nTableware,Plate,0,1\n",
		"negative": "category,name,quantity,price\nTableware,Plate,5,-0.50\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "m.csv"), []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := New(dir, "c.csv", "m.csv").Materials().Load(ctx); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAppendAndSave_KeepsPricePrecision(t *testing.T) {
	ctx := context.Background()
	s := New(t.TempDir(), "c.csv", "m.csv")
	m := rental.Material{Category: rental.Placemat, Name: "Charger", QuantityAvailable: 3, UnitPrice: decimal.RequireFromString("4.125")}
	if err := s.Materials().AppendAndSave(ctx, m); err != nil {
		t.Fatal(err)
	}
	materials, err := s.Materials().Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !materials[0].UnitPrice.Equal(m.UnitPrice) {
		t.Fatalf("price = %s, want 4.125", materials[0].UnitPrice)
	}
}

func TestAppendAndSave_KeepsFileOnCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "c.csv")
	body := "wrong,header\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(dir, "c.csv", "m.csv")
	if err := s.Clients().AppendAndSave(ctx, rental.Client{Name: "Ana", Phone: "1"}); err == nil {
		t.Fatal("expected error")
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != body {
		t.Fatalf("file was modified: %q", raw)
	}
}
