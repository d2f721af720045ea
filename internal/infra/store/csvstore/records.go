package csvstore

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"doce-festa/go_backend/internal/domain/rental"
)

var clientCodec = codec[rental.Client]{
	kind:   "clients",
	header: []string{"name", "phone", "email"},
	legacy: [][]string{{"nome", "telefone", "email"}},
	decode: func(row []string) (rental.Client, error) {
		return rental.Client{Name: row[0], Phone: row[1], Email: row[2]}, nil
	},
	encode: func(c rental.Client) []string {
		return []string{c.Name, c.Phone, c.Email}
	},
}

var materialCodec = codec[rental.Material]{
	kind:   "materials",
	header: []string{"category", "name", "quantity", "price"},
	legacy: [][]string{{"categoria", "nome", "quantidade", "preco"}},
	decode: parseMaterial,
	encode: func(m rental.Material) []string {
		return []string{
			m.Category.String(),
			m.Name,
			strconv.Itoa(m.QuantityAvailable),
			m.UnitPrice.String(),
		}
	},
}

func parseMaterial(row []string) (rental.Material, error) {
	category, err := rental.ParseCategory(row[0])
	if err != nil {
		return rental.Material{}, err
	}
	qty, err := parseQuantity(row[2])
	if err != nil {
		return rental.Material{}, fmt.Errorf("invalid quantity: %s", row[2])
	}
	price, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return rental.Material{}, fmt.Errorf("invalid price: %s", row[3])
	}
	m := rental.Material{
		Category:          category,
		Name:              row[1],
		QuantityAvailable: qty,
		UnitPrice:         price,
	}
	if err := m.CheckStock(); err != nil {
		return rental.Material{}, err
	}
	return m, nil
}

// parseQuantity also accepts whole numbers written as "50.0".
func parseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return int(d.IntPart()), nil
}

// Store keeps clients and materials in two CSV files.
type Store struct {
	clients   *File[rental.Client]
	materials *File[rental.Material]
}

var _ rental.Store = (*Store)(nil)

func New(dir, clientsFile, materialsFile string) *Store {
	return &Store{
		clients:   &File[rental.Client]{path: filepath.Join(dir, clientsFile), codec: clientCodec},
		materials: &File[rental.Material]{path: filepath.Join(dir, materialsFile), codec: materialCodec},
	}
}

func (s *Store) Clients() rental.Collection[rental.Client]     { return s.clients }
func (s *Store) Materials() rental.Collection[rental.Material] { return s.materials }
