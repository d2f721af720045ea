package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"doce-festa/go_backend/internal/domain/rental"
)

const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS materials (
	id       BIGSERIAL PRIMARY KEY,
	category TEXT NOT NULL,
	name     TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price    NUMERIC NOT NULL
);
ALTER TABLE materials ALTER COLUMN price TYPE NUMERIC;`

// Migrate creates the client and material tables when missing.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Store exposes the tables as append-only collections ordered by id.
type Store struct {
	db *DB
}

var _ rental.Store = (*Store)(nil)

func NewStore(db *DB) *Store { return &Store{db: db} }

func (s *Store) Clients() rental.Collection[rental.Client]     { return clientTable{s.db} }
func (s *Store) Materials() rental.Collection[rental.Material] { return materialTable{s.db} }

type clientTable struct{ db *DB }

func (t clientTable) Load(ctx context.Context) ([]rental.Client, error) {
	rows, err := t.db.Pool.Query(ctx, `SELECT name, phone, email FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	out := []rental.Client{}
	for rows.Next() {
		var c rental.Client
		if err := rows.Scan(&c.Name, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (t clientTable) AppendAndSave(ctx context.Context, c rental.Client) error {
	_, err := t.db.Pool.Exec(ctx,
		`INSERT INTO clients (name, phone, email) VALUES ($1, $2, $3)`,
		c.Name, c.Phone, c.Email)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

type materialTable struct{ db *DB }

func (t materialTable) Load(ctx context.Context) ([]rental.Material, error) {
	rows, err := t.db.Pool.Query(ctx,
		`SELECT category, name, quantity, price::text FROM materials ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	out := []rental.Material{}
	for rows.Next() {
		var (
			m        rental.Material
			category string
			price    string
		)
		if err := rows.Scan(&category, &m.Name, &m.QuantityAvailable, &price); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		if m.Category, err = rental.ParseCategory(category); err != nil {
			return nil, fmt.Errorf("material %q: %w", m.Name, err)
		}
		if m.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("material %q: invalid price %q", m.Name, price)
		}
		if err := m.CheckStock(); err != nil {
			return nil, fmt.Errorf("materials row: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (t materialTable) AppendAndSave(ctx context.Context, m rental.Material) error {
	_, err := t.db.Pool.Exec(ctx,
		`INSERT INTO materials (category, name, quantity, price) VALUES ($1, $2, $3, $4::numeric)`,
		m.Category.String(), m.Name, m.QuantityAvailable, m.UnitPrice.String())
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}
