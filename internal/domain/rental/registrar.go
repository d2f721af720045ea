package rental

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type ClientRegistrar struct {
	clients Collection[Client]
}

func NewClientRegistrar(clients Collection[Client]) *ClientRegistrar {
	return &ClientRegistrar{clients: clients}
}

// Register validates and appends a client. Nothing is written when
// validation fails.
func (r *ClientRegistrar) Register(ctx context.Context, name, phone, email string) (Client, error) {
	c, err := NewClient(name, phone, email)
	if err != nil {
		return Client{}, err
	}
	if err := r.clients.AppendAndSave(ctx, c); err != nil {
		return Client{}, fmt.Errorf("save client: %w", err)
	}
	return c, nil
}

type MaterialRegistrar struct {
	materials Collection[Material]
}

func NewMaterialRegistrar(materials Collection[Material]) *MaterialRegistrar {
	return &MaterialRegistrar{materials: materials}
}

func (r *MaterialRegistrar) Register(ctx context.Context, category Category, name string, quantity int, unitPrice decimal.Decimal) (Material, error) {
	m, err := NewMaterial(category, name, quantity, unitPrice)
	if err != nil {
		return Material{}, err
	}
	if err := r.materials.AppendAndSave(ctx, m); err != nil {
		return Material{}, fmt.Errorf("save material: %w", err)
	}
	return m, nil
}
