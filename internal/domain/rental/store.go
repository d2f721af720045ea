package rental

import "context"

// Collection is an append-only record log. Load returns records in
// insertion order and an empty slice when nothing was stored yet.
// AppendAndSave persists the whole collection including the new record.
type Collection[T any] interface {
	Load(ctx context.Context) ([]T, error)
	AppendAndSave(ctx context.Context, record T) error
}

type Store interface {
	Clients() Collection[Client]
	Materials() Collection[Material]
}

// FirstClient returns the first client named name. Duplicate names are
// allowed in the store; the earliest record wins.
func FirstClient(clients []Client, name string) (Client, bool) {
	for _, c := range clients {
		if c.Name == name {
			return c, true
		}
	}
	return Client{}, false
}

// FirstMaterial applies the same first-match policy as FirstClient.
func FirstMaterial(materials []Material, name string) (Material, bool) {
	for _, m := range materials {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}
