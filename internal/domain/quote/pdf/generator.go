package pdf

import (
	"errors"

	"doce-festa/go_backend/internal/domain/quote"
)

var ErrRender = errors.New("render quote")

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}
