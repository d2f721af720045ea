package handlers

import (
	"doce-festa/go_backend/internal/domain/quote"
	"doce-festa/go_backend/internal/domain/quote/pdf"
	"doce-festa/go_backend/internal/domain/rental"
	"doce-festa/go_backend/internal/pkg/logger"
)

type Handlers struct {
	Log       *logger.Logger
	Store     rental.Store
	Clients   *rental.ClientRegistrar
	Materials *rental.MaterialRegistrar
	Quotes    *quote.Assembler
	PDF       pdf.Generator
}

func New(store rental.Store, quotes *quote.Assembler, gen pdf.Generator, log *logger.Logger) *Handlers {
	return &Handlers{
		Log:       log,
		Store:     store,
		Clients:   rental.NewClientRegistrar(store.Clients()),
		Materials: rental.NewMaterialRegistrar(store.Materials()),
		Quotes:    quotes,
		PDF:       gen,
	}
}
