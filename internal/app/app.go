package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"doce-festa/go_backend/internal/app/config"
	apphttp "doce-festa/go_backend/internal/app/http"
	"doce-festa/go_backend/internal/app/http/handlers"
	"doce-festa/go_backend/internal/domain/quote"
	pdfgen "doce-festa/go_backend/internal/domain/quote/pdf/gofpdf"
	"doce-festa/go_backend/internal/domain/rental"
	"doce-festa/go_backend/internal/infra/db/postgres"
	"doce-festa/go_backend/internal/infra/store/csvstore"
	"doce-festa/go_backend/internal/pkg/logger"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(cfg.LogMode, cfg.LogRedact)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	h := handlers.New(store, quote.NewAssembler(store), pdfgen.New(cfg.Branding, log), log)
	router := apphttp.NewRouter(cfg, h, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr, "store", cfg.StoreDriver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.Config, log *logger.Logger) (rental.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("record store ready", "driver", cfg.StoreDriver)
		return postgres.NewStore(db), db.Close, nil
	default:
		s := csvstore.New(cfg.DataDir, cfg.ClientsFile, cfg.MaterialsFile)
		log.Info("record store ready", "driver", cfg.StoreDriver, "dir", cfg.DataDir)
		return s, func() {}, nil
	}
}
