package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"doce-festa/go_backend/internal/domain/quote/pdf"
)

const (
	DriverCSV      = "csv"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTPAddr      string
	StoreDriver   string
	DataDir       string
	ClientsFile   string
	MaterialsFile string
	DatabaseURL   string
	InternalToken string
	LogMode       string
	LogRedact     bool
	Branding      pdf.Branding
}

// Load reads the environment, after applying a .env file in the working
// directory when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	def := pdf.DefaultBranding()
	cfg := Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		StoreDriver:   strings.ToLower(env("STORE_DRIVER", DriverCSV)),
		DataDir:       env("DATA_DIR", "."),
		ClientsFile:   env("CLIENTS_FILE", "clients.csv"),
		MaterialsFile: env("MATERIALS_FILE", "materials.csv"),
		DatabaseURL:   env("DATABASE_URL", ""),
		InternalToken: env("INTERNAL_TOKEN", ""),
		LogMode:       env("LOG_MODE", "dev"),
		Branding: pdf.Branding{
			Title:    env("QUOTE_TITLE", def.Title),
			Company:  env("COMPANY_NAME", def.Company),
			Phone:    env("CONTACT_PHONE", def.Phone),
			Hours:    env("CONTACT_HOURS", def.Hours),
			PIX:      env("CONTACT_PIX", def.PIX),
			LogoPath: env("LOGO_PATH", def.LogoPath),
		},
	}

	redact, err := strconv.ParseBool(env("LOG_REDACT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_REDACT: %w", err)
	}
	cfg.LogRedact = redact

	switch cfg.StoreDriver {
	case DriverCSV:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("missing env DATABASE_URL for store driver %q", cfg.StoreDriver)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
