package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pepperoni-tatar/pagegen/internal/core"
)

const (
	EnvCatalogURL   = "PAGEGEN_CATALOG_URL"
	EnvOutputDir    = "PAGEGEN_OUTPUT_DIR"
	EnvLocales      = "PAGEGEN_LOCALES"
	EnvFetchTimeout = "PAGEGEN_FETCH_TIMEOUT"
	EnvLogLevel     = "PAGEGEN_LOG_LEVEL"
)

type Config struct {
	CatalogURL   string
	OutputDir    string
	Locales      []core.Locale
	FetchTimeout time.Duration
	LogLevel     string
}

func Default() Config {
	return Config{
		CatalogURL:   "https://pepperoni.tatar/api/products",
		OutputDir:    "public",
		Locales:      []core.Locale{core.Russian},
		FetchTimeout: 30 * time.Second,
		LogLevel:     "warn",
	}
}

// Load reads the given dotenv files (".env" when none are given) into the
// process environment and builds the configuration from it. Missing files
// are skipped; variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		value, ok := lookup(key)
		value = strings.TrimSpace(value)
		return value, ok && value != ""
	}

	if v, ok := get(EnvCatalogURL); ok {
		cfg.CatalogURL = v
	}
	if v, ok := get(EnvOutputDir); ok {
		cfg.OutputDir = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvFetchTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvFetchTimeout, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid %s: must be positive", EnvFetchTimeout)
		}
		cfg.FetchTimeout = d
	}
	if v, ok := get(EnvLocales); ok {
		locales, err := parseLocales(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLocales, err)
		}
		cfg.Locales = locales
	}

	return cfg, nil
}

func parseLocales(value string) ([]core.Locale, error) {
	var locales []core.Locale
	seen := make(map[string]bool)
	for _, code := range strings.Split(value, ",") {
		if strings.TrimSpace(code) == "" {
			continue
		}
		loc, err := core.ParseLocale(code)
		if err != nil {
			return nil, err
		}
		if seen[loc.Code()] {
			continue
		}
		seen[loc.Code()] = true
		locales = append(locales, loc)
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("no locales given")
	}
	return locales, nil
}
