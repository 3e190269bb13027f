package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pepperoni-tatar/pagegen/internal/adapters/cli"
	"github.com/pepperoni-tatar/pagegen/internal/adapters/fs"
	"github.com/pepperoni-tatar/pagegen/internal/adapters/logging"
	"github.com/pepperoni-tatar/pagegen/internal/catalog"
	"github.com/pepperoni-tatar/pagegen/internal/config"
	"github.com/pepperoni-tatar/pagegen/internal/core"
	"github.com/pepperoni-tatar/pagegen/internal/page"
	"github.com/pepperoni-tatar/pagegen/internal/usecase"
)

func main() {
	output := cli.NewOutput()

	cfg, err := config.Load()
	if err != nil {
		output.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := catalog.NewClient(cfg.CatalogURL,
		catalog.WithTimeout(cfg.FetchTimeout),
		catalog.WithLogger(log),
	)
	renderer := page.NewRenderer(core.DefaultSite, core.DefaultCurrencySymbols)

	service := usecase.NewGenerateService(client, renderer, fs.NewOSFileSystem(), output, log)

	result := service.Generate(ctx, usecase.GenerateInput{
		OutputDir: cfg.OutputDir,
		Locales:   cfg.Locales,
	})
	if result.Error != nil {
		stop()
		os.Exit(1)
	}
}
