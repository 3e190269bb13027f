package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pepperoni-tatar/pagegen/internal/adapters/cli"
	"github.com/pepperoni-tatar/pagegen/internal/core"
)

type GenerateInput struct {
	OutputDir string
	Locales   []core.Locale
}

type GenerateOutput struct {
	Pages []cli.LocaleCount
	Error error
}

// Total is the number of files written across all locales.
func (o GenerateOutput) Total() int {
	total := 0
	for _, p := range o.Pages {
		total += p.Pages
	}
	return total
}

type GenerateService struct {
	catalog  CatalogSource
	renderer PageRenderer
	fs       FileSystem
	cli      CLIOutput
	log      zerolog.Logger
}

func NewGenerateService(catalog CatalogSource, renderer PageRenderer, fs FileSystem, cli CLIOutput, log zerolog.Logger) *GenerateService {
	return &GenerateService{
		catalog:  catalog,
		renderer: renderer,
		fs:       fs,
		cli:      cli,
		log:      log,
	}
}

// Generate fetches the catalog and writes one page per product and locale.
// The first failure aborts the run; pages written before it stay on disk.
func (s *GenerateService) Generate(ctx context.Context, input GenerateInput) GenerateOutput {
	report := cli.NewGenerateReport(s.cli)

	output := s.generate(ctx, input, report)
	if output.Error != nil {
		report.Fail(output.Error)
	}
	report.Render()

	s.log.Debug().
		Int("pages", output.Total()).
		Dur("elapsed", report.Elapsed()).
		Err(output.Error).
		Msg("generation finished")

	return output
}

func (s *GenerateService) generate(ctx context.Context, input GenerateInput, report *cli.GenerateReport) GenerateOutput {
	locales := input.Locales
	if len(locales) == 0 {
		locales = []core.Locale{core.Russian}
	}

	products, err := s.catalog.Fetch(ctx)
	if err != nil {
		return GenerateOutput{Error: err}
	}
	if len(products) == 0 {
		s.cli.PrintWarning("Catalog returned no products")
	}

	dirs := make([]string, len(locales))
	for i, loc := range locales {
		dirs[i] = filepath.Join(input.OutputDir, filepath.FromSlash(loc.Dir()))
		if err := s.fs.MkdirAll(dirs[i], 0o755); err != nil {
			return GenerateOutput{Error: fmt.Errorf("failed to create output directory %s: %w", dirs[i], err)}
		}
	}

	counts := make([]int, len(locales))
	for idx, p := range products {
		if err := ctx.Err(); err != nil {
			return GenerateOutput{Error: err}
		}
		for i, loc := range locales {
			if err := s.writePage(p, loc, dirs[i]); err != nil {
				return GenerateOutput{Error: fmt.Errorf("product #%d (%s): %w", idx, p.SKU, err)}
			}
			counts[i]++
		}
	}

	for i, loc := range locales {
		report.AddLocale(loc.Code(), dirs[i], counts[i])
	}
	return GenerateOutput{Pages: report.Counts()}
}

func (s *GenerateService) writePage(p core.Product, loc core.Locale, dir string) error {
	html, err := s.renderer.Render(p, loc)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, core.PageFileName(p.Slug()))
	if err := s.fs.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.log.Debug().Str("sku", p.SKU.String()).Str("lang", loc.Code()).Str("path", path).Msg("page written")
	return nil
}
