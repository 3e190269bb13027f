package usecase

import (
	"context"

	"github.com/pepperoni-tatar/pagegen/internal/adapters/fs"
	"github.com/pepperoni-tatar/pagegen/internal/core"
)

type CatalogSource interface {
	Fetch(ctx context.Context) ([]core.Product, error)
}

type PageRenderer interface {
	Render(p core.Product, loc core.Locale) (string, error)
}

type CLIOutput interface {
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
}

type FileSystem = fs.FileSystem
