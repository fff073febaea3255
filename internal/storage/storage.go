package storage

import (
	"context"

	"coffee-van/internal/model"
)

// Service persists products to a line-oriented data file.
type Service interface {
	// Load reads every line of the data file and returns the products that
	// decode successfully, in file order. Lines that fail to decode are
	// reported to the codec's diagnostic sink and skipped.
	Load(ctx context.Context) ([]model.Product, error)

	// Save writes one line per product. When appendMode is true the lines
	// are appended to the existing file; otherwise the file is replaced.
	Save(ctx context.Context, products []model.Product, appendMode bool) error

	// Path returns the data file location.
	Path() string
}
