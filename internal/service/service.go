package service

import (
	"context"
	"errors"

	"coffee-van/internal/inventory"
	"coffee-van/internal/model"
)

// ErrAlreadyLoaded is returned when the data file has already been loaded
// into the van during this session.
var ErrAlreadyLoaded = errors.New("data has already been loaded from the file")

// VanService defines the operations the console performs on the van.
type VanService interface {
	// AddProduct puts a product into the van.
	AddProduct(p model.Product) error

	// RemoveByID removes a product and rewrites the data file on success.
	RemoveByID(ctx context.Context, id string) (bool, error)

	// Products returns the cargo in its current order.
	Products() []model.Product

	// SortByPriceToWeightRatio sorts the cargo and returns it.
	SortByPriceToWeightRatio() []model.Product

	// FindByQuality returns products whose scores fall within r.
	FindByQuality(r model.QualityRange) []model.Product

	// Summary returns limits, totals and remaining capacity.
	Summary() inventory.Summary

	// LoadFromFile adds every product in the data file to the van.
	// It may succeed only once per service.
	LoadFromFile(ctx context.Context) (int, error)

	// SaveToFile appends the current cargo to the data file.
	SaveToFile(ctx context.Context) error
}
