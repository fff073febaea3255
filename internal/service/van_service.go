package service

import (
	"context"
	"fmt"

	"coffee-van/internal/inventory"
	"coffee-van/internal/model"
	"coffee-van/internal/storage"

	"github.com/rs/zerolog"
)

// vanService implements VanService.
type vanService struct {
	van    *inventory.Van
	store  storage.Service
	loaded bool
	logger zerolog.Logger
}

// NewVanService creates a new van service.
func NewVanService(van *inventory.Van, store storage.Service, logger zerolog.Logger) VanService {
	return &vanService{
		van:    van,
		store:  store,
		logger: logger.With().Str("service", "van").Logger(),
	}
}

// AddProduct puts a product into the van.
func (s *vanService) AddProduct(p model.Product) error {
	if err := s.van.Add(p); err != nil {
		s.logger.Warn().Err(err).Msg("rejected product")
		return err
	}

	d := p.Common()
	s.logger.Debug().
		Str("product_id", d.ID).
		Str("kind", string(p.Kind())).
		Float64("remaining_volume", s.van.RemainingVolume()).
		Float64("remaining_budget", s.van.RemainingBudget()).
		Msg("product loaded into van")

	return nil
}

// RemoveByID removes a product and, when one was removed, rewrites the data
// file so it mirrors the cargo.
func (s *vanService) RemoveByID(ctx context.Context, id string) (bool, error) {
	if !s.van.RemoveByID(id) {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return false, nil
	}

	if err := s.store.Save(ctx, s.van.Products(), false); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to rewrite data file after removal")
		return true, fmt.Errorf("failed to rewrite data file: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product removed")
	return true, nil
}

// Products returns the cargo in its current order.
func (s *vanService) Products() []model.Product {
	return s.van.Products()
}

// SortByPriceToWeightRatio sorts the cargo and returns it.
func (s *vanService) SortByPriceToWeightRatio() []model.Product {
	s.van.SortByPriceToWeightRatio()
	return s.van.Products()
}

// FindByQuality returns products whose scores fall within r.
func (s *vanService) FindByQuality(r model.QualityRange) []model.Product {
	found := s.van.FindByQuality(r)

	s.logger.Debug().
		Int("found", len(found)).
		Int("total", s.van.Len()).
		Msg("searched by quality")

	return found
}

// Summary returns limits, totals and remaining capacity.
func (s *vanService) Summary() inventory.Summary {
	return s.van.Summary()
}

// LoadFromFile adds every product in the data file to the van.
func (s *vanService) LoadFromFile(ctx context.Context) (int, error) {
	if s.loaded {
		s.logger.Warn().Msg("data file already loaded")
		return 0, ErrAlreadyLoaded
	}

	products, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load data file")
		return 0, fmt.Errorf("failed to load products: %w", err)
	}

	for _, p := range products {
		if err := s.van.Add(p); err != nil {
			return 0, fmt.Errorf("failed to add loaded product: %w", err)
		}
	}
	s.loaded = true

	s.logger.Info().
		Int("count", len(products)).
		Str("file", s.store.Path()).
		Msg("products loaded from file")

	return len(products), nil
}

// SaveToFile appends the current cargo to the data file.
func (s *vanService) SaveToFile(ctx context.Context) error {
	products := s.van.Products()
	s.logger.Info().Int("count", len(products)).Msg("saving cargo to file")

	if err := s.store.Save(ctx, products, true); err != nil {
		s.logger.Error().Err(err).Msg("failed to save cargo")
		return fmt.Errorf("failed to save products: %w", err)
	}

	return nil
}
