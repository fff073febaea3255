package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"coffee-van/internal/codec"
	"coffee-van/internal/model"
	"coffee-van/internal/storage"

	"github.com/rs/zerolog"
)

// Command generate_sample_cargo writes sample data files for manual testing.
// data/coffee_data.txt is plain text, data/coffee_data.txt.gz holds the same
// products gzip-compressed. Both can be passed to coffeevan --data-file.
func main() {
	dataDir := "data"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products, err := sampleProducts()
	if err != nil {
		log.Fatalf("Failed to build sample products: %v", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	c := codec.New(codec.NewLogSink(logger))

	for _, filename := range []string{"coffee_data.txt", "coffee_data.txt.gz"} {
		filePath := filepath.Join(dataDir, filename)

		store := storage.NewFileService(filePath, c, logger)
		if err := store.Save(context.Background(), products, false); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d products\n", filePath, len(products))
	}

	fmt.Println("\nSample cargo files created successfully!")
	fmt.Println("\nContents:")
	for _, p := range products {
		fmt.Printf("  - %s\n", p)
	}
}

func sampleProducts() ([]model.Product, error) {
	type sample struct {
		id, name                string
		weight, price           float64
		aroma, taste, freshness float64
		material                string
		volume                  float64
		build                   func(d model.Details) model.Product
	}

	samples := []sample{
		{"B001", "Arabica", 250, 15.99, 8, 9, 7, "Paper", 250, func(d model.Details) model.Product {
			return model.NewBean(nil, d, "Brazil", model.RoastMedium)
		}},
		{"B002", "Yirgacheffe", 500, 27.5, 9.5, 9, 8, "Foil", 400, func(d model.Details) model.Product {
			return model.NewBean(nil, d, "Ethiopia", model.RoastLight)
		}},
		{"G001", "Robusta", 100, 5.99, 7, 6, 8, "Plastic", 100, func(d model.Details) model.Product {
			return model.NewGround(nil, d, model.GrindCoarse)
		}},
		{"G002", "Espresso Blend", 250, 9.49, 8.5, 8, 6, "Paper", 200, func(d model.Details) model.Product {
			return model.NewGround(nil, d, model.GrindFine)
		}},
		{"I001", "Gold Roast", 200, 7.25, 5, 6, 9, "Glass", 150, func(d model.Details) model.Product {
			return model.NewInstant(nil, d, model.ConcentrationHigh)
		}},
	}

	products := make([]model.Product, 0, len(samples))
	for _, s := range samples {
		q, err := model.NewQualityScore(s.aroma, s.taste, s.freshness)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %s: %w", s.id, err)
		}
		products = append(products, s.build(model.Details{
			ID:        s.id,
			Name:      s.name,
			Weight:    s.weight,
			Price:     s.price,
			Quality:   q,
			Packaging: model.NewPackaging(s.material, s.volume),
		}))
	}
	return products, nil
}
