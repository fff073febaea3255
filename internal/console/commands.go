package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coffee-van/internal/codec"
	"coffee-van/internal/inventory"
	"coffee-van/internal/model"
	"coffee-van/internal/service"
)

// loadVan reads products from the user until they choose to stop or the van
// runs out of volume or budget.
func (m *Menu) loadVan(ctx context.Context) error {
	for {
		s := m.svc.Summary()
		if s.RemainingVolume <= 0 {
			m.prompt.println("There is no volume in the van!")
			return nil
		}
		if s.RemainingBudget <= 0 {
			m.prompt.println("There is no budget left!")
			return nil
		}

		p, err := m.readProduct(ctx, s)
		if err != nil {
			return err
		}
		if err := m.svc.AddProduct(p); err != nil {
			return fmt.Errorf("failed to load product: %w", err)
		}
		m.prompt.println("Item has been successfully loaded!")

		answer, err := m.prompt.readLine(ctx, "Want to stop (y/n)? ")
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(answer), "y") {
			return nil
		}
	}
}

func (m *Menu) readProduct(ctx context.Context, s inventory.Summary) (model.Product, error) {
	p := m.prompt

	name, err := p.readText(ctx, "Enter coffee name: ", "Name cannot be empty", false)
	if err != nil {
		return nil, err
	}

	weight, err := p.readFloat(ctx, "Enter weight (>0): ", positive("Weight"))
	if err != nil {
		return nil, err
	}

	price, err := p.readFloat(ctx, "Enter price (>0): ", func(v float64) string {
		switch {
		case v <= 0:
			return "Price must be positive!"
		case v > s.RemainingBudget:
			return "There is not enough budget to afford it!"
		}
		return ""
	})
	if err != nil {
		return nil, err
	}

	kind, err := readChoice(ctx, p, "Type in coffee type (bean | ground | instant): ",
		"Invalid type! Please enter bean, ground or instant.", model.ParseKind)
	if err != nil {
		return nil, err
	}

	var (
		origin        string
		roast         model.RoastLevel
		grind         model.GrindSize
		concentration model.ConcentrationLevel
	)
	switch kind {
	case model.KindBean:
		origin, roast, err = m.readOriginAndRoast(ctx)
	case model.KindGround:
		grind, err = readChoice(ctx, p, "Enter grind size (FINE/MEDIUM/COARSE): ",
			"Invalid grind size! Try again.", model.ParseGrindSize)
	case model.KindInstant:
		concentration, err = readChoice(ctx, p, "Enter concentration level (LOW/MEDIUM/HIGH): ",
			"Invalid concentration level! Try again.", model.ParseConcentrationLevel)
	}
	if err != nil {
		return nil, err
	}

	aroma, err := p.readScore(ctx, "Aroma score (1-10): ")
	if err != nil {
		return nil, err
	}
	taste, err := p.readScore(ctx, "Taste score (1-10): ")
	if err != nil {
		return nil, err
	}
	freshness, err := p.readScore(ctx, "Freshness score (1-10): ")
	if err != nil {
		return nil, err
	}

	material, err := p.readText(ctx, "Enter packaging material: ", "", true)
	if err != nil {
		return nil, err
	}

	volume, err := p.readFloat(ctx, "Enter packaging volume (>0): ", func(v float64) string {
		switch {
		case v <= 0:
			return "Volume must be positive!"
		case v > s.RemainingVolume:
			return "There is not enough volume in the van!"
		}
		return ""
	})
	if err != nil {
		return nil, err
	}

	quality, err := model.NewQualityScore(aroma, taste, freshness)
	if err != nil {
		return nil, err
	}

	d := model.Details{
		Name:      name,
		Weight:    weight,
		Price:     price,
		Quality:   quality,
		Packaging: model.NewPackaging(material, volume),
	}

	switch kind {
	case model.KindBean:
		return model.NewBean(m.ids, d, origin, roast), nil
	case model.KindGround:
		return model.NewGround(m.ids, d, grind), nil
	default:
		return model.NewInstant(m.ids, d, concentration), nil
	}
}

func (m *Menu) readOriginAndRoast(ctx context.Context) (string, model.RoastLevel, error) {
	for {
		line, err := m.prompt.readLine(ctx, "Enter origin and roast level <origin roastLevel(LIGHT/MEDIUM/DARK)>: ")
		if err != nil {
			return "", "", err
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			m.prompt.println("Please enter both origin and roast level!")
			continue
		}
		if strings.Contains(parts[0], codec.Separator) {
			m.prompt.printf("Text must not contain '%s'!\n", codec.Separator)
			continue
		}

		roast, err := model.ParseRoastLevel(parts[1])
		if err != nil {
			m.prompt.println("Invalid roast level! Try again.")
			continue
		}
		return parts[0], roast, nil
	}
}

func (m *Menu) showCargo(_ context.Context) error {
	s := m.svc.Summary()

	m.prompt.println("CoffeeVan {")
	m.prompt.printf("  Max Volume: %s ml\n", model.FormatDecimal(s.MaxVolume))
	m.prompt.printf("  Max Budget: %s $\n", model.FormatDecimal(s.MaxBudget))
	m.prompt.printf("  Current Total Volume: %s ml\n", model.FormatDecimal(s.TotalVolume))
	m.prompt.printf("  Current Total Cost: %s $\n", model.FormatDecimal(s.TotalCost))
	m.prompt.println("  Coffee List:")

	products := m.svc.Products()
	if len(products) == 0 {
		m.prompt.println("    [No coffee in the van]")
	}
	for _, p := range products {
		m.prompt.println("    - " + p.String())
	}
	m.prompt.println("}")
	return nil
}

func (m *Menu) sortCargo(_ context.Context) error {
	if len(m.svc.Products()) == 0 {
		m.prompt.println("There is no coffee yet!")
		return nil
	}

	m.prompt.println("Sorted cargo:")
	for _, p := range m.svc.SortByPriceToWeightRatio() {
		m.prompt.println(p.String())
	}
	return nil
}

func (m *Menu) removeByID(ctx context.Context) error {
	id, err := m.prompt.readText(ctx, "Type in ID of a product you want to remove: ", "ID cannot be empty! Try again.", false)
	if err != nil {
		return err
	}

	removed, err := m.svc.RemoveByID(ctx, id)
	if !removed {
		m.prompt.println("Item was not found!")
		return err
	}
	m.prompt.println("Item was successfully removed!")
	return err
}

func (m *Menu) findByQuality(ctx context.Context) error {
	if len(m.svc.Products()) == 0 {
		m.prompt.println("There is no coffee yet!")
		return nil
	}

	var (
		r   model.QualityRange
		err error
	)
	if r.MinAroma, r.MaxAroma, err = m.readBounds(ctx, "aroma"); err != nil {
		return err
	}
	if r.MinTaste, r.MaxTaste, err = m.readBounds(ctx, "taste"); err != nil {
		return err
	}
	if r.MinFreshness, r.MaxFreshness, err = m.readBounds(ctx, "freshness"); err != nil {
		return err
	}

	found := m.svc.FindByQuality(r)
	if len(found) == 0 {
		m.prompt.println("No coffee found matching these quality parameters.")
		return nil
	}

	m.prompt.println("Found items:")
	for _, p := range found {
		m.prompt.println(p.String())
	}
	return nil
}

// readBounds reads a min/max pair for one score, repeating until min <= max.
func (m *Menu) readBounds(ctx context.Context, score string) (float64, float64, error) {
	for {
		lo, err := m.prompt.readScore(ctx, "Enter minimum " + score + " (1-10): ")
		if err != nil {
			return 0, 0, err
		}
		hi, err := m.prompt.readScore(ctx, "Enter maximum " + score + " (1-10): ")
		if err != nil {
			return 0, 0, err
		}
		if lo <= hi {
			return lo, hi, nil
		}
		m.prompt.println("Minimum cannot be greater than maximum. Try again.")
	}
}

func (m *Menu) remainingBudget(_ context.Context) error {
	m.prompt.printf("Remaining budget is %s\n", model.FormatDecimal(m.svc.Summary().RemainingBudget))
	return nil
}

func (m *Menu) remainingVolume(_ context.Context) error {
	m.prompt.printf("Remaining volume is %s\n", model.FormatDecimal(m.svc.Summary().RemainingVolume))
	return nil
}

func (m *Menu) totalPrice(_ context.Context) error {
	m.prompt.printf("Total price is %s\n", model.FormatDecimal(m.svc.Summary().TotalCost))
	return nil
}

func (m *Menu) loadFromFile(ctx context.Context) error {
	n, err := m.svc.LoadFromFile(ctx)
	if errors.Is(err, service.ErrAlreadyLoaded) {
		m.prompt.println("You've already loaded data from the file!")
		return nil
	}
	if err != nil {
		return err
	}

	m.prompt.printf("Successfully received %d items!\n", n)
	return nil
}

func (m *Menu) saveToFile(ctx context.Context) error {
	if err := m.svc.SaveToFile(ctx); err != nil {
		return err
	}

	m.prompt.println("Successfully saved to file!")
	return nil
}
