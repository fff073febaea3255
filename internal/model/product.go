package model

import (
	"fmt"
	"strings"
)

// Product is a coffee item carried by the van.
// It is implemented only by Bean, Ground and Instant.
type Product interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Common returns the fields shared by every variant.
	Common() Details

	// PriceToWeightRatio returns price divided by weight.
	PriceToWeightRatio() float64

	// TotalVolume returns the packaging volume.
	TotalVolume() float64

	// String returns a human-readable description.
	String() string

	isProduct()
}

// Details holds the fields every product variant shares.
type Details struct {
	ID        string
	Name      string
	Weight    float64 // grams
	Price     float64
	Quality   QualityScore
	Packaging Packaging
}

// Common returns a copy of d.
func (d Details) Common() Details {
	return d
}

// PriceToWeightRatio returns price per gram. A zero weight is not guarded.
func (d Details) PriceToWeightRatio() float64 {
	return d.Price / d.Weight
}

// TotalVolume returns the packaging volume.
func (d Details) TotalVolume() float64 {
	return d.Packaging.Volume()
}

func (d Details) withID(ids IDGenerator) Details {
	if d.ID != "" {
		return d
	}
	if ids == nil {
		ids = UUIDGenerator{}
	}
	d.ID = ids.NewID()
	return d
}

// Bean is whole-bean coffee.
type Bean struct {
	Details
	Origin string
	Roast  RoastLevel
}

// Ground is ground coffee.
type Ground struct {
	Details
	Grind GrindSize
}

// Instant is instant coffee.
type Instant struct {
	Details
	Concentration ConcentrationLevel
}

// NewBean creates a bean product, drawing an ID from ids when d.ID is empty.
func NewBean(ids IDGenerator, d Details, origin string, roast RoastLevel) Bean {
	return Bean{Details: d.withID(ids), Origin: origin, Roast: roast}
}

// NewGround creates a ground product, drawing an ID from ids when d.ID is empty.
func NewGround(ids IDGenerator, d Details, grind GrindSize) Ground {
	return Ground{Details: d.withID(ids), Grind: grind}
}

// NewInstant creates an instant product, drawing an ID from ids when d.ID is empty.
func NewInstant(ids IDGenerator, d Details, concentration ConcentrationLevel) Instant {
	return Instant{Details: d.withID(ids), Concentration: concentration}
}

// Value returns the value variant behind p. Pointers to Bean, Ground and
// Instant are dereferenced. A nil p, or a nil pointer, yields ErrNilProduct.
func Value(p Product) (Product, error) {
	switch v := p.(type) {
	case nil:
		return nil, ErrNilProduct
	case Bean, Ground, Instant:
		return v, nil
	case *Bean:
		if v == nil {
			return nil, ErrNilProduct
		}
		return *v, nil
	case *Ground:
		if v == nil {
			return nil, ErrNilProduct
		}
		return *v, nil
	case *Instant:
		if v == nil {
			return nil, ErrNilProduct
		}
		return *v, nil
	}
	return nil, ErrUnsupportedVariant
}

func (Bean) Kind() Kind { return KindBean }
func (Ground) Kind() Kind { return KindGround }
func (Instant) Kind() Kind { return KindInstant }

func (Bean) isProduct() {}
func (Ground) isProduct() {}
func (Instant) isProduct() {}

func (b Bean) String() string {
	return describe("BeanCoffee", b.Details,
		"Roast Level="+string(b.Roast),
		"Origin='"+b.Origin+"'")
}

func (g Ground) String() string {
	return describe("GroundCoffee", g.Details, "Grind Size="+string(g.Grind))
}

func (i Instant) String() string {
	return describe("InstantCoffee", i.Details, "Concentration Level="+string(i.Concentration))
}

func describe(label string, d Details, extras ...string) string {
	fields := []string{
		fmt.Sprintf("ID='%s'", d.ID),
		fmt.Sprintf("Name='%s'", d.Name),
		"Weight=" + FormatDecimal(d.Weight) + "g",
		"Price=" + FormatDecimal(d.Price) + "$",
	}
	fields = append(fields, extras...)
	fields = append(fields,
		"Aroma="+FormatDecimal(d.Quality.Aroma()),
		"Taste="+FormatDecimal(d.Quality.Taste()),
		"Freshness="+FormatDecimal(d.Quality.Freshness()),
		d.Packaging.String(),
	)
	return label + " {" + strings.Join(fields, ", ") + "}"
}
