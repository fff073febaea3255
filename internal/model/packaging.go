package model

// Packaging describes the container a product ships in.
type Packaging struct {
	material string
	volume   float64
}

// NewPackaging creates a packaging description. No validation is applied.
func NewPackaging(material string, volume float64) Packaging {
	return Packaging{material: material, volume: volume}
}

// Material returns the packaging material.
func (p Packaging) Material() string {
	return p.material
}

// Volume returns the packaging volume in millilitres.
func (p Packaging) Volume() float64 {
	return p.volume
}

// String renders the packaging as Packaging{material='<material>', volume=<volume>}.
func (p Packaging) String() string {
	return "Packaging{material='" + p.material + "', volume=" + FormatDecimal(p.volume) + "}"
}
