package model

import "strings"

// Kind identifies a product variant. Its value is the type tag written to storage.
type Kind string

const (
	KindBean    Kind = "BEAN"
	KindGround  Kind = "GROUND"
	KindInstant Kind = "INSTANT"
)

// RoastLevel is the roast level of whole beans.
type RoastLevel string

const (
	RoastLight  RoastLevel = "LIGHT"
	RoastMedium RoastLevel = "MEDIUM"
	RoastDark   RoastLevel = "DARK"
)

// GrindSize is the grind size of ground coffee.
type GrindSize string

const (
	GrindFine   GrindSize = "FINE"
	GrindMedium GrindSize = "MEDIUM"
	GrindCoarse GrindSize = "COARSE"
)

// ConcentrationLevel is the concentration of instant coffee.
type ConcentrationLevel string

const (
	ConcentrationLow    ConcentrationLevel = "LOW"
	ConcentrationMedium ConcentrationLevel = "MEDIUM"
	ConcentrationHigh   ConcentrationLevel = "HIGH"
)

// Kinds lists every product kind in menu order.
var Kinds = []Kind{KindBean, KindGround, KindInstant}

// RoastLevels lists every roast level.
var RoastLevels = []RoastLevel{RoastLight, RoastMedium, RoastDark}

// GrindSizes lists every grind size.
var GrindSizes = []GrindSize{GrindFine, GrindMedium, GrindCoarse}

// ConcentrationLevels lists every concentration level.
var ConcentrationLevels = []ConcentrationLevel{ConcentrationLow, ConcentrationMedium, ConcentrationHigh}

// ParseKind parses a kind case-insensitively.
func ParseKind(s string) (Kind, error) {
	return parseEnum(s, Kinds, ErrUnknownKind)
}

// ParseRoastLevel parses a roast level case-insensitively.
func ParseRoastLevel(s string) (RoastLevel, error) {
	return parseEnum(s, RoastLevels, ErrInvalidRoast)
}

// ParseGrindSize parses a grind size case-insensitively.
func ParseGrindSize(s string) (GrindSize, error) {
	return parseEnum(s, GrindSizes, ErrInvalidGrind)
}

// ParseConcentrationLevel parses a concentration level case-insensitively.
func ParseConcentrationLevel(s string) (ConcentrationLevel, error) {
	return parseEnum(s, ConcentrationLevels, ErrInvalidConcentrate)
}

func parseEnum[T ~string](s string, values []T, notFound *DomainError) (T, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, v := range values {
		if string(v) == upper {
			return v, nil
		}
	}
	var zero T
	return zero, notFound
}
