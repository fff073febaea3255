package model

import "fmt"

// MaxScore is the highest value any quality score may take.
const MaxScore = 10.0

// QualityScore holds the aroma, taste and freshness scores of a product.
// Only the upper bound is enforced; negative scores are accepted.
type QualityScore struct {
	aroma     float64
	taste     float64
	freshness float64
}

// QualityRange holds inclusive bounds for each quality score.
type QualityRange struct {
	MinAroma     float64
	MaxAroma     float64
	MinTaste     float64
	MaxTaste     float64
	MinFreshness float64
	MaxFreshness float64
}

// NewQualityScore creates a quality score.
// Returns ErrScoreTooHigh if any score exceeds MaxScore.
func NewQualityScore(aroma, taste, freshness float64) (QualityScore, error) {
	scores := []struct {
		name  string
		value float64
	}{
		{"aroma", aroma},
		{"taste", taste},
		{"freshness", freshness},
	}
	for _, s := range scores {
		if s.value > MaxScore {
			return QualityScore{}, fmt.Errorf("%s score %s: %w", s.name, FormatDecimal(s.value), ErrScoreTooHigh)
		}
	}

	return QualityScore{
		aroma:     aroma,
		taste:     taste,
		freshness: freshness,
	}, nil
}

// Aroma returns the aroma score.
func (q QualityScore) Aroma() float64 {
	return q.aroma
}

// Taste returns the taste score.
func (q QualityScore) Taste() float64 {
	return q.taste
}

// Freshness returns the freshness score.
func (q QualityScore) Freshness() float64 {
	return q.freshness
}

// IsInRange reports whether every score lies within the inclusive bounds of r.
func (q QualityScore) IsInRange(r QualityRange) bool {
	return q.aroma >= r.MinAroma && q.aroma <= r.MaxAroma &&
		q.taste >= r.MinTaste && q.taste <= r.MaxTaste &&
		q.freshness >= r.MinFreshness && q.freshness <= r.MaxFreshness
}
