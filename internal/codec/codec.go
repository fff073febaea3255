// Package codec converts products to and from single ';'-separated lines:
//
//	<KIND>;<id>;<name>;<weight>;<price>;<aroma>;<taste>;<freshness>;<material>;<volume>;<extra...>
//
// Bean lines carry <origin>;<ROAST>, Ground lines <GRIND> and Instant lines
// <CONCENTRATION> as extra fields.
package codec

import (
	"fmt"
	"strings"

	"coffee-van/internal/model"
)

// Separator delimits fields within a line.
const Separator = ";"

// Field positions shared by every kind.
const (
	fieldKind = iota
	fieldID
	fieldName
	fieldWeight
	fieldPrice
	fieldAroma
	fieldTaste
	fieldFreshness
	fieldMaterial
	fieldVolume
	firstExtraField
)

// Codec encodes and decodes product lines.
type Codec struct {
	sink DiagnosticSink
}

// New creates a codec that reports decode failures to sink.
// A nil sink discards them.
func New(sink DiagnosticSink) *Codec {
	if sink == nil {
		sink = NopSink{}
	}
	return &Codec{sink: sink}
}

// Encode renders p as one line without a trailing newline.
func (c *Codec) Encode(p model.Product) (string, error) {
	p, err := model.Value(p)
	if err != nil {
		return "", err
	}
	d := p.Common()
	fields := []string{
		string(p.Kind()),
		d.ID,
		d.Name,
		model.FormatDecimal(d.Weight),
		model.FormatDecimal(d.Price),
		model.FormatDecimal(d.Quality.Aroma()),
		model.FormatDecimal(d.Quality.Taste()),
		model.FormatDecimal(d.Quality.Freshness()),
		d.Packaging.Material(),
		model.FormatDecimal(d.Packaging.Volume()),
	}

	switch v := p.(type) {
	case model.Bean:
		fields = append(fields, v.Origin, string(v.Roast))
	case model.Ground:
		fields = append(fields, string(v.Grind))
	case model.Instant:
		fields = append(fields, string(v.Concentration))
	default:
		return "", fmt.Errorf("encode %T: %w", p, model.ErrUnsupportedVariant)
	}

	return strings.Join(fields, Separator), nil
}

// Decode parses one line into a product. On failure it reports the line to
// the sink and returns a *DecodeError; the caller should skip the line.
func (c *Codec) Decode(line string) (model.Product, error) {
	p, err := decode(line)
	if err != nil {
		c.sink.DecodeFailed(line, err)
		return nil, err
	}
	return p, nil
}

// Reject reports a line that was dropped before decoding, such as one too
// long to read in full, and returns the *DecodeError passed to the sink.
func (c *Codec) Reject(line string, cause error) error {
	err := &DecodeError{Line: line, Err: cause}
	c.sink.DecodeFailed(line, err)
	return err
}

func decode(line string) (model.Product, error) {
	parts := strings.Split(line, Separator)
	if len(parts) < firstExtraField {
		return nil, &DecodeError{
			Line: line,
			Err:  fmt.Errorf("%w: got %d, want at least %d", ErrTooFewFields, len(parts), firstExtraField),
		}
	}

	kind, err := model.ParseKind(parts[fieldKind])
	if err != nil {
		return nil, &DecodeError{Line: line, Field: "kind", Err: fmt.Errorf("%w: %q", ErrUnknownKind, parts[fieldKind])}
	}

	var weight, price, aroma, taste, freshness, volume float64
	numbers := []struct {
		name string
		idx  int
		dst  *float64
	}{
		{"weight", fieldWeight, &weight},
		{"price", fieldPrice, &price},
		{"aroma", fieldAroma, &aroma},
		{"taste", fieldTaste, &taste},
		{"freshness", fieldFreshness, &freshness},
		{"volume", fieldVolume, &volume},
	}
	for _, n := range numbers {
		v, err := model.ParseDecimal(parts[n.idx])
		if err != nil {
			return nil, &DecodeError{Line: line, Field: n.name, Err: fmt.Errorf("%w: %q", ErrInvalidNumber, parts[n.idx])}
		}
		*n.dst = v
	}

	quality, err := model.NewQualityScore(aroma, taste, freshness)
	if err != nil {
		return nil, &DecodeError{Line: line, Field: "quality", Err: fmt.Errorf("%w: %v", ErrInvalidScore, err)}
	}

	d := model.Details{
		ID:        parts[fieldID],
		Name:      parts[fieldName],
		Weight:    weight,
		Price:     price,
		Quality:   quality,
		Packaging: model.NewPackaging(parts[fieldMaterial], volume),
	}
	extra := parts[firstExtraField:]

	switch kind {
	case model.KindBean:
		if len(extra) < 2 {
			return nil, missing(line, "roast level")
		}
		roast, err := model.ParseRoastLevel(extra[1])
		if err != nil {
			return nil, invalidEnum(line, "roast level", extra[1])
		}
		return model.Bean{Details: d, Origin: extra[0], Roast: roast}, nil

	case model.KindGround:
		if len(extra) < 1 {
			return nil, missing(line, "grind size")
		}
		grind, err := model.ParseGrindSize(extra[0])
		if err != nil {
			return nil, invalidEnum(line, "grind size", extra[0])
		}
		return model.Ground{Details: d, Grind: grind}, nil

	case model.KindInstant:
		if len(extra) < 1 {
			return nil, missing(line, "concentration level")
		}
		level, err := model.ParseConcentrationLevel(extra[0])
		if err != nil {
			return nil, invalidEnum(line, "concentration level", extra[0])
		}
		return model.Instant{Details: d, Concentration: level}, nil
	}

	return nil, &DecodeError{Line: line, Field: "kind", Err: ErrUnknownKind}
}

func missing(line, field string) error {
	return &DecodeError{Line: line, Field: field, Err: ErrMissingField}
}

func invalidEnum(line, field, value string) error {
	return &DecodeError{Line: line, Field: field, Err: fmt.Errorf("%w: %q", ErrInvalidEnum, value)}
}
