package codec

import (
	"bytes"
	"testing"

	"coffee-van/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink collects decode failures for assertions.
type recordingSink struct {
	lines []string
	errs  []error
}

func (s *recordingSink) DecodeFailed(line string, err error) {
	s.lines = append(s.lines, line)
	s.errs = append(s.errs, err)
}

func details(t *testing.T, id string, aroma, taste, freshness float64) model.Details {
	t.Helper()
	q, err := model.NewQualityScore(aroma, taste, freshness)
	require.NoError(t, err)
	return model.Details{
		ID:        id,
		Name:      "Arabica",
		Weight:    250,
		Price:     15.99,
		Quality:   q,
		Packaging: model.NewPackaging("Paper", 250),
	}
}

func TestCodec_Encode(t *testing.T) {
	c := New(nil)
	d := details(t, "t1", 8, 9, 7)

	tests := []struct {
		name     string
		product  model.Product
		expected string
	}{
		{
			name:     "Bean",
			product:  model.NewBean(nil, d, "Brazil", model.RoastMedium),
			expected: "BEAN;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper;250.0;Brazil;MEDIUM",
		},
		{
			name:     "Ground",
			product:  model.NewGround(nil, d, model.GrindCoarse),
			expected: "GROUND;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper;250.0;COARSE",
		},
		{
			name:     "Instant",
			product:  model.NewInstant(nil, d, model.ConcentrationLow),
			expected: "INSTANT;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper;250.0;LOW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := c.Encode(tt.product)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestCodec_Encode_Nil(t *testing.T) {
	c := New(nil)

	_, err := c.Encode(nil)
	assert.ErrorIs(t, err, model.ErrNilProduct)

	_, err = c.Encode((*model.Ground)(nil))
	assert.ErrorIs(t, err, model.ErrNilProduct)
}

func TestCodec_Encode_Pointer(t *testing.T) {
	q, err := model.NewQualityScore(8, 9, 7)
	require.NoError(t, err)
	bean := model.NewBean(nil, model.Details{
		ID:        "t1",
		Name:      "Arabica",
		Weight:    250,
		Price:     15.99,
		Quality:   q,
		Packaging: model.NewPackaging("Paper", 250),
	}, "Brazil", model.RoastMedium)

	line, err := New(nil).Encode(&bean)

	require.NoError(t, err)
	assert.Equal(t, "BEAN;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper;250.0;Brazil;MEDIUM", line)
}

func TestCodec_Reject(t *testing.T) {
	sink := &recordingSink{}

	err := New(sink).Reject("BEAN;t1", ErrLineTooLong)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "BEAN;t1", decodeErr.Line)
	assert.ErrorIs(t, err, ErrLineTooLong)
	assert.Len(t, sink.lines, 1)
}

func TestCodec_RoundTrip(t *testing.T) {
	sink := &recordingSink{}
	c := New(sink)

	odd := details(t, "9f1c-odd id", -2.5, 0.1, 10)
	odd.Name = "Name with spaces"
	odd.Weight = 0.3333333333333333
	odd.Price = 1e-7
	odd.Packaging = model.NewPackaging("", 1234567.125)

	products := []model.Product{
		model.NewBean(nil, details(t, "t1", 8, 9, 7), "Brazil", model.RoastMedium),
		model.NewBean(nil, odd, "", model.RoastDark),
		model.NewGround(nil, details(t, "g1", 1, 2, 3), model.GrindFine),
		model.NewGround(nil, odd, model.GrindMedium),
		model.NewInstant(nil, details(t, "i1", 10, 10, 10), model.ConcentrationHigh),
		model.NewInstant(nil, odd, model.ConcentrationMedium),
	}

	for _, p := range products {
		t.Run(string(p.Kind())+"/"+p.Common().ID, func(t *testing.T) {
			line, err := c.Encode(p)
			require.NoError(t, err)

			decoded, err := c.Decode(line)
			require.NoError(t, err)
			assert.Equal(t, p, decoded)
		})
	}

	assert.Empty(t, sink.lines)
}

func TestCodec_Decode_ExampleLine(t *testing.T) {
	c := New(nil)

	p, err := c.Decode("BEAN;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper;250.0;Brazil;MEDIUM")
	require.NoError(t, err)

	bean, ok := p.(model.Bean)
	require.True(t, ok, "expected a Bean, got %T", p)
	assert.Equal(t, "t1", bean.ID)
	assert.Equal(t, "Arabica", bean.Name)
	assert.Equal(t, 250.0, bean.Weight)
	assert.Equal(t, 15.99, bean.Price)
	assert.Equal(t, 8.0, bean.Quality.Aroma())
	assert.Equal(t, 9.0, bean.Quality.Taste())
	assert.Equal(t, 7.0, bean.Quality.Freshness())
	assert.Equal(t, "Paper", bean.Packaging.Material())
	assert.Equal(t, 250.0, bean.Packaging.Volume())
	assert.Equal(t, "Brazil", bean.Origin)
	assert.Equal(t, model.RoastMedium, bean.Roast)
}

func TestCodec_Decode_Lenient(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name string
		line string
		kind model.Kind
	}{
		{name: "Lower-case kind and enum", line: "ground;g1;Robusta;100;5.99;7;6;8;Plastic;100;coarse", kind: model.KindGround},
		{name: "Integral numbers without fraction", line: "INSTANT;i1;Nescafe;50;3;5;5;5;Glass;200;high", kind: model.KindInstant},
		{name: "Trailing fields ignored", line: "BEAN;b1;Kenya;250.0;12.0;8.0;8.0;8.0;Paper;250.0;Kenya;LIGHT;extra;more", kind: model.KindBean},
		{name: "Carriage return tolerated", line: "GROUND;g2;Robusta;100.0;5.99;7.0;6.0;8.0;Plastic;100.0;FINE\r", kind: model.KindGround},
		{name: "Negative scores accepted", line: "GROUND;g3;Cheap;100.0;1.0;-1.0;-2.0;-3.0;Bag;50.0;FINE", kind: model.KindGround},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.Decode(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind())
		})
	}
}

func TestCodec_Decode_Failures(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		cause    error
		errorMsg string
	}{
		{name: "Empty line", line: "", cause: ErrTooFewFields},
		{name: "Nine fields", line: "BEAN;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper", cause: ErrTooFewFields, errorMsg: "got 9"},
		{name: "Unknown kind", line: "ESPRESSO;e1;Shot;30.0;2.0;8.0;8.0;8.0;Cup;30.0;STRONG", cause: ErrUnknownKind},
		{name: "Bad weight", line: "BEAN;t1;Arabica;heavy;15.99;8.0;9.0;7.0;Paper;250.0;Brazil;MEDIUM", cause: ErrInvalidNumber, errorMsg: "field weight"},
		{name: "Bad price", line: "GROUND;g1;Robusta;100.0;;7.0;6.0;8.0;Plastic;100.0;FINE", cause: ErrInvalidNumber, errorMsg: "field price"},
		{name: "Bad volume", line: "GROUND;g1;Robusta;100.0;5.0;7.0;6.0;8.0;Plastic;big;FINE", cause: ErrInvalidNumber, errorMsg: "field volume"},
		{name: "Score above ten", line: "GROUND;g1;Robusta;100.0;5.0;11.0;6.0;8.0;Plastic;100.0;FINE", cause: ErrInvalidScore},
		{name: "Unknown roast", line: "BEAN;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper;250.0;Brazil;BURNT", cause: ErrInvalidEnum, errorMsg: "roast level"},
		{name: "Unknown grind", line: "GROUND;g1;Robusta;100.0;5.0;7.0;6.0;8.0;Plastic;100.0;POWDER", cause: ErrInvalidEnum, errorMsg: "grind size"},
		{name: "Unknown concentration", line: "INSTANT;i1;Nescafe;50.0;3.0;5.0;5.0;5.0;Glass;200.0;EXTREME", cause: ErrInvalidEnum, errorMsg: "concentration level"},
		{name: "Bean without roast", line: "BEAN;t1;Arabica;250.0;15.99;8.0;9.0;7.0;Paper;250.0;Brazil", cause: ErrMissingField},
		{name: "Ground without grind", line: "GROUND;g1;Robusta;100.0;5.0;7.0;6.0;8.0;Plastic;100.0", cause: ErrMissingField},
		{name: "Instant without level", line: "INSTANT;i1;Nescafe;50.0;3.0;5.0;5.0;5.0;Glass;200.0", cause: ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			c := New(sink)

			p, err := c.Decode(tt.line)

			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.cause)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.line, decodeErr.Line)
			if tt.errorMsg != "" {
				assert.Contains(t, err.Error(), tt.errorMsg)
			}

			require.Len(t, sink.lines, 1)
			assert.Equal(t, tt.line, sink.lines[0])
			assert.Equal(t, err, sink.errs[0])
		})
	}
}

func TestLogSink_DecodeFailed(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	c := New(NewLogSink(logger))

	_, err := c.Decode("ESPRESSO;x")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"component":"codec"`)
	assert.Contains(t, out, `"line":"ESPRESSO;x"`)
	assert.Contains(t, out, "failed to parse product line")
}
