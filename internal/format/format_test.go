package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func intPtr(v int) *int { return &v }

func TestAgeRange_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		min  *int
		max  *int
		want *string
	}{
		{"both bounds", intPtr(6), intPtr(10), strPtr("6 - 10 ans")},
		{"min only", intPtr(3), nil, strPtr("À partir de 3 ans")},
		{"max only", nil, intPtr(12), strPtr("Jusqu'à 12 ans")},
		{"neither", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgeRange(tt.min, tt.max)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func strPtr(s string) *string { return &s }

func testAgeRange_NilIffBothNil(t *rapid.T) {
	var min, max *int
	if rapid.Bool().Draw(t, "hasMin") {
		min = intPtr(rapid.IntRange(0, 99).Draw(t, "min"))
	}
	if rapid.Bool().Draw(t, "hasMax") {
		max = intPtr(rapid.IntRange(0, 99).Draw(t, "max"))
	}

	got := AgeRange(min, max)
	if (got == nil) != (min == nil && max == nil) {
		t.Fatalf("AgeRange nil-ness mismatch: min=%v max=%v got=%v", min, max, got)
	}
	if got != nil && *got == "" {
		t.Fatal("AgeRange returned empty text")
	}
}

func TestAgeRange_NilIffBothNil(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testAgeRange_NilIffBothNil)
}

func TestPriceFromCents_Exact(t *testing.T) {
	t.Parallel()

	assert.True(t, PriceFromCents(15000).Equal(decimal.NewFromInt(150)))
	assert.True(t, PriceFromCents(1).Equal(decimal.RequireFromString("0.01")))
	assert.True(t, PriceFromCents(1550).Equal(decimal.RequireFromString("15.5")))
}

func testPriceFromCents_RoundTrip(t *rapid.T) {
	cents := rapid.Int64Range(0, 10_000_000).Draw(t, "cents")

	euros := PriceFromCents(cents)
	back := euros.Mul(decimal.NewFromInt(100))
	if !back.Equal(decimal.NewFromInt(cents)) {
		t.Fatalf("round trip failed: cents=%d euros=%s back=%s", cents, euros, back)
	}
}

func TestPriceFromCents_RoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testPriceFromCents_RoundTrip)
}

func TestPriceText_FrenchRendering(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "150 €", PriceText(15000))
	assert.Equal(t, "15,50 €", PriceText(1550))
	assert.Equal(t, "0,01 €", PriceText(1))
	assert.Equal(t, "0 €", PriceText(0))
	assert.Equal(t, "320,50 €", PriceText(32050))
}

func TestProgressColor_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate int
		want string
	}{
		{100, "primary"},
		{80, "primary"},
		{79, "accent"},
		{50, "accent"},
		{49, "warn"},
		{0, "warn"},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, ProgressColor(tt.rate), "rate=%d", tt.rate)
	}
}

func testProgressColor_TotalOverRange(t *rapid.T) {
	rate := rapid.IntRange(0, 100).Draw(t, "rate")

	got := ProgressColor(rate)
	switch {
	case rate >= 80:
		if got != "primary" {
			t.Fatalf("rate=%d got=%q", rate, got)
		}
	case rate >= 50:
		if got != "accent" {
			t.Fatalf("rate=%d got=%q", rate, got)
		}
	default:
		if got != "warn" {
			t.Fatalf("rate=%d got=%q", rate, got)
		}
	}
}

func TestProgressColor_TotalOverRange(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testProgressColor_TotalOverRange)
}
