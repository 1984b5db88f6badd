package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"475000", "4750.00"},
		{"1", "0.01"},
		{"100", "1.00"},
		{"", "0"},
		{"abc", "0"},
		{"R$ 1.234,56", "1234.56"}, // masked input, digits only survive
		{"00042", "0.42"},
	}

	for _, tt := range tests {
		got := ParseCents(tt.raw)
		assert.True(t, got.Equal(d(tt.want)), "ParseCents(%q) = %s, want %s", tt.raw, got, tt.want)
	}
}

func TestEffectiveRate(t *testing.T) {
	assert.True(t, EffectiveRate(nil, d("5")).Equal(d("5")))
	assert.True(t, EffectiveRate(dp("0"), d("5")).IsZero(), "an explicit zero override wins")
	assert.True(t, EffectiveRate(dp("7.5"), d("5")).Equal(d("7.5")))
}

func TestTotalRateMultiplier(t *testing.T) {
	assert.True(t, TotalRateMultiplier(d("5"), d("2")).Equal(d("1.07")))
	assert.True(t, TotalRateMultiplier(d("0"), d("0")).Equal(d("1")))
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1000000", "R$ 1.000.000,00"},
		{"-79.5", "-R$ 79,50"},
		{"999.999", "R$ 1.000,00"}, // rounded to the cent for display
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(d(tt.in)))
	}
}
