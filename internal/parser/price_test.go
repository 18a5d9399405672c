package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		expectedNil      bool
		expectedValue    *float64
		expectedCurrency string
		expectedUnit     string
	}{
		{
			name:        "empty text",
			text:        "",
			expectedNil: true,
		},
		{
			name:             "price with unit",
			text:             "17,90 Kč / 1 kg",
			expectedValue:    floatPtr(17.90),
			expectedCurrency: "CZK",
			expectedUnit:     "1 kg",
		},
		{
			name:             "plain price",
			text:             "40,76 Kč",
			expectedValue:    floatPtr(40.76),
			expectedCurrency: "CZK",
		},
		{
			name:             "per piece unit",
			text:             "12,90 Kč / ks",
			expectedValue:    floatPtr(12.90),
			expectedCurrency: "CZK",
			expectedUnit:     "ks",
		},
		{
			name:             "explicit currency code",
			text:             "99 CZK",
			expectedValue:    floatPtr(99),
			expectedCurrency: "CZK",
		},
		{
			name:          "no currency marker",
			text:          "17.90",
			expectedValue: floatPtr(17.90),
		},
		{
			name: "no numeric value",
			text: "v akci",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePrice(tt.text)

			if tt.expectedNil {
				assert.Nil(t, p)
				return
			}

			assert.NotNil(t, p)
			assert.Equal(t, tt.text, p.Text)
			if tt.expectedValue == nil {
				assert.Nil(t, p.Value)
			} else {
				assert.NotNil(t, p.Value)
				assert.InDelta(t, *tt.expectedValue, *p.Value, 0.001)
			}
			assert.Equal(t, tt.expectedCurrency, p.Currency)
			assert.Equal(t, tt.expectedUnit, p.Unit)
		})
	}
}

func TestParseDiscount(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expectedNil bool
		expectedPct *int
	}{
		{
			name:        "empty text",
			text:        "",
			expectedNil: true,
		},
		{
			name:        "dash prefixed",
			text:        "–55 %",
			expectedPct: intPtr(55),
		},
		{
			name:        "compact form",
			text:        "55%",
			expectedPct: intPtr(55),
		},
		{
			name: "no percentage",
			text: "sleva",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDiscount(tt.text)

			if tt.expectedNil {
				assert.Nil(t, d)
				return
			}

			assert.NotNil(t, d)
			assert.Equal(t, tt.text, d.Text)
			assert.Equal(t, tt.expectedPct, d.Percentage)
		})
	}
}

func TestParseStoreCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *int
	}{
		{
			name:     "count with suffix",
			text:     "81 nejbližších poboček",
			expected: intPtr(81),
		},
		{
			name:     "bare number",
			text:     "3",
			expected: intPtr(3),
		},
		{
			name: "no number",
			text: "poblíž",
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStoreCount(tt.text))
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
