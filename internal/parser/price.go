// Package parser extracts structured values from the display texts the
// crawler scrapes off offer listings: prices like "17,90 Kč / 1 kg",
// discounts like "–55 %", store counts like "81 nejbližších poboček".
// Markup and validity-text date parsing stay upstream; this package only
// sees already-extracted field texts.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Price is the structured form of a scraped price text. Value, Currency
// and Unit stay empty when the text does not carry them; the original
// text is always preserved for display.
type Price struct {
	Text     string
	Value    *float64
	Currency string
	Unit     string
}

// Discount is the structured form of a scraped discount text.
type Discount struct {
	Text       string
	Percentage *int
}

var (
	priceValueRe = regexp.MustCompile(`\d+[,.]?\d*`)
	priceUnitRe  = regexp.MustCompile(`/\s*(.+?)\s*$`)
	percentRe    = regexp.MustCompile(`(\d+)\s*%`)
	numberRe     = regexp.MustCompile(`\d+`)
)

// ParsePrice extracts the numeric value, currency and unit from a Czech
// price text. Czech prices use a comma as the decimal separator.
func ParsePrice(text string) *Price {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	p := &Price{Text: text}

	if m := priceValueRe.FindString(text); m != "" {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64); err == nil {
			p.Value = &v
		}
	}

	if strings.Contains(text, "Kč") || strings.Contains(text, "CZK") {
		p.Currency = "CZK"
	}

	if m := priceUnitRe.FindStringSubmatch(text); m != nil {
		p.Unit = m[1]
	}

	return p
}

// ParseDiscount extracts the percentage from a discount text such as
// "–55 %" or "55%".
func ParseDiscount(text string) *Discount {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	d := &Discount{Text: text}

	if m := percentRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			d.Percentage = &v
		}
	}

	return d
}

// ParseStoreCount extracts the leading count from a store-locations text
// such as "81 nejbližších poboček". Returns nil when no number is found.
func ParseStoreCount(text string) *int {
	m := numberRe.FindString(text)
	if m == "" {
		return nil
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &v
}
