package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

var belowTwenty = []string{"", "One", "Two", "Three", "Four", "Five", "Six",
	"Seven", "Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
	"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
	"Seventy", "Eighty", "Ninety"}

// AmountInWords spells out a rupee amount in the Indian numbering
// system, e.g. 1234.50 -> "One Thousand Two Hundred Thirty Four Rupees
// and Fifty Paise Only".
func AmountInWords(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	rupees := d.IntPart()
	paise := d.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise < 0 {
		paise = -paise
	}

	if rupees == 0 && paise == 0 {
		return "Zero Rupees Only"
	}

	var parts []string
	if rupees != 0 {
		unit := "Rupees"
		if rupees == 1 {
			unit = "Rupee"
		}
		parts = append(parts, numberWords(rupees)+" "+unit)
	}
	if paise != 0 {
		unit := "Paise"
		if paise == 1 {
			unit = "Paisa"
		}
		words := numberWords(paise) + " " + unit
		if len(parts) > 0 {
			words = "and " + words
		}
		parts = append(parts, words)
	}
	parts = append(parts, "Only")

	return strings.Join(parts, " ")
}

// numberWords converts a positive integer to words using crore, lakh,
// thousand and hundred scales.
func numberWords(n int64) string {
	if n < 0 {
		return "Minus " + numberWords(-n)
	}

	var parts []string
	appendScale := func(value int64, scale string) {
		if value > 0 {
			parts = append(parts, numberWords(value), scale)
		}
	}

	appendScale(n/10000000, "Crore")
	n %= 10000000
	appendScale(n/100000, "Lakh")
	n %= 100000
	appendScale(n/1000, "Thousand")
	n %= 1000
	appendScale(n/100, "Hundred")
	n %= 100

	switch {
	case n >= 20:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, belowTwenty[n%10])
		}
	case n > 0:
		parts = append(parts, belowTwenty[n])
	}

	return strings.Join(parts, " ")
}
