package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders a rupee amount with the Indian digit grouping
// convention and exactly two decimal places, e.g. 1234.5 -> "₹ 1,234.50".
func FormatINR(amount float64) string {
	s := decimal.NewFromFloat(amount).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	return "₹ " + sign + groupIndian(intPart) + "." + fracPart
}

// groupIndian inserts commas per the Indian numbering system: the last
// three digits form one group, everything before is grouped in twos.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}
