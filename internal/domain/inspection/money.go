package inspection

import (
	"github.com/dustin/go-humanize"
)

// FormatCents renders cents as a US dollar amount, e.g. 105000 -> "$1,050.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", float64(cents)/100)
}
