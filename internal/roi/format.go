package roi

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	thousand = 1_000
	million  = 1_000_000
)

// FormatAbbreviatedNumber condenses n for display: "1.2M", "24.0K", "500".
func FormatAbbreviatedNumber(n float64) string {
	switch {
	case n >= million:
		return fixed(n/million, 1) + "M"
	case n >= thousand:
		return fixed(n/thousand, 1) + "K"
	default:
		return fixed(n, 0)
	}
}

// FormatAbbreviatedCurrency is the dollar variant of FormatAbbreviatedNumber.
// K and M amounts are rounded to whole units: "$1M", "$840K", "$320".
func FormatAbbreviatedCurrency(n float64) string {
	switch {
	case n >= million:
		return "$" + fixed(n/million, 0) + "M"
	case n >= thousand:
		return "$" + fixed(n/thousand, 0) + "K"
	default:
		return "$" + fixed(n, 0)
	}
}

// FormatGrouped renders n as a whole number with thousands separators, as the
// slider read-outs show it ("2,000").
func FormatGrouped(n float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", int64(math.Round(n)))
}

// fixed rounds half away from zero before formatting so 2.5 prints as "3".
func fixed(v float64, decimals int) string {
	scale := math.Pow10(decimals)
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', decimals, 64)
}
