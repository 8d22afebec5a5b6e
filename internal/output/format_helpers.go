package output

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// NoneMarker is printed for the value cells of an infeasible age. Missing
// results are never rendered as zero or as a blank cell.
const NoneMarker = "None"

// FormatAmount formats a decimal with thousands separators and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", amount.InexactFloat64())
}

// FormatOptionalAmount formats a nullable amount, substituting NoneMarker.
func FormatOptionalAmount(amount *decimal.Decimal) string {
	if amount == nil {
		return NoneMarker
	}
	return FormatAmount(*amount)
}

// FormatFixed renders a nullable amount as plain fixed-point for delimited
// output, where grouping separators would collide with the delimiter.
func FormatFixed(amount *decimal.Decimal) string {
	if amount == nil {
		return NoneMarker
	}
	return amount.StringFixed(2)
}
