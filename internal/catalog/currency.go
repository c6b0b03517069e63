package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders a whole-Rupiah amount with the "Rp " prefix and
// Indonesian thousands separators, e.g. 750000 -> "Rp 750.000".
func FormatIDR(amount int64) string {
	if amount < 0 {
		amount = 0
	}
	return idPrinter.Sprintf("Rp %v", number.Decimal(amount))
}
