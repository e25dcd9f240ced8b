package format

import (
	"github.com/leekchan/accounting"
)

var money = accounting.Accounting{Symbol: "$", Precision: 2}

// Money renders an amount for dashboard display, e.g. 1234.5 -> "$1,234.50".
func Money(amount float64) string {
	return money.FormatMoney(amount)
}
