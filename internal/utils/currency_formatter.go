package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with thousands separators and two decimals,
// e.g. 1500 -> "1,500.00".
func FormatAmount(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return humanize.FormatFloat("#,###.##", f)
}

// FormatMoney prefixes the formatted amount with the currency code.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatAmount(amount)
	}
	return fmt.Sprintf("%s %s", currency, FormatAmount(amount))
}

func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
