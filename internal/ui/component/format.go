package component

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount in the currency's display format, e.g. $44,372.50.
// Unknown currency codes fall back to a plain two-decimal number.
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// FormatPrice renders a unit price the same way as FormatMoney.
func FormatPrice(price float64, currency string) string {
	return FormatMoney(decimal.NewFromFloat(price), currency)
}
