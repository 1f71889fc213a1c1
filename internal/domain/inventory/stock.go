package inventory

import "github.com/shopspring/decimal"

// StockAfter aplica un delta a la existencia; ok=false si quedaría negativa.
func StockAfter(current, delta decimal.Decimal) (next decimal.Decimal, ok bool) {
	next = current.Add(delta)
	if next.IsNegative() {
		return current, false
	}
	return next, true
}

// IsBelowMinimum informa si la existencia total quedó por debajo del mínimo configurado.
// Un mínimo 0 desactiva la alerta.
func IsBelowMinimum(total, minimum decimal.Decimal) bool {
	return minimum.IsPositive() && total.LessThan(minimum)
}
