package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer-facing messages
const (
	MsgStockChanged = "Нажаль, в одній позиції зі списку виникли зміни." +
		"Поки Ви оформлювали покупку, товар був придбаний іншим покупцем." +
		"Приносимо свої вибачення."
	MsgPaymentSucceeded = "Оплата пройшла успішно"
	MsgPaymentWarning   = ":)"
	StatusUnpaid        = "Не оплачений"
	MsgItemAdded        = "Item was added"
)

// Line is a priced cart line resolved against the catalog
type Line struct {
	ProductID uuid.UUID
	Name      string
	Slug      string
	Price     decimal.Decimal
	Image     string
	Quantity  int
}

// Total is price times quantity
func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// Totals are the aggregate figures shown with a cart or order
type Totals struct {
	Total     decimal.Decimal
	ItemCount int
}

// Summarize adds up line totals and quantities
func Summarize(lines []Line) Totals {
	t := Totals{Total: decimal.Zero}
	for _, l := range lines {
		t.Total = t.Total.Add(l.Total())
		t.ItemCount += l.Quantity
	}
	return t
}

// CorrectCart rebuilds the cookie cart and totals, dropping lines with no quantity
func CorrectCart(lines []Line) (Cart, Totals) {
	cart := Cart{}
	kept := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		cart[l.ProductID.String()] = CartEntry{Quantity: l.Quantity}
		kept = append(kept, l)
	}
	return cart, Summarize(kept)
}

// CheckStock clamps each line to the quantity available. A line asking for
// nothing, or for more than is available, is set to the available amount and
// the stock-changed message is returned. The input slice is not modified.
func CheckStock(lines []Line, available map[uuid.UUID]int) (string, []Line) {
	message := ""
	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		have := available[out[i].ProductID]
		if have < out[i].Quantity || out[i].Quantity == 0 {
			out[i].Quantity = have
			message = MsgStockChanged
		}
	}
	return message, out
}
