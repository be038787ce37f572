package trade

import (
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
)

// CartEntry is the quantity stored for one product in the cart cookie
type CartEntry struct {
	Quantity int `json:"quantity"`
}

// Cart is the client-side cart kept in the "cart" cookie:
// {"<product id>": {"quantity": n}}
type Cart map[string]CartEntry

// ParseCart decodes a cart cookie value. An empty value is an empty cart.
// Values may be URL-encoded and may use single quotes.
func ParseCart(raw string) (Cart, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Cart{}, nil
	}
	if decoded, err := url.QueryUnescape(raw); err == nil {
		raw = decoded
	}
	raw = strings.ReplaceAll(raw, "'", `"`)

	cart := Cart{}
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, shared.NewDomainError("INVALID_CART", "Cart cookie is malformed")
	}
	return cart, nil
}

// Encode serialises the cart for the cookie
func (c Cart) Encode() string {
	if c == nil {
		return "{}"
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ItemCount is the total number of units in the cart
func (c Cart) ItemCount() int {
	n := 0
	for _, e := range c {
		n += e.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no entries
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Quantities returns the cart keyed by product id. Keys that are not
// valid ids are skipped.
func (c Cart) Quantities() map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(c))
	for k, e := range c {
		id, err := uuid.Parse(k)
		if err != nil {
			continue
		}
		out[id] = e.Quantity
	}
	return out
}

// ProductIDs returns the valid product ids in a stable order
func (c Cart) ProductIDs() []uuid.UUID {
	q := c.Quantities()
	ids := make([]uuid.UUID, 0, len(q))
	for id := range q {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// CartFromItems builds a cookie cart from order lines, skipping empty lines
func CartFromItems(items []OrderItem) Cart {
	cart := Cart{}
	for _, it := range items {
		if it.Quantity > 0 {
			cart[it.ProductID.String()] = CartEntry{Quantity: it.Quantity}
		}
	}
	return cart
}
