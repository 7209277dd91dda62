package orders

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxLineQuantity bounds a single cart line so the int conversion is safe.
const maxLineQuantity = math.MaxInt32

// Cart is the normalised cart: distinct dish ids in first-seen order with
// their summed quantities.
type Cart struct {
	IDs        []primitive.ObjectID
	Quantities map[primitive.ObjectID]int
}

// Len is the number of distinct dishes.
func (c Cart) Len() int { return len(c.IDs) }

// Aggregate drops lines with a malformed id or a quantity that is not a
// positive integer, then merges repeated ids by summing their quantities.
func Aggregate(lines []CartLine) Cart {
	cart := Cart{Quantities: map[primitive.ObjectID]int{}}
	for _, l := range lines {
		id, err := primitive.ObjectIDFromHex(l.MenuItemID)
		if err != nil {
			continue
		}
		qty, ok := positiveInt(l.Quantity)
		if !ok {
			continue
		}
		if _, seen := cart.Quantities[id]; !seen {
			cart.IDs = append(cart.IDs, id)
		}
		cart.Quantities[id] += qty
	}
	return cart
}

func positiveInt(q float64) (int, bool) {
	if q <= 0 || q > maxLineQuantity || q != math.Trunc(q) {
		return 0, false
	}
	return int(q), true
}
