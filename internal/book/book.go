// Package book models per-instrument order depth shared between the engine and strategies.
package book

// Depth holds resting liquidity for one instrument keyed by limit price.
// Buys maps bid price to the quantity available to sell into; Sells maps ask
// price to the quantity available to buy from. Quantities are informational:
// decision logic only ever reads the price keys.
type Depth struct {
	Buys  map[int]int `json:"buy_orders"`
	Sells map[int]int `json:"sell_orders"`
}

// Snapshot maps instrument symbols to their order depth for one cycle.
type Snapshot map[string]Depth

// Order is a limit order intent. Positive Quantity buys, negative sells.
type Order struct {
	Product  string `json:"product"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// BestBid returns the highest resting bid price. ok is false when no bids rest.
func (d Depth) BestBid() (int, bool) {
	if len(d.Buys) == 0 {
		return 0, false
	}
	best := 0
	first := true
	for price := range d.Buys {
		if first || price > best {
			best = price
			first = false
		}
	}
	return best, true
}

// BestAsk returns the lowest resting ask price. ok is false when no asks rest.
func (d Depth) BestAsk() (int, bool) {
	if len(d.Sells) == 0 {
		return 0, false
	}
	best := 0
	first := true
	for price := range d.Sells {
		if first || price < best {
			best = price
			first = false
		}
	}
	return best, true
}

// Mid estimates fair value from the book: midpoint of best bid and best ask
// when both sides rest, the surviving side's best price when only one does.
// ok is false on an empty book, in which case no orders should be placed.
func (d Depth) Mid() (float64, bool) {
	bid, hasBid := d.BestBid()
	ask, hasAsk := d.BestAsk()
	switch {
	case hasBid && hasAsk:
		return (float64(bid) + float64(ask)) / 2, true
	case hasAsk:
		return float64(ask), true
	case hasBid:
		return float64(bid), true
	default:
		return 0, false
	}
}
