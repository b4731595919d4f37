package risk

// Limits caps signed net exposure for a single instrument.
type Limits struct {
	MaxPosition int
}

// BuyCapacity returns how many units may be bought before the position
// reaches +MaxPosition. Never negative.
func (l Limits) BuyCapacity(position int) int {
	capacity := l.MaxPosition - position
	if capacity < 0 {
		return 0
	}
	return capacity
}

// SellCapacity returns how many units may be sold before the position
// reaches -MaxPosition. Never negative.
func (l Limits) SellCapacity(position int) int {
	capacity := position + l.MaxPosition
	if capacity < 0 {
		return 0
	}
	return capacity
}
