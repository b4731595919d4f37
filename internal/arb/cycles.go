// Package arb brute-forces profitable conversion cycles over a fixed
// commodity exchange-rate table. It is a standalone manual-trading aid and
// plays no part in the per-cycle decision loop.
package arb

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Table is an immutable square conversion-rate table. rates[from][to] is how
// many units of to one unit of from converts into.
type Table struct {
	goods []string
	rates map[string]map[string]decimal.Decimal
}

// NewTable validates and builds a table from float rates. Every good must
// quote a positive rate against every good, including itself.
func NewTable(rates map[string]map[string]float64) (Table, error) {
	if len(rates) == 0 {
		return Table{}, fmt.Errorf("empty rate table")
	}
	goods := make([]string, 0, len(rates))
	for good := range rates {
		goods = append(goods, good)
	}
	sort.Strings(goods)

	converted := make(map[string]map[string]decimal.Decimal, len(goods))
	for _, from := range goods {
		row := rates[from]
		converted[from] = make(map[string]decimal.Decimal, len(goods))
		for _, to := range goods {
			rate, ok := row[to]
			if !ok {
				return Table{}, fmt.Errorf("missing rate %s->%s", from, to)
			}
			if rate <= 0 {
				return Table{}, fmt.Errorf("non-positive rate %s->%s", from, to)
			}
			converted[from][to] = decimal.NewFromFloat(rate)
		}
	}
	return Table{goods: goods, rates: converted}, nil
}

// DefaultTable returns the published manual-trading conversion table.
func DefaultTable() Table {
	table, err := NewTable(map[string]map[string]float64{
		"Snowballs":       {"Snowballs": 1, "Pizza's": 1.45, "Silicon Nuggets": 0.52, "SeaShells": 0.72},
		"Pizza's":         {"Snowballs": 0.7, "Pizza's": 1, "Silicon Nuggets": 0.31, "SeaShells": 0.48},
		"Silicon Nuggets": {"Snowballs": 1.95, "Pizza's": 3.1, "Silicon Nuggets": 1, "SeaShells": 1.49},
		"SeaShells":       {"Snowballs": 1.34, "Pizza's": 1.98, "Silicon Nuggets": 0.64, "SeaShells": 1},
	})
	if err != nil {
		panic(err)
	}
	return table
}

// Goods lists the table's commodities in sorted order.
func (t Table) Goods() []string {
	out := make([]string, len(t.goods))
	copy(out, t.goods)
	return out
}

// Rate returns the conversion rate from one good into another, zero when
// either good is unknown.
func (t Table) Rate(from, to string) decimal.Decimal {
	return t.rates[from][to]
}

// CycleProfit multiplies the conversion rates along path starting from one
// unit of the first good.
func (t Table) CycleProfit(path []string) decimal.Decimal {
	profit := decimal.NewFromInt(1)
	for i := 0; i+1 < len(path); i++ {
		profit = profit.Mul(t.Rate(path[i], path[i+1]))
	}
	return profit
}

// Cycle is a round trip through the table and its multiplicative profit.
type Cycle struct {
	Path   []string
	Profit decimal.Decimal
}

// FindProfitable enumerates every permutation of non-home goods up to maxHops
// long, closes each into a home->...->home round trip, and keeps those that
// end with more than one unit of the home good. Results are sorted by profit
// descending.
func FindProfitable(t Table, home string, maxHops int) []Cycle {
	others := make([]string, 0, len(t.goods))
	for _, good := range t.goods {
		if good != home {
			others = append(others, good)
		}
	}

	var cycles []Cycle
	one := decimal.NewFromInt(1)
	for length := 1; length <= maxHops; length++ {
		for _, perm := range permutations(others, length) {
			path := make([]string, 0, length+2)
			path = append(path, home)
			path = append(path, perm...)
			path = append(path, home)
			profit := t.CycleProfit(path)
			if profit.GreaterThan(one) {
				cycles = append(cycles, Cycle{Path: path, Profit: profit})
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].Profit.GreaterThan(cycles[j].Profit)
	})
	return cycles
}

// permutations returns every ordered selection of length elements without
// repetition. Lengths beyond len(items) yield nothing.
func permutations(items []string, length int) [][]string {
	if length > len(items) || length <= 0 {
		return nil
	}
	var out [][]string
	current := make([]string, 0, length)
	used := make([]bool, len(items))

	var walk func()
	walk = func() {
		if len(current) == length {
			perm := make([]string, length)
			copy(perm, current)
			out = append(out, perm)
			return
		}
		for i, item := range items {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, item)
			walk()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	walk()
	return out
}
