// Package engine orchestrates one decision cycle from order-book snapshot to
// order intents plus the carried-forward trader-data blob.
package engine

import (
	"github.com/rs/zerolog"

	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/book"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/metrics"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/state"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/strategy"
)

// DefaultTarget is the instrument acted on when none is configured.
const DefaultTarget = "RAINFOREST_RESIN"

// Result is everything a cycle returns to the harness. Orders carries one
// entry per snapshot instrument; Conversions is fixed at 1 in this design.
type Result struct {
	Orders      map[string][]book.Order `json:"orders"`
	Conversions int                     `json:"conversions"`
	TraderData  string                  `json:"trader_data"`
}

// Engine runs a single configured strategy against one target instrument.
type Engine struct {
	target string
	strat  strategy.Strategy
	log    zerolog.Logger
}

// New builds an engine around the given strategy.
func New(target string, strat strategy.Strategy, log zerolog.Logger) *Engine {
	if target == "" {
		target = DefaultTarget
	}
	return &Engine{target: target, strat: strat, log: log}
}

// Run executes one decision cycle. Every instrument present in the snapshot
// other than the target maps to an empty order list; the target gets whatever
// the strategy emits. When the target is absent or its book is empty the
// trader data passes through unchanged. Observations feed diagnostics only.
func (e *Engine) Run(snapshot book.Snapshot, traderData, observations string) Result {
	metrics.CyclesTotal.Inc()
	e.log.Debug().Str("trader_data", traderData).Str("observations", observations).Msg("cycle start")

	result := Result{
		Orders:      make(map[string][]book.Order, len(snapshot)),
		Conversions: 1,
		TraderData:  traderData,
	}
	for product := range snapshot {
		if product != e.target {
			result.Orders[product] = []book.Order{}
		}
	}

	depth, ok := snapshot[e.target]
	if !ok {
		return result
	}

	mid, ok := depth.Mid()
	if !ok {
		result.Orders[e.target] = []book.Order{}
		return result
	}

	st := state.Decode(traderData)
	orders := e.strat.Evaluate(e.target, depth, mid, st)
	if orders == nil {
		orders = []book.Order{}
	}
	for _, order := range orders {
		side := "BUY"
		if order.Quantity < 0 {
			side = "SELL"
		}
		metrics.OrdersTotal.WithLabelValues(order.Product, side).Inc()
	}

	encoded, err := st.Encode()
	if err != nil {
		// Never fail the cycle; fall back to the prior blob.
		e.log.Error().Err(err).Msg("encode trader data")
		encoded = traderData
	}
	result.Orders[e.target] = orders
	result.TraderData = encoded
	return result
}
