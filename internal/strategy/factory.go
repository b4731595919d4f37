package strategy

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/book"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/state"
)

// Strategy turns one cycle's market view into order intents, mutating the
// persisted state it is handed. Implementations emit at most one order per
// cycle and must stay reproducible from (depth, mid, state) alone.
type Strategy interface {
	Name() string
	Evaluate(product string, depth book.Depth, mid float64, st *state.State) []book.Order
}

// Params expresses tunable knobs required by strategy constructors.
type Params struct {
	Window      int
	BaseQty     int
	Entry       float64
	Lag         int
	Threshold   float64
	MaxPosition int
}

// Build returns a strategy implementation matching the configured mode.
func Build(mode string, params Params, log zerolog.Logger) Strategy {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "meanrev", "mean_reversion", "zscore":
		return NewMeanReversion(params.Window, params.BaseQty, params.Entry, log)
	case "ar", "model", "autoregressive":
		return NewAutoregressive(params.Lag, params.BaseQty, params.Threshold, params.MaxPosition, log)
	default:
		return NewMeanReversion(params.Window, params.BaseQty, params.Entry, log)
	}
}
