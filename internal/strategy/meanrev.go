// Package strategy contains the per-cycle decision logic that converts a
// mid-price estimate and persisted history into sized order intents.
package strategy

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/book"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/state"
)

// MeanReversion trades a rolling z-score of the mid-price: buy when the
// current mid sits far below the rolling mean, sell when far above.
type MeanReversion struct {
	window  int
	baseQty int
	entry   float64
	log     zerolog.Logger
}

// NewMeanReversion builds the strategy, substituting defaults for
// non-positive parameters.
func NewMeanReversion(window, baseQty int, entry float64, log zerolog.Logger) *MeanReversion {
	if window <= 0 {
		window = 20
	}
	if baseQty <= 0 {
		baseQty = 10
	}
	if entry <= 0 {
		entry = 1.5
	}
	return &MeanReversion{window: window, baseQty: baseQty, entry: entry, log: log}
}

// Name returns the identifier for the strategy implementation.
func (s *MeanReversion) Name() string { return "MeanReversion" }

// Evaluate appends the current mid to the persisted series and, once a full
// window exists, trades on the standardized deviation from the rolling mean.
// The entry thresholds are strict: a z-score exactly on the boundary holds.
func (s *MeanReversion) Evaluate(product string, depth book.Depth, mid float64, st *state.State) []book.Order {
	st.MeanRevPrices = append(st.MeanRevPrices, mid)
	if len(st.MeanRevPrices) < s.window {
		return nil
	}

	recent := st.MeanRevPrices[len(st.MeanRevPrices)-s.window:]
	var sum float64
	for _, p := range recent {
		sum += p
	}
	mean := sum / float64(s.window)
	var sq float64
	for _, p := range recent {
		d := p - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(s.window))

	// A flat window yields no signal rather than a division fault.
	z := 0.0
	if std != 0 {
		z = (mid - mean) / std
	}
	s.log.Debug().Str("product", product).Float64("mid", mid).Float64("mean", mean).
		Float64("std", std).Float64("z", z).Msg("rolling window")

	scale := int(math.Abs(z) * 2)
	if scale < 1 {
		scale = 1
	}
	qty := s.baseQty * scale

	switch {
	case z < -s.entry:
		ask, ok := depth.BestAsk()
		if !ok {
			return nil
		}
		s.log.Info().Str("product", product).Int("qty", qty).Int("px", ask).Float64("z", z).Msg("oversold, buying")
		return []book.Order{{Product: product, Price: ask, Quantity: qty}}
	case z > s.entry:
		bid, ok := depth.BestBid()
		if !ok {
			return nil
		}
		s.log.Info().Str("product", product).Int("qty", qty).Int("px", bid).Float64("z", z).Msg("overbought, selling")
		return []book.Order{{Product: product, Price: bid, Quantity: -qty}}
	}
	return nil
}
