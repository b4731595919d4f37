package strategy

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/book"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/risk"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/state"
)

// Fitted offline; written into the trader-data blob on first use so the blob
// alone can reproduce every later cycle.
var defaultModelParams = state.ModelParams{
	Intercept:    0.39903304835706876,
	Coefficients: []float64{0.81988331, 0.1248814, 0.07095404, -0.01592438},
}

// Autoregressive predicts the next mid from a fixed-coefficient linear model
// over the last lag observations and trades toward the position limit when the
// prediction deviates from the current mid by more than a threshold.
type Autoregressive struct {
	lag       int
	baseQty   int
	threshold float64
	limits    risk.Limits
	log       zerolog.Logger
}

// NewAutoregressive builds the strategy, substituting defaults for
// non-positive parameters.
func NewAutoregressive(lag, baseQty int, threshold float64, maxPosition int, log zerolog.Logger) *Autoregressive {
	if lag <= 0 {
		lag = 4
	}
	if baseQty <= 0 {
		baseQty = 10
	}
	if threshold <= 0 {
		threshold = 1.0
	}
	if maxPosition <= 0 {
		maxPosition = 50
	}
	return &Autoregressive{
		lag:       lag,
		baseQty:   baseQty,
		threshold: threshold,
		limits:    risk.Limits{MaxPosition: maxPosition},
		log:       log,
	}
}

// Name returns the identifier for the strategy implementation.
func (s *Autoregressive) Name() string { return "Autoregressive" }

// predict applies the model to the trailing observations in storage order,
// oldest first.
func predict(params *state.ModelParams, recent []float64) float64 {
	predicted := params.Intercept
	for i, c := range params.Coefficients {
		if i >= len(recent) {
			break
		}
		predicted += c * recent[i]
	}
	return predicted
}

// Evaluate appends the current mid to the model history and, once lag
// observations exist, compares the model prediction against the mid. A
// deviation strictly beyond the threshold moves the position to the
// corresponding limit in a single order; anything else holds.
func (s *Autoregressive) Evaluate(product string, depth book.Depth, mid float64, st *state.State) []book.Order {
	if st.ModelParams == nil {
		coeffs := make([]float64, len(defaultModelParams.Coefficients))
		copy(coeffs, defaultModelParams.Coefficients)
		st.ModelParams = &state.ModelParams{Intercept: defaultModelParams.Intercept, Coefficients: coeffs}
	}
	st.ModelPrices = append(st.ModelPrices, mid)
	if len(st.ModelPrices) < s.lag {
		return nil
	}

	recent := st.ModelPrices[len(st.ModelPrices)-s.lag:]
	predicted := predict(st.ModelParams, recent)
	deviation := predicted - mid
	s.log.Debug().Str("product", product).Float64("predicted", predicted).
		Float64("mid", mid).Float64("deviation", deviation).Msg("model prediction")

	if math.Abs(deviation) <= s.threshold {
		s.log.Debug().Str("product", product).Msg("no significant signal, holding position")
		return nil
	}

	// Deviation-scaled size is diagnostic only; final sizing targets the
	// position limit below.
	scaled := int(float64(s.baseQty) * math.Abs(deviation))
	if scaled > s.limits.MaxPosition {
		scaled = s.limits.MaxPosition
	}

	if deviation > s.threshold {
		ask, ok := depth.BestAsk()
		if !ok {
			return nil
		}
		trade := s.limits.BuyCapacity(st.Position)
		if trade <= 0 {
			return nil
		}
		st.Position += trade
		s.log.Info().Str("product", product).Int("qty", trade).Int("px", ask).
			Int("scaled_qty", scaled).Int("position", st.Position).Msg("buying to long target")
		return []book.Order{{Product: product, Price: ask, Quantity: trade}}
	}

	bid, ok := depth.BestBid()
	if !ok {
		return nil
	}
	trade := s.limits.SellCapacity(st.Position)
	if trade <= 0 {
		return nil
	}
	st.Position -= trade
	s.log.Info().Str("product", product).Int("qty", trade).Int("px", bid).
		Int("scaled_qty", scaled).Int("position", st.Position).Msg("selling to short target")
	return []book.Order{{Product: product, Price: bid, Quantity: -trade}}
}
