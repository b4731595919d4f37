// Package state serializes the trader-data blob that carries strategy history
// between otherwise stateless decision cycles.
package state

import (
	"encoding/json"
	"fmt"
)

// JSON keys owned by this engine inside the trader-data blob.
const (
	keyMeanRevPrices = "rainforest_prices"
	keyModelPrices   = "model_history"
	keyPosition      = "position"
	keyModelParams   = "model_params"
)

// ModelParams is the fitted autoregressive model carried inside the blob.
// Coefficients apply to the trailing observations oldest-first.
type ModelParams struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// State is the decoded trader-data blob. Exactly one strategy mutates it per
// cycle. Top-level keys this engine does not own are captured verbatim and
// written back on Encode so harness extensions survive a read-modify-write.
type State struct {
	MeanRevPrices []float64
	ModelPrices   []float64
	Position      int
	ModelParams   *ModelParams

	extra map[string]json.RawMessage
}

// Decode parses a trader-data blob. Any parse failure, an empty blob, or a
// missing key yields an empty default for the affected field only; decoding
// never fails the cycle.
func Decode(blob string) *State {
	st := &State{}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return st
	}
	for key, msg := range raw {
		switch key {
		case keyMeanRevPrices:
			if json.Unmarshal(msg, &st.MeanRevPrices) != nil {
				st.MeanRevPrices = nil
			}
		case keyModelPrices:
			if json.Unmarshal(msg, &st.ModelPrices) != nil {
				st.ModelPrices = nil
			}
		case keyPosition:
			if json.Unmarshal(msg, &st.Position) != nil {
				st.Position = 0
			}
		case keyModelParams:
			var params ModelParams
			if json.Unmarshal(msg, &params) == nil {
				st.ModelParams = &params
			}
		default:
			if st.extra == nil {
				st.extra = make(map[string]json.RawMessage)
			}
			st.extra[key] = msg
		}
	}
	return st
}

// Encode serializes the state back into a blob. Fields never touched by a
// strategy stay absent so Decode(Encode(s)) reproduces s exactly.
func (s *State) Encode() (string, error) {
	out := make(map[string]any, len(s.extra)+4)
	for key, msg := range s.extra {
		out[key] = msg
	}
	if s.MeanRevPrices != nil {
		out[keyMeanRevPrices] = s.MeanRevPrices
	}
	if s.ModelPrices != nil {
		out[keyModelPrices] = s.ModelPrices
		out[keyPosition] = s.Position
	} else if s.Position != 0 {
		out[keyPosition] = s.Position
	}
	if s.ModelParams != nil {
		out[keyModelParams] = s.ModelParams
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshal trader data: %w", err)
	}
	return string(data), nil
}
