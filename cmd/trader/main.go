package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/book"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/config"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/engine"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/metrics"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/record"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/strategy"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/util"
)

// cycleRequest is one harness invocation: the books, the blob returned by the
// previous cycle, and free-form observations used only for diagnostics.
type cycleRequest struct {
	OrderDepths  book.Snapshot `json:"order_depths"`
	TraderData   string        `json:"trader_data"`
	Observations string        `json:"observations"`
}

func main() {
	_ = godotenv.Load()

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	log := util.NewLogger(level)

	cfgPath := os.Getenv("TRADER_CONFIG")
	if cfgPath == "" {
		cfgPath = "internal/config/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfgPath).Msg("load config")
	}
	if os.Getenv("LOG_LEVEL") == "" && cfg.App.LogLevel != "" {
		log = util.NewLogger(cfg.App.LogLevel)
	}

	_ = metrics.Serve(cfg.App.MetricsAddr)
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	params := strategy.Params{
		Window:      cfg.Strategy.Params.Window,
		BaseQty:     cfg.Strategy.Params.BaseQty,
		Entry:       cfg.Strategy.Params.Entry,
		Lag:         cfg.Strategy.Params.Lag,
		Threshold:   cfg.Strategy.Params.Threshold,
		MaxPosition: cfg.Strategy.Params.MaxPosition,
	}
	strat := strategy.Build(cfg.Strategy.Mode, params, log)
	eng := engine.New(cfg.Engine.TargetProduct, strat, log)
	log.Info().Str("strategy", strat.Name()).Str("target", cfg.Engine.TargetProduct).Msg("engine ready")

	var rec *record.JSONLRecorder
	if cfg.Engine.RecordPath != "" {
		rec, err = record.NewJSONLRecorder(cfg.Engine.RecordPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Engine.RecordPath).Msg("open recorder")
		}
		defer rec.Close()
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	out := json.NewEncoder(os.Stdout)

	cycle := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var req cycleRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("bad cycle request")
			continue
		}

		result := eng.Run(req.OrderDepths, req.TraderData, req.Observations)
		cycle++
		if rec != nil {
			rec.Record(record.Entry{
				Cycle:       cycle,
				Orders:      result.Orders,
				Conversions: result.Conversions,
				Ts:          time.Now().UTC(),
			})
		}
		if err := out.Encode(result); err != nil {
			log.Error().Err(err).Msg("write result")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("read stdin")
	}
	log.Info().Int("cycles", cycle).Msg("input drained")
}
