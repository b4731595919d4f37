package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/arb"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/config"
	"github.com/ArivAhuja/IMC-Trading-Challenge/internal/util"
)

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	log := util.NewLogger(level)

	home := "SeaShells"
	maxHops := 5
	table := arb.DefaultTable()

	cfgPath := os.Getenv("TRADER_CONFIG")
	if cfgPath == "" {
		cfgPath = "internal/config/config.yaml"
	}
	if cfg, err := config.Load(cfgPath); err != nil {
		log.Warn().Err(err).Str("path", cfgPath).Msg("config unavailable, using built-in table")
	} else {
		if cfg.Arb.Home != "" {
			home = cfg.Arb.Home
		}
		if cfg.Arb.MaxHops > 0 {
			maxHops = cfg.Arb.MaxHops
		}
		if len(cfg.Arb.Rates) > 0 {
			loaded, err := arb.NewTable(cfg.Arb.Rates)
			if err != nil {
				log.Fatal().Err(err).Msg("bad rate table")
			}
			table = loaded
		}
	}

	cycles := arb.FindProfitable(table, home, maxHops)
	if len(cycles) == 0 {
		log.Info().Str("home", home).Msg("no profitable cycles")
		return
	}
	for _, cycle := range cycles {
		fmt.Printf("Cycle: %s, Profit: %s\n", strings.Join(cycle.Path, " -> "), cycle.Profit.StringFixed(2))
	}
}
