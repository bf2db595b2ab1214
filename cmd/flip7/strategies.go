package main

import (
	"fmt"

	"github.com/lox/flip7/internal/config"
	"github.com/lox/flip7/internal/display"
	"github.com/lox/flip7/internal/league"
)

type StrategiesCmd struct {
	Config string `default:"strategies.hcl" env:"FLIP7_CONFIG" type:"path" help:"Strategy config (HCL or JSON)"`
}

func (c *StrategiesCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	strategies := league.Combine(cfg)
	fmt.Print(display.RenderStrategies(strategies))
	fmt.Printf("\n%d strategies\n", len(strategies))
	return nil
}
