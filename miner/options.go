package miner

import (
	"fmt"
	"math"
)

import (
	"github.com/timtadh/incmax/config"
	"github.com/timtadh/incmax/novelty"
	"github.com/timtadh/incmax/rules"
)

type Options struct {
	UseNovelty    bool
	MinNovelty    float64
	MinSupport    float64
	MinConfidence float64
	Maximal       bool
	Novelty       string
	Formula       rules.Formula
}

func NewOptions(conf *config.Config) (*Options, error) {
	ratios := []struct {
		name  string
		value float64
	}{
		{"support", conf.MinSupport},
		{"confidence", conf.MinConfidence},
		{"novelty", conf.MinNovelty},
	}
	for _, r := range ratios {
		if math.IsNaN(r.value) || r.value < 0 || r.value > 1 {
			return nil, &BadOption{Name: r.name, Value: r.value}
		}
	}
	formula, err := rules.ParseFormula(conf.Formula)
	if err != nil {
		return nil, &BadOption{Name: "confidence-formula", Value: conf.Formula}
	}
	if !validScorer(conf.Novelty) {
		return nil, &BadOption{Name: "novelty-metric", Value: conf.Novelty}
	}
	o := &Options{
		UseNovelty:    conf.UseNovelty,
		MinNovelty:    conf.MinNovelty,
		MinSupport:    conf.MinSupport,
		MinConfidence: conf.MinConfidence,
		Maximal:       conf.Maximal,
		Novelty:       conf.Novelty,
		Formula:       formula,
	}
	return o, nil
}

func validScorer(name string) bool {
	if name == "" {
		return true
	}
	for _, s := range novelty.Scorers {
		if s == name {
			return true
		}
	}
	return false
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("'%v'", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
