package config

import (
	"math/rand"
	"path/filepath"
)

import (
	"github.com/timtadh/incmax/stores/bytes_int"
)

type Config struct {
	Cache         string
	Output        string
	UseNovelty    bool
	MinNovelty    float64
	MinSupport    float64
	MinConfidence float64
	Maximal       bool
	Novelty       string
	Formula       string
	BatchSize     int
	Delimiter     rune
}

// Default is the configuration the command line starts from.
func Default() *Config {
	return &Config{
		UseNovelty:    true,
		MinNovelty:    .5,
		MinSupport:    .2,
		MinConfidence: .5,
		Novelty:       "coverage",
		Formula:       "consequent",
		Delimiter:     '\t',
	}
}

func (c *Config) Copy() *Config {
	n := *c
	return &n
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) BytesIntMultiMap(name string) (bytes_int.MultiMap, error) {
	if c.Cache == "" {
		return bytes_int.AnonBpTree()
	} else {
		return bytes_int.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
