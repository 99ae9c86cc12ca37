// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of defaults and
// settings bound from the command line
type Config struct {
	// the number of top clusters "topn" keeps
	TopN int `mapstructure:"cluster-number"`

	// the minimum number of sequences a cluster needs for "filtern" to keep it
	FilterMin int `mapstructure:"filter-number"`
}

// New returns a new Config struct populated by Viper settings
// (defaults and/or command line arguments)
func New() Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}
	return c
}

func init() {
	viper.SetDefault("cluster-number", 500)
	viper.SetDefault("filter-number", 20)
}
