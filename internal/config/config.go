package config

import (
	"errors"
	"fmt"
	"holdem-server/internal/util"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr"`
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	JWT struct {
		Secret string        `yaml:"secret"`
		TTL    time.Duration `yaml:"ttl"`
	} `yaml:"jwt"`
	Game struct {
		StartingStack  int `yaml:"startingStack" envconfig:"starting_stack"`
		SmallBlind     int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind       int `yaml:"bigBlind" envconfig:"big_blind"`
		OrbitsPerLevel int `yaml:"orbitsPerLevel" envconfig:"orbits_per_level"`
		RevealDelayMS  int `yaml:"revealDelayMs" envconfig:"reveal_delay_ms"`
		MaxPlayers     int `yaml:"maxPlayers" envconfig:"max_players"`
	} `yaml:"game"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Addr = ":5000"
	cfg.Log.Level = "info"
	cfg.JWT.TTL = time.Hour * 12
	cfg.Game.StartingStack = 1000
	cfg.Game.SmallBlind = 10
	cfg.Game.BigBlind = 20
	cfg.Game.OrbitsPerLevel = 2
	cfg.Game.RevealDelayMS = 500
	cfg.Game.MaxPlayers = 10

	return cfg
}

// RevealDelay returns how long to pause around a showdown
func (c Config) RevealDelay() time.Duration {
	return time.Millisecond * time.Duration(c.Game.RevealDelayMS)
}

// Load will load the configuration
// The YAML file is optional; environment variables prefixed with HOLDEM_ override it.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	case !os.IsNotExist(err):
		return err
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
