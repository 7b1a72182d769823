// Package config loads AlgorithmConfig and the handful of runtime scalars
// cmd/ga-solve needs (database path, random seed). Grounded on the
// teacher's cmd/server/main.go getEnv helper for simple scalar overrides,
// enriched with spf13/viper (borrowed from the sibling Hintro pack repo,
// which configures its backend the same layered way) so AlgorithmConfig can
// also come from a config file when one is present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"morningrun-router/internal/model"
)

// RuntimeConfig is everything cmd/ga-solve needs besides the problem
// itself: where to read/write state, and what seed to run with.
type RuntimeConfig struct {
	DatabasePath string
	Seed         int64
	Algorithm    model.AlgorithmConfig
}

// Load reads configFile (if it exists) via viper, layers environment
// variable overrides on top the way the teacher's getEnv does, and returns
// a fully normalized RuntimeConfig. configFile may be empty, in which case
// only environment variables and defaults apply.
func Load(configFile string) (RuntimeConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("database_path", "morningrun-router.db")
	v.SetDefault("seed", time.Now().UnixNano())
	v.SetDefault("population_size", model.DefaultAlgorithmConfig().PopulationSize)
	v.SetDefault("mutation_rate", model.DefaultAlgorithmConfig().MutationRate)
	v.SetDefault("elitism_rate", model.DefaultAlgorithmConfig().ElitismRate)
	v.SetDefault("tournament_size", model.DefaultAlgorithmConfig().TournamentSize)
	v.SetDefault("max_stagnant_generations", model.DefaultAlgorithmConfig().MaxStagnantGenerations)
	v.SetDefault("max_generations", model.DefaultAlgorithmConfig().MaxGenerations)
	v.SetDefault("assumed_speed_kph", model.DefaultAlgorithmConfig().AssumedSpeedKPH)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !os.IsNotExist(err) {
				return RuntimeConfig{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
			}
		}
	}

	applyEnvOverride(v, "database_path", "DATABASE_PATH", nil)
	applyEnvOverride(v, "seed", "GA_SEED", parseInt64)
	applyEnvOverride(v, "population_size", "GA_POPULATION_SIZE", parseInt)
	applyEnvOverride(v, "max_generations", "GA_MAX_GENERATIONS", parseInt)

	cfg := RuntimeConfig{
		DatabasePath: v.GetString("database_path"),
		Seed:         v.GetInt64("seed"),
		Algorithm: model.AlgorithmConfig{
			PopulationSize:         v.GetInt("population_size"),
			MutationRate:           v.GetFloat64("mutation_rate"),
			ElitismRate:            v.GetFloat64("elitism_rate"),
			TournamentSize:         v.GetInt("tournament_size"),
			MaxStagnantGenerations: v.GetInt("max_stagnant_generations"),
			MaxGenerations:         v.GetInt("max_generations"),
			AssumedSpeedKPH:        v.GetFloat64("assumed_speed_kph"),
		}.Normalize(),
	}

	return cfg, nil
}

// applyEnvOverride mirrors the teacher's getEnv("KEY", default) pattern:
// if envKey is set, it overrides key in v, parsed by parse if given
// (nil means "store the raw string").
func applyEnvOverride(v *viper.Viper, key, envKey string, parse func(string) (interface{}, error)) {
	raw, ok := os.LookupEnv(envKey)
	if !ok || raw == "" {
		return
	}
	if parse == nil {
		v.Set(key, raw)
		return
	}
	parsed, err := parse(raw)
	if err != nil {
		return
	}
	v.Set(key, parsed)
}

func parseInt64(s string) (interface{}, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseInt(s string) (interface{}, error) {
	return strconv.Atoi(s)
}
