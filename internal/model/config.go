package model

// AlgorithmConfig holds the tunable parameters of one GA run. Zero-value
// fields are filled in by Normalize with the defaults from spec.md's
// parameter table.
type AlgorithmConfig struct {
	PopulationSize         int     `json:"population_size"`
	MutationRate           float64 `json:"mutation_rate"`
	ElitismRate            float64 `json:"elitism_rate"`
	TournamentSize         int     `json:"tournament_size"`
	MaxStagnantGenerations int     `json:"max_stagnant_generations"`
	MaxGenerations         int     `json:"max_generations"`
	// AssumedSpeedKPH converts route distance into an estimated time.
	AssumedSpeedKPH float64 `json:"assumed_speed_kph"`
}

// DefaultAlgorithmConfig returns the spec.md default parameter set. Callers
// typically start from this and override only what they care about.
func DefaultAlgorithmConfig() AlgorithmConfig {
	return AlgorithmConfig{
		PopulationSize:         50,
		MutationRate:           0.30,
		ElitismRate:            0.20,
		TournamentSize:         5,
		MaxStagnantGenerations: 20,
		MaxGenerations:         200,
		AssumedSpeedKPH:        30,
	}
}

// Normalize fills in zero-value fields with defaults and enforces the
// population floor (max(user_value, 50)) spec.md's config table requires.
// It never lowers an explicitly set value.
func (c AlgorithmConfig) Normalize() AlgorithmConfig {
	d := DefaultAlgorithmConfig()

	if c.PopulationSize < 50 {
		c.PopulationSize = 50
	}
	if c.MutationRate == 0 {
		c.MutationRate = d.MutationRate
	}
	if c.ElitismRate == 0 {
		c.ElitismRate = d.ElitismRate
	}
	if c.TournamentSize == 0 {
		c.TournamentSize = d.TournamentSize
	}
	if c.MaxStagnantGenerations == 0 {
		c.MaxStagnantGenerations = d.MaxStagnantGenerations
	}
	if c.AssumedSpeedKPH == 0 {
		c.AssumedSpeedKPH = d.AssumedSpeedKPH
	}
	// MaxGenerations is caller-supplied with no default floor; a caller
	// that truly wants 0 generations gets the best initial seed back.

	return c
}
