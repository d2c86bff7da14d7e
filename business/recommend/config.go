package recommend

// Weights are the per-attribute similarity weights. A candidate earns the
// weight for every attribute it shares with the seed client.
type Weights struct {
	SameCountry     int
	SameNationality int
	SameCity        int
	SameGender      int
}

// MaxScore is the highest score a candidate can earn against a single seed.
func (w Weights) MaxScore() int {
	return w.SameCountry + w.SameNationality + w.SameCity + w.SameGender
}

type Config struct {
	Weights Weights

	// DedupeSeeds drops duplicate seed ids before aggregation. The historical
	// behavior lets duplicates contribute twice, so this defaults to false.
	DedupeSeeds bool
}

const (
	defaultWeightSameCountry     = 1
	defaultWeightSameNationality = 3
	defaultWeightSameCity        = 5
	defaultWeightSameGender      = 3
)

func DefaultWeights() Weights {
	return Weights{
		SameCountry:     defaultWeightSameCountry,
		SameNationality: defaultWeightSameNationality,
		SameCity:        defaultWeightSameCity,
		SameGender:      defaultWeightSameGender,
	}
}

func DefaultConfig() Config {
	return Config{
		Weights:     DefaultWeights(),
		DedupeSeeds: false,
	}
}
