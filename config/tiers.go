package config

import (
	_ "embed"
	"fmt"
	"os"

	"contentflow/internal/tier"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_tiers.toml
var sampleTiers string

// SampleTiers is a commented tier file matching the built-in chain.
func SampleTiers() string { return sampleTiers }

type tiersFile struct {
	PublishedPrefix *string     `toml:"published_prefix"`
	Tiers           []tier.Tier `toml:"tiers"`
}

// LoadTiers returns the built-in chain, overridden by path when set. A file
// that lists tiers replaces the whole chain.
func LoadTiers(path string) (tier.Chain, error) {
	chain := tier.Default()
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return tier.Chain{}, fmt.Errorf("open tiers: %w", err)
		}
		defer file.Close()

		var f tiersFile
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&f); err != nil {
			return tier.Chain{}, fmt.Errorf("parse tiers: %w", err)
		}
		if len(f.Tiers) > 0 {
			chain.Tiers = f.Tiers
		}
		if f.PublishedPrefix != nil {
			chain.PublishedPrefix = *f.PublishedPrefix
		}
	}

	for i := range chain.Tiers {
		if chain.Tiers[i].Forward.Mode == "" {
			chain.Tiers[i].Forward.Mode = tier.ModeReplace
		}
		if chain.Tiers[i].Role == "" {
			chain.Tiers[i].Role = chain.Tiers[i].Name
		}
	}
	if err := chain.Validate(); err != nil {
		return tier.Chain{}, fmt.Errorf("tiers: %w", err)
	}
	return chain, nil
}
