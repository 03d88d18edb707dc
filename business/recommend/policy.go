package recommend

import (
	"fmt"
	"os"

	"phoneFinder/pkg/logger"

	"gopkg.in/yaml.v3"
)

// policyFile mirrors the YAML scoring policy. Pointer fields tell an
// absent key apart from a zero value.
type policyFile struct {
	Strategy         *string  `yaml:"strategy"`
	TopK             *int     `yaml:"top_k"`
	HighRating       *float64 `yaml:"high_rating"`
	RetailerPriority []string `yaml:"retailer_priority"`
	Compare          struct {
		RAMWeight    *float64 `yaml:"ram_weight"`
		RatingWeight *float64 `yaml:"rating_weight"`
		PriceDivisor *float64 `yaml:"price_divisor"`
	} `yaml:"compare"`
}

// LoadPolicy overlays the YAML file at path onto base. An empty path
// returns base unchanged.
func LoadPolicy(path string, base Config) (Config, error) {
	if path == "" {
		return base, base.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scoring policy: %w", err)
	}

	cfg, err := ParsePolicy(raw, base)
	if err != nil {
		return Config{}, fmt.Errorf("scoring policy %s: %w", path, err)
	}

	logger.Info("scoring policy loaded",
		"path", path,
		"strategy", cfg.Strategy,
		"top_k", cfg.TopK,
		"retailer_priority", cfg.RetailerPriority,
	)

	return cfg, nil
}

// ParsePolicy overlays raw YAML onto base and validates the result.
func ParsePolicy(raw []byte, base Config) (Config, error) {
	var f policyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}

	cfg := base
	if f.Strategy != nil {
		cfg.Strategy = *f.Strategy
	}
	if f.TopK != nil {
		cfg.TopK = *f.TopK
	}
	if f.HighRating != nil {
		cfg.HighRating = *f.HighRating
	}
	if len(f.RetailerPriority) > 0 {
		cfg.RetailerPriority = append([]string(nil), f.RetailerPriority...)
	}
	if f.Compare.RAMWeight != nil {
		cfg.Compare.RAM = *f.Compare.RAMWeight
	}
	if f.Compare.RatingWeight != nil {
		cfg.Compare.Rating = *f.Compare.RatingWeight
	}
	if f.Compare.PriceDivisor != nil {
		cfg.Compare.PriceDivisor = *f.Compare.PriceDivisor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
