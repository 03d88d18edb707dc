package recommend

import (
	"errors"
	"fmt"

	"phoneFinder/business/pricing"
)

type Config struct {
	// default strategy when a query does not name one
	Strategy string
	TopK     int

	// explanation threshold for "highly rated"
	HighRating       float64
	RetailerPriority []string

	Compare CompareWeights
}

// CompareWeights parametrise the comparator's linear score:
// ram*RAM + rating*Rating - bestPrice/PriceDivisor.
type CompareWeights struct {
	RAM          float64
	Rating       float64
	PriceDivisor float64
}

const (
	defaultTopK         = 5
	defaultRAMWeight    = 2.0
	defaultRatingWeight = 3.0
	defaultPriceDivisor = 10000.0
)

func DefaultConfig() Config {
	return Config{
		Strategy:         StrategySimilarity,
		TopK:             defaultTopK,
		HighRating:       pricing.DefaultHighRating,
		RetailerPriority: pricing.DefaultPriority(),
		Compare: CompareWeights{
			RAM:          defaultRAMWeight,
			Rating:       defaultRatingWeight,
			PriceDivisor: defaultPriceDivisor,
		},
	}
}

func (c Config) Validate() error {
	if _, err := strategyByName(c.Strategy); err != nil {
		return err
	}
	if c.TopK <= 0 {
		return errors.New("top_k must be positive")
	}
	if c.HighRating <= 0 || c.HighRating > 5 {
		return fmt.Errorf("high_rating %.2f must be within (0, 5]", c.HighRating)
	}
	if err := pricing.ValidatePriority(c.RetailerPriority); err != nil {
		return err
	}
	if c.Compare.PriceDivisor <= 0 {
		return errors.New("compare price_divisor must be positive")
	}
	return nil
}
