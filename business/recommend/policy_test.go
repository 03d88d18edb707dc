package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"phoneFinder/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, StrategySimilarity, cfg.Strategy)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, 4.5, cfg.HighRating)
	assert.Equal(t, []string{"Amazon", "Flipkart", "Croma"}, cfg.RetailerPriority)
	assert.Equal(t, CompareWeights{RAM: 2, Rating: 3, PriceDivisor: 10000}, cfg.Compare)
}

func TestParsePolicy_Overlay(t *testing.T) {
	raw := []byte(`
strategy: value
top_k: 3
retailer_priority: [Croma, Flipkart, Amazon]
compare:
  rating_weight: 4
`)
	cfg, err := ParsePolicy(raw, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, StrategyValue, cfg.Strategy)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, 4.5, cfg.HighRating, "absent keys keep defaults")
	assert.Equal(t, []string{"Croma", "Flipkart", "Amazon"}, cfg.RetailerPriority)
	assert.Equal(t, 2.0, cfg.Compare.RAM)
	assert.Equal(t, 4.0, cfg.Compare.Rating)
	assert.Equal(t, 10000.0, cfg.Compare.PriceDivisor)
}

func TestParsePolicy_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":         "strategy: [",
		"unknown strategy": "strategy: popularity",
		"zero top_k":       "top_k: 0",
		"rating too high":  "high_rating: 6",
		"partial priority": "retailer_priority: [Amazon]",
		"zero divisor":     "compare:\n  price_divisor: 0",
		"unknown retailer": "retailer_priority: [Amazon, Flipkart, Reliance]",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePolicy([]byte(raw), DefaultConfig())
			assert.Error(t, err)
		})
	}

	_, err := ParsePolicy([]byte("strategy: popularity"), DefaultConfig())
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestLoadPolicy_File(t *testing.T) {
	cfg, err := LoadPolicy("", DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("high_rating: 4\n"), 0o600))

	cfg, err = LoadPolicy(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.HighRating)

	_, err = LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml"), DefaultConfig())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPolicy_ShippedFileMatchesDefaults(t *testing.T) {
	cfg, err := LoadPolicy(filepath.Join("..", "..", "data", "scoring.yaml"), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
