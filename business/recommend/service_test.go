package recommend

import (
	"context"
	"testing"

	"phoneFinder/business/catalog"
	"phoneFinder/business/pricing"
	"phoneFinder/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhone(model string, price, ram, storage, rating float64, usage string, amazon, flipkart, croma float64) domain.Phone {
	return domain.Phone{
		Model: model, Price: price, RAM: ram, Storage: storage, Rating: rating, Usage: usage,
		Retailers: map[string]domain.RetailerOffer{
			domain.RetailerAmazon:   {Price: amazon, Link: "https://amazon.example/" + model},
			domain.RetailerFlipkart: {Price: flipkart, Link: "https://flipkart.example/" + model},
			domain.RetailerCroma:    {Price: croma, Link: "https://croma.example/" + model},
		},
	}
}

func fixturePhones() []domain.Phone {
	return []domain.Phone{
		testPhone("Alpha", 12000, 4, 64, 4.0, "student", 12000, 11500, 12500),
		testPhone("Bravo", 18000, 6, 128, 4.3, "student", 17500, 18000, 18000),
		testPhone("Charlie", 25000, 8, 128, 4.5, "gaming", 24000, 24000, 25000),
		testPhone("Delta", 32000, 8, 256, 4.6, "gaming", 32000, 31000, 31000),
		testPhone("Echo", 45000, 12, 256, 4.7, "gaming", 44000, 45000, 43000),
		testPhone("Foxtrot", 22000, 6, 128, 4.1, "office", 22000, 21000, 22000),
		testPhone("Golf", 28000, 8, 256, 4.4, "office", 27500, 28000, 27000),
		testPhone("Hotel", 15000, 6, 64, 3.9, "student", 15000, 15000, 14500),
	}
}

func newTestService(t *testing.T, phones []domain.Phone, mutate func(*Config)) *Service {
	t.Helper()

	cat, err := catalog.New(phones)
	require.NoError(t, err)
	snap, err := NewSnapshot(cat)
	require.NoError(t, err)

	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	pricer, err := pricing.NewAggregator(cfg.RetailerPriority, cfg.HighRating)
	require.NoError(t, err)

	svc, err := NewService(snap, pricer, cfg)
	require.NoError(t, err)
	return svc
}

func models(results []domain.ScoredResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Model
	}
	return out
}

func TestRecommend_SimilarityOrdering(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)

	results, err := svc.Recommend(context.Background(), domain.UserQuery{Budget: 30000, RAM: 6, Usage: "gaming"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Charlie", "Golf", "Foxtrot", "Bravo", "Hotel"}, models(results))

	first := results[0]
	assert.InDelta(t, 0.9189, first.Score, 1e-4)
	assert.Equal(t, StrategySimilarity, first.Strategy)
	// Amazon and Flipkart tie at 24000; Amazon comes first in priority
	assert.Equal(t, domain.RetailerAmazon, first.BestRetailer)
	assert.Equal(t, 24000.0, first.BestPrice)
	assert.Equal(t, "https://croma.example/Charlie", first.Links[domain.RetailerCroma])
	assert.NotEmpty(t, first.Reason)
}

func TestRecommend_SimilarityFiltersAndTopK(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)

	queries := []domain.UserQuery{
		{Budget: 50000, RAM: 0, Usage: "student"},
		{Budget: 20000, RAM: 4, Usage: "office"},
		{Budget: 100000, RAM: 8, Usage: "gaming"},
		{Budget: 26000, RAM: 6, Usage: "student"},
	}

	for _, q := range queries {
		results, err := svc.Recommend(context.Background(), q)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), 5)

		for i, r := range results {
			assert.LessOrEqual(t, r.Price, q.Budget, r.Model)
			assert.GreaterOrEqual(t, r.RAM, q.RAM, r.Model)
			if i > 0 {
				assert.GreaterOrEqual(t, results[i-1].Score, r.Score)
			}
		}
	}

	results, err := svc.Recommend(context.Background(), queries[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"Foxtrot", "Bravo", "Golf", "Alpha", "Hotel"}, models(results))
}

func TestRecommend_EmptyResultIsNotAnError(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)

	results, err := svc.Recommend(context.Background(), domain.UserQuery{Budget: 0, RAM: 0, Usage: "student"})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results, err = svc.Recommend(context.Background(), domain.UserQuery{Budget: 100000, RAM: 16, Usage: "gaming", Strategy: StrategyValue})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecommend_UnknownUsageRejected(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)

	for _, strategy := range StrategyNames() {
		_, err := svc.Recommend(context.Background(), domain.UserQuery{Budget: 30000, RAM: 4, Usage: "photography", Strategy: strategy})
		assert.ErrorIs(t, err, domain.ErrUnknownCategory, strategy)
	}
}

func TestRecommend_InvalidQuery(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)

	_, err := svc.Recommend(context.Background(), domain.UserQuery{Budget: -1, RAM: 4, Usage: "student"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = svc.Recommend(context.Background(), domain.UserQuery{Budget: 1000, RAM: -4, Usage: "student"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = svc.Recommend(context.Background(), domain.UserQuery{Budget: 1000, RAM: 4, Usage: "student", Strategy: "popularity"})
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestRecommend_CanceledContext(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Recommend(ctx, domain.UserQuery{Budget: 30000, RAM: 4, Usage: "student"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommend_ValueStrategy(t *testing.T) {
	svc := newTestService(t, fixturePhones(), func(c *Config) { c.Strategy = StrategyValue })
	assert.Equal(t, StrategyValue, svc.DefaultStrategy())

	q := domain.UserQuery{Budget: 50000, RAM: 4, Usage: "student"}
	results, err := svc.Recommend(context.Background(), q)
	require.NoError(t, err)

	// 4.0/12000 > 3.9/15000 > 4.3/18000
	assert.Equal(t, []string{"Alpha", "Hotel", "Bravo"}, models(results))
	for _, r := range results {
		assert.Equal(t, "student", r.Usage)
		assert.Equal(t, StrategyValue, r.Strategy)
		assert.InDelta(t, r.Rating/r.Price, r.Score, 1e-15)
	}
}

func TestRecommend_ValueStrategyZeroPriceAndTies(t *testing.T) {
	phones := []domain.Phone{
		testPhone("Free", 0, 4, 64, 4.0, "office", 0, 0, 0),
		testPhone("Mid", 10000, 4, 64, 4.0, "office", 10000, 10000, 10000),
		testPhone("Better", 12500, 4, 64, 5.0, "office", 12500, 12500, 12500),
		testPhone("Twin-B", 20000, 4, 64, 4.0, "office", 20000, 20000, 20000),
		testPhone("Twin-A", 20000, 4, 64, 4.0, "office", 20000, 20000, 20000),
	}
	svc := newTestService(t, phones, nil)

	results, err := svc.Recommend(context.Background(), domain.UserQuery{Budget: 20000, RAM: 4, Usage: "office", Strategy: "VALUE"})
	require.NoError(t, err)

	// equal value scores break on rating, then on model id
	assert.Equal(t, []string{"Better", "Mid", "Twin-A", "Twin-B", "Free"}, models(results))
	assert.Equal(t, 0.0, results[len(results)-1].Score)
}

func TestRecommend_SimilarityTieBreak(t *testing.T) {
	phones := []domain.Phone{
		testPhone("Zeta", 20000, 8, 128, 4.0, "gaming", 20000, 20000, 20000),
		testPhone("Beta", 20000, 8, 128, 4.0, "gaming", 20000, 20000, 20000),
		testPhone("Low", 10000, 4, 64, 3.0, "office", 10000, 10000, 10000),
	}
	svc := newTestService(t, phones, func(c *Config) { c.TopK = 2 })

	results, err := svc.Recommend(context.Background(), domain.UserQuery{Budget: 20000, RAM: 8, Usage: "gaming"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []string{"Beta", "Zeta"}, models(results))
	assert.Equal(t, results[0].Score, results[1].Score)
}

func TestRecommend_SharedSnapshotIsDeterministic(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)
	q := domain.UserQuery{Budget: 100000, RAM: 0, Usage: "office"}

	first, err := svc.Recommend(context.Background(), q)
	require.NoError(t, err)

	done := make(chan []domain.ScoredResult, 8)
	for range 8 {
		go func() {
			res, _ := svc.Recommend(context.Background(), q)
			done <- res
		}()
	}
	for range 8 {
		assert.Equal(t, models(first), models(<-done))
	}
	assert.Equal(t, []string{"Foxtrot", "Echo", "Delta", "Golf", "Charlie"}, models(first))
}

func TestDebugRecommend(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)

	dbg, err := svc.DebugRecommend(context.Background(), domain.UserQuery{Budget: 50000, RAM: 0, Usage: "student"})
	require.NoError(t, err)

	assert.Equal(t, StrategySimilarity, dbg.Strategy)
	assert.Equal(t, 2, dbg.UsageCode)
	assert.Len(t, dbg.QueryRaw, 5)
	assert.Len(t, dbg.QueryScaled, 5)
	assert.Equal(t, []string{"price", "ram", "storage", "rating", "usage"}, dbg.FeatureNames)
	assert.Equal(t, 8, dbg.Matched)
	assert.Equal(t, 8, dbg.CatalogSize)
	require.Len(t, dbg.Results, 5)
	assert.Equal(t, "Foxtrot", dbg.Results[0].Model)
	assert.Len(t, dbg.Results[0].Scaled, 5)

	_, err = svc.DebugRecommend(context.Background(), domain.UserQuery{Budget: 50000, Usage: "unknown"})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestService_Usages(t *testing.T) {
	svc := newTestService(t, fixturePhones(), nil)
	assert.Equal(t, []string{"gaming", "office", "student"}, svc.Usages())
}
