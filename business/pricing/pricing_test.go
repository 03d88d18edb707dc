package pricing

import (
	"testing"

	"phoneFinder/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offers(amazon, flipkart, croma float64) map[string]domain.RetailerOffer {
	return map[string]domain.RetailerOffer{
		domain.RetailerAmazon:   {Price: amazon, Link: "amazon"},
		domain.RetailerFlipkart: {Price: flipkart, Link: "flipkart"},
		domain.RetailerCroma:    {Price: croma, Link: "croma"},
	}
}

func newAggregator(t *testing.T, priority ...string) *Aggregator {
	t.Helper()
	if len(priority) == 0 {
		priority = DefaultPriority()
	}
	a, err := NewAggregator(priority, DefaultHighRating)
	require.NoError(t, err)
	return a
}

func TestBestPrice_Minimum(t *testing.T) {
	a := newAggregator(t)

	cases := []struct {
		name string
		p    domain.Phone
		want string
	}{
		{"amazon cheapest", domain.Phone{Retailers: offers(100, 200, 300)}, domain.RetailerAmazon},
		{"flipkart cheapest", domain.Phone{Retailers: offers(300, 100, 200)}, domain.RetailerFlipkart},
		{"croma cheapest", domain.Phone{Retailers: offers(300, 200, 100)}, domain.RetailerCroma},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			best := a.BestPrice(tc.p)
			assert.Equal(t, tc.want, best.Retailer)
			assert.Equal(t, 100.0, best.Price)

			for name, offer := range tc.p.Retailers {
				assert.LessOrEqual(t, best.Price, offer.Price, name)
			}
		})
	}
}

func TestBestPrice_TieFollowsPriority(t *testing.T) {
	p := domain.Phone{Retailers: offers(500, 400, 400)}

	assert.Equal(t, domain.RetailerFlipkart, newAggregator(t).BestPrice(p).Retailer)

	reordered := newAggregator(t, domain.RetailerCroma, domain.RetailerAmazon, domain.RetailerFlipkart)
	best := reordered.BestPrice(p)
	assert.Equal(t, domain.RetailerCroma, best.Retailer)
	assert.Equal(t, "croma", best.Link)
}

func TestBestPrice_NoOffers(t *testing.T) {
	best := newAggregator(t).BestPrice(domain.Phone{Price: 999})
	assert.Equal(t, "", best.Retailer)
	assert.Equal(t, 999.0, best.Price)
}

func TestValidatePriority(t *testing.T) {
	assert.NoError(t, ValidatePriority(DefaultPriority()))
	assert.Error(t, ValidatePriority([]string{domain.RetailerAmazon}))
	assert.Error(t, ValidatePriority([]string{domain.RetailerAmazon, domain.RetailerAmazon, domain.RetailerCroma}))
	assert.Error(t, ValidatePriority([]string{domain.RetailerAmazon, "Reliance", domain.RetailerCroma}))

	_, err := NewAggregator(DefaultPriority(), 0)
	assert.Error(t, err)
}

func TestExplain(t *testing.T) {
	a := newAggregator(t)
	p := domain.Phone{Model: "X", Price: 20000, RAM: 8, Rating: 4.6, Usage: "gaming"}

	got := a.Explain(p, domain.UserQuery{Budget: 25000, RAM: 6, Usage: "gaming"})
	assert.Equal(t, "Fits your budget, has 8GB RAM, is suitable for gaming usage and is highly rated (4.6/5).", got)

	got = a.Explain(p, domain.UserQuery{Budget: 25000, RAM: 6, Usage: "office"})
	assert.Equal(t, "Fits your budget, has 8GB RAM and is highly rated (4.6/5).", got)

	p.Rating = 4.4
	got = a.Explain(p, domain.UserQuery{Budget: 10000, RAM: 12, Usage: "office"})
	assert.Equal(t, "Closest match in the catalog.", got)

	got = a.Explain(p, domain.UserQuery{Budget: 25000, RAM: 12, Usage: "office"})
	assert.Equal(t, "Fits your budget.", got)
}
