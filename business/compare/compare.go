// Package compare picks the better of two catalog phones.
package compare

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"phoneFinder/domain"
	"phoneFinder/pkg/logger"
)

// Selection is the number of distinct phones a comparison takes.
const Selection = 2

// Weights parametrise score = ram*RAM + rating*Rating - bestPrice/PriceDivisor.
type Weights struct {
	RAM          float64
	Rating       float64
	PriceDivisor float64
}

type CatalogReader interface {
	EntriesByModel(models []string) []domain.Phone
}

type PriceFinder interface {
	BestPrice(p domain.Phone) domain.Offer
}

type Service struct {
	catalog CatalogReader
	pricer  PriceFinder
	weights Weights
}

func NewService(catalog CatalogReader, pricer PriceFinder, weights Weights) (*Service, error) {
	if weights.PriceDivisor <= 0 {
		return nil, errors.New("price divisor must be positive")
	}
	return &Service{catalog: catalog, pricer: pricer, weights: weights}, nil
}

// Score is the weighted linear score of a phone at its best price.
func (w Weights) Score(p domain.Phone, bestPrice float64) float64 {
	return p.RAM*w.RAM + p.Rating*w.Rating - bestPrice/w.PriceDivisor
}

// Compare scores exactly two distinct models and returns them ranked,
// winner first. Equal scores go to the lower model id and set TieBroken.
func (s *Service) Compare(ctx context.Context, models []string) (domain.Comparison, error) {
	if err := ctx.Err(); err != nil {
		return domain.Comparison{}, fmt.Errorf("context error: %w", err)
	}

	selected := distinct(models)
	if len(selected) != Selection {
		ComparisonsTotal.WithLabelValues("rejected").Inc()
		return domain.Comparison{}, fmt.Errorf("%w: exactly %d distinct models required, got %d", domain.ErrSelection, Selection, len(selected))
	}

	phones := s.catalog.EntriesByModel(selected)
	if len(phones) != len(selected) {
		ComparisonsTotal.WithLabelValues("rejected").Inc()
		return domain.Comparison{}, fmt.Errorf("%w: %s", domain.ErrModelNotFound, strings.Join(missing(selected, phones), ", "))
	}

	ranked := make([]domain.ComparedPhone, 0, len(phones))
	for _, p := range phones {
		best := s.pricer.BestPrice(p)
		ranked = append(ranked, domain.ComparedPhone{
			Phone:        p,
			BestRetailer: best.Retailer,
			BestPrice:    best.Price,
			Score:        s.weights.Score(p, best.Price),
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Score != ranked[b].Score {
			return ranked[a].Score > ranked[b].Score
		}
		return ranked[a].Model < ranked[b].Model
	})

	out := domain.Comparison{
		Ranked:    ranked,
		Winner:    ranked[0],
		TieBroken: ranked[0].Score == ranked[1].Score,
	}

	outcome := "winner"
	if out.TieBroken {
		outcome = "tie"
	}
	ComparisonsTotal.WithLabelValues(outcome).Inc()

	logger.Debug("compare",
		"trace_id", domain.TraceIDFromContext(ctx),
		"models", selected,
		"winner", out.Winner.Model,
		"score", out.Winner.Score,
		"tie_broken", out.TieBroken,
	)

	return out, nil
}

// distinct trims ids and drops blanks and repeats, keeping first-seen order.
func distinct(models []string) []string {
	seen := make(map[string]bool, len(models))
	out := make([]string, 0, len(models))
	for _, m := range models {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

func missing(selected []string, found []domain.Phone) []string {
	have := make(map[string]bool, len(found))
	for _, p := range found {
		have[p.Model] = true
	}

	var out []string
	for _, m := range selected {
		if !have[m] {
			out = append(out, fmt.Sprintf("%q", m))
		}
	}
	return out
}
