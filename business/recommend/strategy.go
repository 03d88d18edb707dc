package recommend

import (
	"fmt"
	"sort"
	"strings"

	"phoneFinder/business/features"
	"phoneFinder/domain"
)

const (
	StrategySimilarity = "similarity"
	StrategyValue      = "value"
)

// Strategy scores the catalog rows that pass its filters.
type Strategy interface {
	Name() string
	Rank(snap *Snapshot, q domain.UserQuery) ([]Candidate, error)
}

// Candidate is an unsorted match: a catalog row index and its score.
type Candidate struct {
	Index int
	Score float64
}

func strategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategySimilarity:
		return SimilarityStrategy{}, nil
	case StrategyValue:
		return ValueStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, name)
	}
}

// StrategyNames lists the strategies a query may ask for.
func StrategyNames() []string {
	return []string{StrategySimilarity, StrategyValue}
}

func withinLimits(p domain.Phone, q domain.UserQuery) bool {
	return p.Price <= q.Budget && p.RAM >= q.RAM
}

// SimilarityStrategy ranks by cosine similarity between the scaled query
// vector and each scaled catalog row.
type SimilarityStrategy struct{}

func (SimilarityStrategy) Name() string { return StrategySimilarity }

func (SimilarityStrategy) Rank(snap *Snapshot, q domain.UserQuery) ([]Candidate, error) {
	raw, err := snap.Features.QueryVector(q.Budget, q.RAM, q.Usage)
	if err != nil {
		return nil, err
	}
	query := snap.Features.Scaling.Scale(raw)

	out := make([]Candidate, 0, snap.Catalog.Len())
	for i := 0; i < snap.Catalog.Len(); i++ {
		if !withinLimits(snap.Catalog.Entry(i), q) {
			continue
		}
		out = append(out, Candidate{
			Index: i,
			Score: features.Cosine(query, snap.Features.ScaledRow(i)),
		})
	}
	return out, nil
}

// ValueStrategy ranks by rating per unit of price and only keeps phones
// of the requested usage.
type ValueStrategy struct{}

func (ValueStrategy) Name() string { return StrategyValue }

func (ValueStrategy) Rank(snap *Snapshot, q domain.UserQuery) ([]Candidate, error) {
	if _, err := snap.Features.Vocabulary.Encode(q.Usage); err != nil {
		return nil, err
	}
	usage := strings.TrimSpace(q.Usage)

	out := make([]Candidate, 0)
	for i := 0; i < snap.Catalog.Len(); i++ {
		p := snap.Catalog.Entry(i)
		if !withinLimits(p, q) || p.Usage != usage {
			continue
		}
		out = append(out, Candidate{Index: i, Score: valueScore(p)})
	}
	return out, nil
}

// valueScore is rating/price; a free phone scores 0.
func valueScore(p domain.Phone) float64 {
	if p.Price <= 0 {
		return 0
	}
	return p.Rating / p.Price
}

// sortCandidates orders by score desc, then rating desc, then model asc.
func sortCandidates(snap *Snapshot, cands []Candidate) {
	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].Score != cands[b].Score {
			return cands[a].Score > cands[b].Score
		}
		pa, pb := snap.Catalog.Entry(cands[a].Index), snap.Catalog.Entry(cands[b].Index)
		if pa.Rating != pb.Rating {
			return pa.Rating > pb.Rating
		}
		return pa.Model < pb.Model
	})
}
