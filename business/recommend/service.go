// Package recommend ranks catalog phones against a user's budget, RAM and
// usage with a configurable scoring strategy.
package recommend

import (
	"context"
	"fmt"
	"math"
	"strings"

	"phoneFinder/business/pricing"
	"phoneFinder/domain"
	"phoneFinder/pkg/logger"
)

type Service struct {
	snap       *Snapshot
	pricer     *pricing.Aggregator
	strategies map[string]Strategy
	defaultStr Strategy
	topK       int
}

func NewService(snap *Snapshot, pricer *pricing.Aggregator, cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	def, err := strategyByName(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	strategies := make(map[string]Strategy, 2)
	for _, name := range StrategyNames() {
		st, _ := strategyByName(name)
		strategies[name] = st
	}

	return &Service{
		snap:       snap,
		pricer:     pricer,
		strategies: strategies,
		defaultStr: def,
		topK:       cfg.TopK,
	}, nil
}

// Recommend returns at most TopK phones for q, best first. No match is an
// empty slice, not an error.
func (s *Service) Recommend(ctx context.Context, q domain.UserQuery) ([]domain.ScoredResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	st, cands, _, err := s.rank(q)
	if err != nil {
		RecommendationsTotal.WithLabelValues(strategyLabel(st), "rejected").Inc()
		logger.Warn("recommend_rejected",
			"trace_id", domain.TraceIDFromContext(ctx),
			"usage", q.Usage,
			"error", err,
		)
		return nil, err
	}

	results := make([]domain.ScoredResult, 0, len(cands))
	for _, c := range cands {
		results = append(results, s.scoredResult(st, c, q))
	}

	outcome := "matched"
	if len(results) == 0 {
		outcome = "empty"
	}
	RecommendationsTotal.WithLabelValues(st.Name(), outcome).Inc()

	logger.Debug("recommend",
		"trace_id", domain.TraceIDFromContext(ctx),
		"strategy", st.Name(),
		"budget", q.Budget,
		"ram", q.RAM,
		"usage", q.Usage,
		"results", len(results),
	)

	return results, nil
}

// Usages lists the usage categories a query may use.
func (s *Service) Usages() []string {
	return s.snap.Features.Vocabulary.Values()
}

func (s *Service) DefaultStrategy() string {
	return s.defaultStr.Name()
}

// rank validates q, runs the strategy, sorts and truncates. matched is
// the number of candidates before truncation.
func (s *Service) rank(q domain.UserQuery) (st Strategy, cands []Candidate, matched int, err error) {
	st = s.defaultStr
	if name := strings.TrimSpace(q.Strategy); name != "" {
		var ok bool
		st, ok = s.strategies[strings.ToLower(name)]
		if !ok {
			return nil, nil, 0, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, q.Strategy)
		}
	}

	if err := validateQuery(q); err != nil {
		return st, nil, 0, err
	}

	cands, err = st.Rank(s.snap, q)
	if err != nil {
		return st, nil, 0, err
	}

	matched = len(cands)
	sortCandidates(s.snap, cands)
	if len(cands) > s.topK {
		cands = cands[:s.topK]
	}
	return st, cands, matched, nil
}

func (s *Service) scoredResult(st Strategy, c Candidate, q domain.UserQuery) domain.ScoredResult {
	p := s.snap.Catalog.Entry(c.Index)
	best := s.pricer.BestPrice(p)

	return domain.ScoredResult{
		Model:        p.Model,
		Price:        p.Price,
		RAM:          p.RAM,
		Storage:      p.Storage,
		Rating:       p.Rating,
		Usage:        p.Usage,
		Score:        c.Score,
		Strategy:     st.Name(),
		BestRetailer: best.Retailer,
		BestPrice:    best.Price,
		Links:        p.Links(),
		Reason:       s.pricer.Explain(p, q),
	}
}

func validateQuery(q domain.UserQuery) error {
	if math.IsNaN(q.Budget) || math.IsInf(q.Budget, 0) || q.Budget < 0 {
		return fmt.Errorf("%w: budget must be a non-negative number", domain.ErrInvalidQuery)
	}
	if math.IsNaN(q.RAM) || math.IsInf(q.RAM, 0) || q.RAM < 0 {
		return fmt.Errorf("%w: ram must be a non-negative number", domain.ErrInvalidQuery)
	}
	return nil
}

func strategyLabel(st Strategy) string {
	if st == nil {
		return "unknown"
	}
	return st.Name()
}
