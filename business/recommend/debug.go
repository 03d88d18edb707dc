package recommend

import (
	"context"
	"fmt"

	"phoneFinder/business/features"
	"phoneFinder/domain"
	"phoneFinder/pkg/logger"
)

// DebugRecommend runs the same ranking as Recommend and also returns the
// raw and scaled vectors behind it.
func (s *Service) DebugRecommend(ctx context.Context, q domain.UserQuery) (domain.DebugRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.DebugRecommendation{}, fmt.Errorf("context error: %w", err)
	}

	st, cands, matched, err := s.rank(q)
	if err != nil {
		return domain.DebugRecommendation{}, err
	}

	// rank already validated usage, so this cannot fail
	raw, err := s.snap.Features.QueryVector(q.Budget, q.RAM, q.Usage)
	if err != nil {
		return domain.DebugRecommendation{}, err
	}
	code := int(raw[features.IdxUsage])

	out := domain.DebugRecommendation{
		Strategy:     st.Name(),
		UsageCode:    code,
		QueryRaw:     raw.Slice(),
		QueryScaled:  s.snap.Features.Scaling.Scale(raw).Slice(),
		FeatureNames: features.Names[:],
		Results:      make([]domain.DebugResult, 0, len(cands)),
		Matched:      matched,
		CatalogSize:  s.snap.Catalog.Len(),
	}
	for _, c := range cands {
		out.Results = append(out.Results, domain.DebugResult{
			ScoredResult: s.scoredResult(st, c, q),
			Scaled:       s.snap.Features.ScaledRow(c.Index).Slice(),
		})
	}

	logger.Debug("recommend_debug",
		"trace_id", domain.TraceIDFromContext(ctx),
		"strategy", st.Name(),
		"query_scaled", out.QueryScaled,
		"results", len(out.Results),
	)

	return out, nil
}
