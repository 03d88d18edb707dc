// Package catalog holds the immutable phone table loaded once at startup.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"phoneFinder/domain"
	"phoneFinder/pkg/logger"
)

const maxRating = 5.0

// Source produces the raw catalog rows.
type Source interface {
	LoadPhones(ctx context.Context) ([]domain.Phone, error)
}

// Catalog is read-only after Load and safe for concurrent use.
// Returned phones share their Retailers maps with the catalog; callers
// must not mutate them.
type Catalog struct {
	entries []domain.Phone
	byModel map[string]int
}

// Load reads every row from src and validates it. Any failure is wrapped
// in domain.ErrDataLoad.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	phones, err := src.LoadPhones(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDataLoad) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrDataLoad, err)
	}

	cat, err := New(phones)
	if err != nil {
		return nil, err
	}

	logger.Info("catalog loaded", "entries", cat.Len())

	return cat, nil
}

// New validates phones and builds a catalog around them.
func New(phones []domain.Phone) (*Catalog, error) {
	if len(phones) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", domain.ErrDataLoad)
	}

	cat := &Catalog{
		entries: make([]domain.Phone, 0, len(phones)),
		byModel: make(map[string]int, len(phones)),
	}

	for i, p := range phones {
		p.Model = strings.TrimSpace(p.Model)
		p.Usage = strings.TrimSpace(p.Usage)

		if err := validatePhone(p); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", domain.ErrDataLoad, i+1, err)
		}
		if _, dup := cat.byModel[p.Model]; dup {
			return nil, fmt.Errorf("%w: row %d: duplicate model %q", domain.ErrDataLoad, i+1, p.Model)
		}

		cat.byModel[p.Model] = len(cat.entries)
		cat.entries = append(cat.entries, p)
	}

	return cat, nil
}

func validatePhone(p domain.Phone) error {
	if p.Model == "" {
		return errors.New("model is required")
	}
	if p.Usage == "" {
		return errors.New("usage is required")
	}

	numbers := map[string]float64{
		"price":   p.Price,
		"ram":     p.RAM,
		"storage": p.Storage,
		"rating":  p.Rating,
	}
	for name, v := range numbers {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s must be a non-negative number", name)
		}
	}
	if p.Rating > maxRating {
		return fmt.Errorf("rating %.2f is above %.0f", p.Rating, maxRating)
	}

	for _, name := range domain.Retailers {
		offer, ok := p.Retailers[name]
		if !ok {
			return fmt.Errorf("missing %s offer", name)
		}
		if math.IsNaN(offer.Price) || math.IsInf(offer.Price, 0) || offer.Price < 0 {
			return fmt.Errorf("%s price must be a non-negative number", name)
		}
	}

	return nil
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// AllEntries returns every phone in load order.
func (c *Catalog) AllEntries() []domain.Phone {
	out := make([]domain.Phone, len(c.entries))
	copy(out, c.entries)
	return out
}

// Entry returns the phone at load position i.
func (c *Catalog) Entry(i int) domain.Phone {
	return c.entries[i]
}

func (c *Catalog) Find(model string) (domain.Phone, bool) {
	i, ok := c.byModel[strings.TrimSpace(model)]
	if !ok {
		return domain.Phone{}, false
	}
	return c.entries[i], true
}

// EntriesByModel returns the phones whose model is in models, in catalog
// order. Unknown ids are skipped and duplicates collapse.
func (c *Catalog) EntriesByModel(models []string) []domain.Phone {
	wanted := make(map[int]struct{}, len(models))
	for _, m := range models {
		if i, ok := c.byModel[strings.TrimSpace(m)]; ok {
			wanted[i] = struct{}{}
		}
	}

	out := make([]domain.Phone, 0, len(wanted))
	for i := range c.entries {
		if _, ok := wanted[i]; ok {
			out = append(out, c.entries[i])
		}
	}
	return out
}
