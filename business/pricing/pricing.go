// Package pricing picks the cheapest retailer for a phone and explains why
// a phone matched a query.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"phoneFinder/domain"
)

// DefaultHighRating is the rating from which a phone is called highly rated.
const DefaultHighRating = 4.5

// DefaultPriority keeps the dataset's column order, which is also the
// first-wins order of a plain minimum over the retailer columns.
func DefaultPriority() []string {
	out := make([]string, len(domain.Retailers))
	copy(out, domain.Retailers)
	return out
}

// ValidatePriority requires every known retailer exactly once.
func ValidatePriority(priority []string) error {
	if len(priority) != len(domain.Retailers) {
		return fmt.Errorf("retailer priority must list %s exactly once", strings.Join(domain.Retailers, ", "))
	}

	known := make(map[string]bool, len(domain.Retailers))
	for _, r := range domain.Retailers {
		known[r] = true
	}
	seen := make(map[string]bool, len(priority))
	for _, r := range priority {
		if !known[r] {
			return fmt.Errorf("unknown retailer %q in priority", r)
		}
		if seen[r] {
			return fmt.Errorf("retailer %q listed twice in priority", r)
		}
		seen[r] = true
	}
	return nil
}

type Aggregator struct {
	priority   []string
	highRating float64
}

func NewAggregator(priority []string, highRating float64) (*Aggregator, error) {
	if err := ValidatePriority(priority); err != nil {
		return nil, err
	}
	if highRating <= 0 {
		return nil, errors.New("high rating threshold must be positive")
	}

	p := make([]string, len(priority))
	copy(p, priority)
	return &Aggregator{priority: p, highRating: highRating}, nil
}

func (a *Aggregator) Priority() []string {
	out := make([]string, len(a.priority))
	copy(out, a.priority)
	return out
}

// BestPrice returns the lowest retailer offer. Equal prices go to the
// retailer listed first in the priority. A phone without any offer falls
// back to its list price with no retailer.
func (a *Aggregator) BestPrice(p domain.Phone) domain.Offer {
	best := domain.Offer{Price: p.Price}
	found := false

	for _, name := range a.priority {
		offer, ok := p.Retailers[name]
		if !ok {
			continue
		}
		if !found || offer.Price < best.Price {
			best = domain.Offer{Retailer: name, Price: offer.Price, Link: offer.Link}
			found = true
		}
	}

	return best
}

// Explain lists the reasons p suits q as one sentence.
func (a *Aggregator) Explain(p domain.Phone, q domain.UserQuery) string {
	var reasons []string

	if p.Price <= q.Budget {
		reasons = append(reasons, "fits your budget")
	}
	if p.RAM >= q.RAM {
		reasons = append(reasons, fmt.Sprintf("has %sGB RAM", formatNumber(p.RAM)))
	}
	if strings.EqualFold(p.Usage, strings.TrimSpace(q.Usage)) {
		reasons = append(reasons, fmt.Sprintf("is suitable for %s usage", p.Usage))
	}
	if p.Rating >= a.highRating {
		reasons = append(reasons, fmt.Sprintf("is highly rated (%s/5)", formatNumber(p.Rating)))
	}

	if len(reasons) == 0 {
		return "Closest match in the catalog."
	}

	sentence := reasons[0]
	if len(reasons) > 1 {
		sentence = strings.Join(reasons[:len(reasons)-1], ", ") + " and " + reasons[len(reasons)-1]
	}
	return strings.ToUpper(sentence[:1]) + sentence[1:] + "."
}

func formatNumber(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
