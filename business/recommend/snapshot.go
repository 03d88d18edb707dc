package recommend

import (
	"phoneFinder/business/catalog"
	"phoneFinder/business/features"
)

// Snapshot is the fitted, read-only state every query runs against.
// Row i of Features belongs to Catalog.Entry(i).
type Snapshot struct {
	Catalog  *catalog.Catalog
	Features *features.Model
}

// NewSnapshot fits the feature model on cat. Call it once at startup.
func NewSnapshot(cat *catalog.Catalog) (*Snapshot, error) {
	model, err := features.Fit(cat.AllEntries())
	if err != nil {
		return nil, err
	}
	return &Snapshot{Catalog: cat, Features: model}, nil
}
