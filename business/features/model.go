package features

import (
	"fmt"

	"phoneFinder/domain"
)

// Model is everything fitted on the catalog at startup. It is immutable
// once Fit returns and may be shared between goroutines.
type Model struct {
	Vocabulary  Vocabulary
	Scaling     ScalingParams
	MeanStorage float64
	MeanRating  float64

	// scaled[i] is the scaled vector of catalog entry i
	scaled []Vector
}

// Fit builds the vocabulary, scaling parameters and the scaled feature
// matrix for entries. Row order follows entries.
func Fit(entries []domain.Phone) (*Model, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: cannot fit features on an empty catalog", domain.ErrDataLoad)
	}

	m := &Model{Vocabulary: BuildVocabulary(entries)}

	raw := make([]Vector, len(entries))
	var storage, rating float64
	for i, e := range entries {
		v, err := m.EntryVector(e)
		if err != nil {
			return nil, err
		}
		raw[i] = v
		storage += e.Storage
		rating += e.Rating
	}

	m.MeanStorage = storage / float64(len(entries))
	m.MeanRating = rating / float64(len(entries))
	m.Scaling = FitScaling(raw)

	m.scaled = make([]Vector, len(raw))
	for i, v := range raw {
		m.scaled[i] = m.Scaling.Scale(v)
	}

	return m, nil
}

// EntryVector is the raw (unscaled) feature vector of a catalog entry.
func (m *Model) EntryVector(e domain.Phone) (Vector, error) {
	code, err := m.Vocabulary.Encode(e.Usage)
	if err != nil {
		return Vector{}, err
	}

	var v Vector
	v[IdxPrice] = e.Price
	v[IdxRAM] = e.RAM
	v[IdxStorage] = e.Storage
	v[IdxRating] = e.Rating
	v[IdxUsage] = float64(code)
	return v, nil
}

// QueryVector is the raw user preference vector. Storage and rating are
// not asked of the user, so the catalog means stand in for them.
func (m *Model) QueryVector(budget, ram float64, usage string) (Vector, error) {
	code, err := m.Vocabulary.Encode(usage)
	if err != nil {
		return Vector{}, err
	}

	var v Vector
	v[IdxPrice] = budget
	v[IdxRAM] = ram
	v[IdxStorage] = m.MeanStorage
	v[IdxRating] = m.MeanRating
	v[IdxUsage] = float64(code)
	return v, nil
}

// ScaledRow returns the cached scaled vector of catalog entry i.
func (m *Model) ScaledRow(i int) Vector {
	return m.scaled[i]
}

func (m *Model) Rows() int {
	return len(m.scaled)
}
