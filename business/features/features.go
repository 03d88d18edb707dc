// Package features turns catalog rows and user queries into comparable,
// min-max scaled feature vectors.
package features

import (
	"fmt"
	"sort"
	"strings"

	"phoneFinder/domain"
)

// Dim is the fixed length of every feature vector.
const Dim = 5

// vector layout
const (
	IdxPrice = iota
	IdxRAM
	IdxStorage
	IdxRating
	IdxUsage
)

// Names lists the feature columns in vector order.
var Names = [Dim]string{"price", "ram", "storage", "rating", "usage"}

type Vector [Dim]float64

// Slice copies v into a plain slice (for JSON payloads).
func (v Vector) Slice() []float64 {
	out := make([]float64, Dim)
	copy(out, v[:])
	return out
}

// Vocabulary maps usage categories to integer codes.
type Vocabulary struct {
	values []string
	codes  map[string]int
}

// BuildVocabulary assigns codes to the distinct usage values of entries in
// lexicographic order, so the same catalog always yields the same codes.
func BuildVocabulary(entries []domain.Phone) Vocabulary {
	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.Usage] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	codes := make(map[string]int, len(values))
	for i, v := range values {
		codes[v] = i
	}

	return Vocabulary{values: values, codes: codes}
}

// Encode returns the code of usage, or domain.ErrUnknownCategory.
func (v Vocabulary) Encode(usage string) (int, error) {
	code, ok := v.codes[strings.TrimSpace(usage)]
	if !ok {
		return 0, fmt.Errorf("%w: %q (expected one of %s)",
			domain.ErrUnknownCategory, usage, strings.Join(v.values, ", "))
	}
	return code, nil
}

// Values returns the known categories in code order.
func (v Vocabulary) Values() []string {
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

func (v Vocabulary) Len() int {
	return len(v.values)
}
