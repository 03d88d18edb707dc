package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"phoneFinder/domain"
)

const (
	colModel   = "model"
	colPrice   = "price"
	colRAM     = "ram"
	colStorage = "storage"
	colRating  = "rating"
	colUsage   = "usage"
)

// RequiredColumns lists the header names every dataset file must carry.
func RequiredColumns() []string {
	cols := []string{colModel, colPrice, colRAM, colStorage, colRating, colUsage}
	for _, r := range domain.Retailers {
		cols = append(cols, retailerPriceColumn(r))
	}
	for _, r := range domain.Retailers {
		cols = append(cols, retailerLinkColumn(r))
	}
	return cols
}

func retailerPriceColumn(retailer string) string {
	return strings.ToLower(retailer) + "_price"
}

func retailerLinkColumn(retailer string) string {
	return strings.ToLower(retailer) + "_link"
}

// CSVSource reads the catalog from a flat CSV file with a header row.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) LoadPhones(ctx context.Context) ([]domain.Phone, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrDataLoad, s.Path, err)
	}
	defer f.Close()

	phones, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return phones, nil
}

// ParseCSV decodes catalog rows. Column order is free and extra columns
// are ignored.
func ParseCSV(r io.Reader) ([]domain.Phone, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", domain.ErrDataLoad)
		}
		return nil, fmt.Errorf("%w: read header: %w", domain.ErrDataLoad, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		index[name] = i
	}

	var missing []string
	for _, col := range RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s", domain.ErrDataLoad, strings.Join(missing, ", "))
	}

	var phones []domain.Phone
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrDataLoad, line, err)
		}

		p, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrDataLoad, line, err)
		}
		phones = append(phones, p)
	}

	return phones, nil
}

func parseRecord(record []string, index map[string]int) (domain.Phone, error) {
	field := func(col string) string {
		return strings.TrimSpace(record[index[col]])
	}

	var err error
	number := func(col string) float64 {
		if err != nil {
			return 0
		}
		raw := field(col)
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			err = fmt.Errorf("column %s: invalid number %q", col, raw)
			return 0
		}
		return v
	}

	p := domain.Phone{
		Model:     field(colModel),
		Price:     number(colPrice),
		RAM:       number(colRAM),
		Storage:   number(colStorage),
		Rating:    number(colRating),
		Usage:     field(colUsage),
		Retailers: make(map[string]domain.RetailerOffer, len(domain.Retailers)),
	}
	for _, r := range domain.Retailers {
		p.Retailers[r] = domain.RetailerOffer{
			Price: number(retailerPriceColumn(r)),
			Link:  field(retailerLinkColumn(r)),
		}
	}
	if err != nil {
		return domain.Phone{}, err
	}

	return p, nil
}
