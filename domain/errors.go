package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDataLoad is fatal: the catalog could not be loaded at startup.
	ErrDataLoad = errors.New("catalog data load failed")

	ErrUnknownCategory = errors.New("unknown usage category")
	ErrUnknownStrategy = errors.New("unknown scoring strategy")
	ErrInvalidQuery    = errors.New("invalid query")

	// ErrSelection covers every invalid compare selection.
	ErrSelection     = errors.New("invalid compare selection")
	ErrModelNotFound = fmt.Errorf("%w: model not found", ErrSelection)
)
