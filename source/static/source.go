package static

import (
	"context"
	"slices"
)

// Source serves a fixed sequence of values, typically given on the command line.
type Source struct {
	values []float64
}

func New(values []float64) *Source {
	return &Source{values: slices.Clone(values)}
}

func (s *Source) Kind() string {
	return "static"
}

func (s *Source) Values(_ context.Context) ([]float64, error) {
	return slices.Clone(s.values), nil
}
