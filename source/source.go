package source

import "context"

//go:generate mockgen -destination=mock/source_mock.go -package sourceMock github.com/tanasatit/ci-demo/source Source
type Source interface {
	Kind() string
	Values(context.Context) ([]float64, error)
}
