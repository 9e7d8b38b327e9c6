package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Path string `yaml:"path"`
}

// Source reads values from a YAML document of the form:
//
//	values: [1, 2.5, "3"]
type Source struct {
	path string
}

var ErrNoPathSpecified = errors.New("no file path provided")

type document struct {
	Values []interface{} `yaml:"values"`
}

func New(config *Config) (*Source, error) {
	if config.Path == "" {
		return &Source{}, ErrNoPathSpecified
	}

	return &Source{path: config.Path}, nil
}

func (s *Source) Kind() string {
	return "file"
}

func (s *Source) Values(_ context.Context) ([]float64, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var doc document

	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", s.path, err)
	}

	values := make([]float64, 0, len(doc.Values))

	for i, item := range doc.Values {
		v, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, fmt.Errorf("value #%d in %v is not numeric: %w", i, s.path, err)
		}

		values = append(values, v)
	}

	return values, nil
}
