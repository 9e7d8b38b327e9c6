package endpoint

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type Config struct {
	URL string `yaml:"url"`
}

// Source fetches a plain text document with one value per line over HTTP.
// Blank lines are skipped.
type Source struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

var ErrNoURLSpecified = errors.New("no url provided")

func New(config *Config, logger *zap.Logger) (*Source, error) {
	if config.URL == "" {
		return &Source{}, ErrNoURLSpecified
	}

	return &Source{
		url:    config.URL,
		client: http.DefaultClient,
		logger: logger,
	}, nil
}

func (s *Source) Kind() string {
	return "endpoint"
}

func (s *Source) Values(ctx context.Context) ([]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %v: %w", s.url, err)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Error("failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("expected %v response, got %v", http.StatusOK, resp.StatusCode)
	}

	var values []float64

	scanner := bufio.NewScanner(resp.Body)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := cast.ToFloat64E(text)
		if err != nil {
			return nil, fmt.Errorf("line %d of %v is not number: %v", line, s.url, text)
		}

		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read the response body: %w", err)
	}

	return values, nil
}
