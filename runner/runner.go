package runner

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tanasatit/ci-demo/report"
	"github.com/tanasatit/ci-demo/source"
)

// Run pulls the sequence from src, computes its statistics and writes the
// report to w in the requested format.
func Run(ctx context.Context, src source.Source, w io.Writer, format string, logger *zap.Logger) error {
	logger = logger.With(zap.String("source", src.Kind()))
	logger.Debug("Fetching values")

	values, err := src.Values(ctx)
	if err != nil {
		return fmt.Errorf("fetching values from %v source: %w", src.Kind(), err)
	}

	logger.Debug("Computing statistics", zap.Int("count", len(values)))

	r, err := report.New(values)
	if err != nil {
		return fmt.Errorf("computing statistics of %v source: %w", src.Kind(), err)
	}

	logger.Info("Statistics computed",
		zap.Int("count", r.Count),
		zap.Float64("mean", r.Mean),
		zap.Float64("variance", r.Variance),
		zap.Float64("stdev", r.Stdev),
	)

	return r.Render(w, format)
}
