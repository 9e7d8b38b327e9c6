package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tanasatit/ci-demo/config"
	log "github.com/tanasatit/ci-demo/logger"
	"github.com/tanasatit/ci-demo/runner"
	"github.com/tanasatit/ci-demo/source"
	"github.com/tanasatit/ci-demo/source/endpoint"
	"github.com/tanasatit/ci-demo/source/file"
	"github.com/tanasatit/ci-demo/source/redis"
	"github.com/tanasatit/ci-demo/source/sqs"
	"github.com/tanasatit/ci-demo/source/static"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(parseStartingFlags()))
}

func run(cfg config.Config) int {
	if cfg.Version {
		fmt.Println(versionString())
		return 0
	}

	if cfg.SourceCount() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one of --values, --file, --url, --redis_hosts/--redis_keys or --sqs_queues must be given")
		flag.Usage()
		return exitUsage
	}

	logger, err := log.InitLogger(cfg.Environment, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("Statistics starting", zap.String("version", versionString()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := newSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize data source", zap.Error(err))
		return exitFailure
	}
	defer closeSource(src, logger)

	if err := runner.Run(ctx, src, os.Stdout, cfg.Output, logger); err != nil {
		logger.Error("Failed to compute statistics", zap.Error(err))
		return exitFailure
	}

	return 0
}

func newSource(ctx context.Context, cfg config.Config, logger *zap.Logger) (source.Source, error) {
	switch {
	case len(cfg.Values) > 0:
		return static.New(cfg.Values), nil
	case cfg.File != "":
		return file.New(&file.Config{Path: cfg.File})
	case cfg.URL != "":
		return endpoint.New(&endpoint.Config{URL: cfg.URL}, logger)
	case len(cfg.SqsQueues) > 0:
		return sqs.New(ctx, &sqs.Config{Queues: cfg.SqsQueues, MaxMessages: cfg.SqsMaxMessages}, logger)
	default:
		return redis.New(&redis.Config{Hosts: cfg.RedisHosts, ListKeys: cfg.RedisKeys}, logger)
	}
}

// closeSource releases connections held by sources such as the Redis ring.
func closeSource(src source.Source, logger *zap.Logger) {
	c, ok := src.(io.Closer)
	if !ok {
		return
	}

	if err := c.Close(); err != nil {
		logger.Warn("Failed to close data source", zap.String("source", src.Kind()), zap.Error(err))
	}
}

func parseStartingFlags() config.Config {
	cfg := config.NewWithDefaults()
	flag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug mode")
	flag.BoolVar(&cfg.Version, "version", false, "Prints version number")

	flag.StringVar(&cfg.Environment, "environment", "", "Environment name")
	flag.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text or yaml")

	flag.Float64SliceVar(&cfg.Values, "values", nil, "Comma separated values to compute statistics of")
	flag.StringVar(&cfg.File, "file", "", "YAML file holding a values list")
	flag.StringVar(&cfg.URL, "url", "", "HTTP endpoint serving one value per line")
	flag.StringSliceVar(&cfg.RedisHosts, "redis_hosts", nil, "Redis hosts holding the value lists")
	flag.StringSliceVar(&cfg.RedisKeys, "redis_keys", nil, "Redis list keys to read values from")
	flag.StringSliceVar(&cfg.SqsQueues, "sqs_queues", nil, "SQS queue names to drain values from")
	flag.IntVar(&cfg.SqsMaxMessages, "sqs_max_messages", cfg.SqsMaxMessages, "Maximum number of SQS messages to consume")
	flag.Parse()

	return cfg
}
