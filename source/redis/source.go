package redis

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type Config struct {
	Hosts    []string `yaml:"hosts"`
	ListKeys []string `yaml:"list_keys"`
}

// Source reads values stored as elements of Redis lists. Every list key is
// read from every shard of the ring.
type Source struct {
	client   *redis.Ring
	listKeys []string
	logger   *zap.Logger
}

func New(config *Config, logger *zap.Logger) (*Source, error) {
	if len(config.Hosts) == 0 {
		return &Source{}, fmt.Errorf("hosts list cannot be empty")
	}

	if len(config.ListKeys) == 0 {
		return &Source{}, fmt.Errorf("list keys cannot be empty")
	}

	ringOpts := make(map[string]string)

	for i, addr := range config.Hosts {
		key := fmt.Sprintf("host%d", i+1)
		ringOpts[key] = addr
	}

	c := redis.NewRing(&redis.RingOptions{
		Addrs: ringOpts,
	})

	err := c.ForEachShard(context.Background(), func(ctx context.Context, shard *redis.Client) error {
		res := shard.Ping(ctx)
		err := res.Err()

		if err != nil {
			logger.Error("failed to connect to Redis instance", zap.String("addr", shard.Options().Addr), zap.Error(err))
			return err
		}

		logger.Debug("successfully connected to Redis instance", zap.String("addr", shard.Options().Addr), zap.String("result", res.Val()))
		return nil
	})

	if err != nil {
		_ = c.Close()
		return &Source{}, err
	}

	return &Source{
		client:   c,
		listKeys: config.ListKeys,
		logger:   logger,
	}, nil
}

func (s *Source) Kind() string {
	return "redis"
}

func (s *Source) Values(ctx context.Context) ([]float64, error) {
	var values []float64

	for _, key := range s.listKeys {
		var (
			mu    sync.Mutex
			items []string
		)

		// ForEachShard visits shards concurrently.
		err := s.client.ForEachShard(ctx, func(ctx context.Context, shard *redis.Client) error {
			res, err := shard.LRange(ctx, key, 0, -1).Result()
			if err != nil {
				return err
			}

			mu.Lock()
			items = append(items, res...)
			mu.Unlock()

			return nil
		})

		if err != nil {
			return nil, err
		}

		for _, item := range items {
			v, err := cast.ToFloat64E(item)
			if err != nil {
				return nil, fmt.Errorf("list %v holds non numeric element %q: %w", key, item, err)
			}

			values = append(values, v)
		}

		s.logger.Debug("read Redis list", zap.String("key", key), zap.Int("count", len(items)))
	}

	return values, nil
}

func (s *Source) Close() error {
	return s.client.Close()
}
