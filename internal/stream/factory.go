package stream

import (
	"context"
	"fmt"

	"github.com/avasilev/estate-doc-agent/internal/pipeline"
	redisconn "github.com/avasilev/estate-doc-agent/internal/redis"
	"github.com/avasilev/estate-doc-agent/internal/stream/redis"
	"github.com/rs/zerolog"
)

type Config struct {
	Provider    string // redis for now; kafka/sqs would slot in here
	RedisConfig *redis.StreamConfig
}

func NewConsumer(
	ctx context.Context,
	cfg *Config,
	pipe *pipeline.Pipeline,
	logger *zerolog.Logger,
) (Consumer, error) {

	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := redisconn.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			5,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(
			client,
			cfg.RedisConfig.Stream,
			cfg.RedisConfig.Group,
			cfg.RedisConfig.ConsumerName,
			pipe,
			logger,
		), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
