package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"socialgraph/src/adapters/console"
	"socialgraph/src/config"
	"socialgraph/src/infra/kafka"
	"socialgraph/src/infra/redis"
	"socialgraph/src/repositories"
	"socialgraph/src/services/events"
	"socialgraph/src/services/social"

	"go.uber.org/fx"
)

func main() {
	log.SetOutput(os.Stderr)

	app := fx.New(
		fx.NopLogger,

		// Providers
		fx.Provide(
			config.Load,
			newLogger,
			newKafkaClient,
			newRedisClient,
			newEventPublisher,
			newRankingStore,
			newSocialService,
			console.NewConsole,
		),

		// Invocations
		fx.Invoke(runConsole),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start popshell: %v", err)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		log.Printf("Failed to stop popshell gracefully: %v", err)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	return config.NewLogger(cfg.LogLevel)
}

// newKafkaClient só conecta quando KAFKA_BROKERS está definido.
func newKafkaClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*kafka.KafkaClient, error) {
	if !cfg.KafkaEnabled() {
		return nil, nil
	}

	client, err := kafka.NewKafkaClient(cfg.KafkaBrokers, "", cfg.KafkaBatchSize)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Shutting down Kafka client...")
			return client.Close()
		},
	})
	return client, nil
}

func newRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.RedisClient {
	if !cfg.RedisEnabled() {
		return nil
	}

	client := redis.NewRedisClient(cfg.RedisHosts, cfg.RedisPoolSize, cfg.RedisTTL).WithPrefix("socialgraph:")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.HealthCheck(ctx); err != nil {
				if cfg.RedisRequired {
					return err
				}
				logger.Warn("Redis unavailable, ranking snapshots may fail", "error", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client
}

func newEventPublisher(logger *slog.Logger, cfg config.Config, client *kafka.KafkaClient) social.EventPublisher {
	if client == nil {
		return nil
	}
	return events.NewDomainEventPublisher(logger, client, cfg.KafkaEventsTopic)
}

func newRankingStore(client *redis.RedisClient) social.RankingStore {
	if client == nil {
		return nil
	}
	return repositories.NewRankingSnapshotRepository(client)
}

func newSocialService(
	logger *slog.Logger,
	cfg config.Config,
	publisher social.EventPublisher,
	rankingStore social.RankingStore,
) *social.SocialService {
	return social.NewSocialService(logger, cfg.Policy, publisher, rankingStore)
}

// runConsole lê comandos do stdin até EOF ou shutdown e então encerra a aplicação.
func runConsole(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	logger *slog.Logger,
	shell *console.Console,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := shell.Run(ctx, os.Stdin, os.Stdout); err != nil {
					logger.Error("Console failed", "error", err)
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.Error("Failed to shut down", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
