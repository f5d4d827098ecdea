package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialgraph/src/adapters/kafka/consumers"
	"socialgraph/src/config"
	"socialgraph/src/helper/env"
	"socialgraph/src/infra/kafka"

	"go.uber.org/fx"
)

func main() {
	log.SetOutput(os.Stdout)
	log.Println("Starting Social Events Consumer with Uber Fx...")

	app := fx.New(
		// Providers
		fx.Provide(
			config.Load,
			newLogger,
			newKafkaClient,
			newSocialEventsConsumer,
		),

		// Invocations
		fx.Invoke(startConsumer),
	)

	// Start the application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start consumer application: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Shutting down social events consumer...")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil {
		log.Printf("Failed to stop application gracefully: %v", err)
	}

	log.Println("Social events consumer shutdown complete")
}

func newLogger(cfg config.Config) *slog.Logger {
	return config.NewLogger(cfg.LogLevel)
}

func newKafkaClient(cfg config.Config) (*kafka.KafkaClient, error) {
	brokers := env.MustGetString("KAFKA_BROKERS")
	return kafka.NewKafkaClient(brokers, cfg.KafkaConsumerGroup, cfg.KafkaBatchSize)
}

func newSocialEventsConsumer(logger *slog.Logger) *consumers.SocialEventsConsumer {
	return consumers.NewSocialEventsConsumer(logger)
}

func startConsumer(
	lc fx.Lifecycle,
	logger *slog.Logger,
	cfg config.Config,
	kafkaClient *kafka.KafkaClient,
	eventsConsumer *consumers.SocialEventsConsumer,
) {
	// o contexto do OnStart expira junto com o start timeout do fx
	consumeCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("Starting social events consumer", "topic", cfg.KafkaEventsTopic)

			go func() {
				if err := eventsConsumer.Start(consumeCtx, kafkaClient, cfg.KafkaEventsTopic); err != nil {
					logger.Error("Consumer failed", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			logger.Info("Consumed events", "counts", eventsConsumer.Counts())

			logger.Info("Shutting down Kafka client...")
			if err := kafkaClient.Close(); err != nil {
				logger.Error("Failed to close Kafka client", "error", err)
				return err
			}
			logger.Info("Kafka client shut down gracefully")
			return nil
		},
	})
}
