package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"socialgraph/src/domain/entities"
	"socialgraph/src/helper/env"
)

// Config reúne toda a configuração lida do ambiente pelos binários.
type Config struct {
	LogLevel string
	Policy   entities.Policy

	KafkaBrokers       string
	KafkaEventsTopic   string
	KafkaConsumerGroup string
	KafkaBatchSize     int

	RedisHosts    string
	RedisPoolSize int
	RedisTTL      time.Duration
	RedisRequired bool
}

func Load() Config {
	return Config{
		LogLevel: env.GetString("LOG_LEVEL", "info"),
		Policy:   LoadPolicy(),

		KafkaBrokers:       env.GetString("KAFKA_BROKERS"),
		KafkaEventsTopic:   env.GetString("KAFKA_SOCIAL_EVENTS_TOPIC", "social-events"),
		KafkaConsumerGroup: env.GetString("KAFKA_SOCIAL_EVENTS_CONSUMER_GROUP_ID", "social-events-consumer"),
		KafkaBatchSize:     env.GetInt("KAFKA_BATCH_SIZE", 100),

		RedisHosts:    env.GetString("REDIS_HOSTS"),
		RedisPoolSize: env.GetInt("REDIS_POOL_SIZE", 10),
		RedisTTL:      env.GetSeconds("REDIS_DEFAULT_TTL_SECONDS", 3600),
		RedisRequired: env.GetBool("REDIS_REQUIRED", false),
	}
}

// KafkaEnabled reports whether social events should be streamed.
func (c Config) KafkaEnabled() bool {
	return c.KafkaBrokers != ""
}

// RedisEnabled reports whether ranking snapshots should be cached.
func (c Config) RedisEnabled() bool {
	return c.RedisHosts != ""
}

// LoadPolicy starts from the default table and applies overrides named
// TIER_<NORMAL|CELEBRITY|ICON>_<LIKE|REJECT>.
func LoadPolicy() entities.Policy {
	policy := entities.DefaultPolicy()

	tierKeys := map[entities.Tier]string{
		entities.TierNormal:    "NORMAL",
		entities.TierCelebrity: "CELEBRITY",
		entities.TierIcon:      "ICON",
	}

	for _, tier := range entities.Tiers() {
		for _, action := range []entities.Action{entities.ActionLike, entities.ActionReject} {
			name := fmt.Sprintf("TIER_%s_%s", tierKeys[tier], strings.ToUpper(string(action)))
			if os.Getenv(name) == "" {
				continue
			}
			policy = policy.With(tier, action, env.GetInt(name, policy.Delta(tier, action)))
		}
	}

	return policy
}

// NewLogger builds the JSON slog logger shared by every binary.
func NewLogger(level string) *slog.Logger {
	var slogLevel slog.Level

	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
