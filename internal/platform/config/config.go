package config

import "github.com/ilyakaznacheev/cleanenv"

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string   `env:"SERVICE_NAME" env-default:"gemledger"`
	HTTPPort     string   `env:"HTTP_PORT" env-default:"8080"`
	PostgresDSN  string   `env:"POSTGRES_DSN"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`

	// GenesisAdmin is the deployer address seeded as the first admin. The
	// registry cannot bootstrap without it.
	GenesisAdmin string `env:"GENESIS_ADMIN"`

	// PriceFeedURL points at the external USD quote feed. Empty means the
	// fixed development feed.
	PriceFeedURL string `env:"PRICE_FEED_URL"`

	EventTopic string `env:"EVENT_TOPIC" env-default:"ledger.events"`

	// RelayPollSeconds is the audit outbox relay interval.
	RelayPollSeconds int `env:"RELAY_POLL_SECONDS" env-default:"1"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
