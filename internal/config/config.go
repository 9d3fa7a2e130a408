package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Log       LogConfig
	Worker    WorkerConfig
	Directory DirectoryConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled         bool
	ConsumerGroup   string
	BatchSize       int
	EmptyQueueSleep time.Duration
}

type DirectoryConfig struct {
	// Timezone used when evaluating weekly schedules.
	Timezone string
	// Default and maximum page sizes for entity listings.
	DefaultLimit int
	MaxLimit     int
	PopularLimit int
	// Optional JSON seed files loaded at startup.
	EntitySeedPath string
	GuideSeedPath  string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:   viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:       viper.GetInt("WORKER_BATCH_SIZE"),
			EmptyQueueSleep: time.Duration(viper.GetInt("WORKER_EMPTY_QUEUE_SLEEP")) * time.Millisecond,
		},
		Directory: DirectoryConfig{
			Timezone:       viper.GetString("DIRECTORY_TIMEZONE"),
			DefaultLimit:   viper.GetInt("DIRECTORY_DEFAULT_LIMIT"),
			MaxLimit:       viper.GetInt("DIRECTORY_MAX_LIMIT"),
			PopularLimit:   viper.GetInt("DIRECTORY_POPULAR_LIMIT"),
			EntitySeedPath: viper.GetString("DIRECTORY_ENTITY_SEED_PATH"),
			GuideSeedPath:  viper.GetString("DIRECTORY_GUIDE_SEED_PATH"),
		},
	}

	// Set default values if not provided
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "signal-ingestion-workers"
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 20
	}
	if cfg.Worker.EmptyQueueSleep == 0 {
		cfg.Worker.EmptyQueueSleep = 100 * time.Millisecond
	}
	if cfg.Directory.Timezone == "" {
		cfg.Directory.Timezone = "Europe/Madrid"
	}
	if cfg.Directory.DefaultLimit == 0 {
		cfg.Directory.DefaultLimit = 100
	}
	if cfg.Directory.MaxLimit == 0 {
		cfg.Directory.MaxLimit = 500
	}
	if cfg.Directory.PopularLimit == 0 {
		cfg.Directory.PopularLimit = 6
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
