package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type contextKey string

const (
	KeyLogger  = contextKey("logger")
	KeyMetrics = contextKey("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Logger   Logger
	Metrics  Metrics
	Platform Platform
	Kafka    Kafka
	Storage  Storage
	Import   Import
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"whatsapp-import"`
	Port string `env:"SERVICE_PORT" env-default:"3008"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER" env-required:"true"`
	Password string `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"POSTGRES_DB" env-required:"true"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Kafka struct {
	Host         string `env:"KAFKA_HOST"`
	Port         string `env:"KAFKA_PORT"`
	MessageTopic string `env:"KAFKA_MESSAGE_TOPIC" env-default:"whatsapp.message.event"`
}

type Storage struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "s3://whatsapp-media?region=eu-central-1"
	// or "file:///var/lib/whatsapp-media" for local runs.
	BucketURL     string `env:"STORAGE_BUCKET_URL" env-required:"true"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" env-required:"true"`
	Path          string `env:"STORAGE_PATH" env-default:"whatsapp-media/import"`
}

type Import struct {
	ChatFolder string `env:"IMPORT_CHAT_FOLDER"`
	ChatFile   string `env:"IMPORT_CHAT_FILE"`
	GroupName  string `env:"IMPORT_GROUP_NAME"`
	// Cutoff is the watermark instant in RFC 3339; messages at or before it
	// are treated as already imported. Empty means derive from the store.
	Cutoff     string `env:"IMPORT_CUTOFF"`
	BatchLimit int    `env:"IMPORT_BATCH_LIMIT" env-default:"100"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	return cfg
}

// CutoffInstant parses the configured watermark. A zero time with nil error
// means no cutoff was configured.
func (i Import) CutoffInstant() (time.Time, error) {
	if i.Cutoff == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, i.Cutoff)
}
