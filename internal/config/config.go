package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Upload   UploadConfig
	Storage  StorageConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"API_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"10s"`
}

type WorkerConfig struct {
	MaxRetries      int           `envconfig:"WORKER_MAX_RETRIES" default:"3"`
	ShutdownTimeout time.Duration `envconfig:"WORKER_SHUTDOWN_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port           int           `envconfig:"POSTGRES_PORT" default:"5432"`
	User           string        `envconfig:"POSTGRES_USER" default:"vidshare"`
	Password       string        `envconfig:"POSTGRES_PASSWORD" default:"vidshare"`
	DBName         string        `envconfig:"POSTGRES_DB" default:"vidshare"`
	SSLMode        string        `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxConns       int32         `envconfig:"POSTGRES_MAX_CONNS" default:"25"`
	AcquireTimeout time.Duration `envconfig:"POSTGRES_ACQUIRE_TIMEOUT" default:"5s"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret  string        `envconfig:"AUTH_JWT_SECRET" default:"dev-secret-change-me"`
	TokenTTL   time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
	BcryptCost int           `envconfig:"AUTH_BCRYPT_COST" default:"10"`
}

type UploadConfig struct {
	MaxFileSize       int64    `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"2147483648"`
	AllowedExtensions []string `envconfig:"UPLOAD_ALLOWED_EXTENSIONS" default:".mp4,.mov,.avi,.mkv,.webm"`
}

// StorageConfig selects the blob storage backend at construction time.
// Backend is either "local" or "minio".
type StorageConfig struct {
	Backend    string `envconfig:"STORAGE_BACKEND" default:"local"`
	StagingDir string `envconfig:"STORAGE_STAGING_DIR" default:"/var/lib/vidshare/staging"`
	DurableDir string `envconfig:"STORAGE_DURABLE_DIR" default:"/var/lib/vidshare/videos"`
	MinIO      MinIOConfig
}

type MinIOConfig struct {
	Endpoint  string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKey string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	SecretKey string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	Bucket    string `envconfig:"MINIO_BUCKET" default:"videos"`
	UseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type RabbitMQConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"vidshare"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"vidshare"`
	VHost    string `envconfig:"RABBITMQ_VHOST" default:"/"`
}

func (c RabbitMQConfig) URL() string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%d%s",
		c.User, c.Password, c.Host, c.Port, c.VHost,
	)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
