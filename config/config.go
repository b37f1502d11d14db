package config

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	HTTPPort    string `envconfig:"HTTP_PORT"    default:":3000"`
	GrpcPort    string `envconfig:"GRPC_PORT"    default:":50051"` // gRPC health endpoint
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT"   default:"json"`

	StaticDir        string   `envconfig:"STATIC_DIR"         default:"public"`
	ReportDir        string   `envconfig:"REPORT_DIR"         default:"reports"`
	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`

	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS"    default:"10"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS"    default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	DBQueryTimeout    time.Duration `envconfig:"DB_QUERY_TIMEOUT"     default:"5s"`
	DBAutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE"      default:"true"`

	HealthCheckInterval time.Duration `envconfig:"HEALTH_CHECK_INTERVAL" default:"10s"`
	ShutdownTimeout     time.Duration `envconfig:"SHUTDOWN_TIMEOUT"      default:"10s"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads the optional .env file and the environment once per process.
// A missing or invalid configuration is fatal.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Process()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s", config.HTTPPort, config.GrpcPort, config.LogLevel)
		logger.Info("Configuration loaded: DatabaseURL is set")
	})
	return &config
}

// Process builds a Config from the current environment without touching .env files.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("LOG_FORMAT must be json or text")
	}
	if cfg.DBQueryTimeout <= 0 {
		return nil, errors.New("DB_QUERY_TIMEOUT must be positive")
	}
	if cfg.HealthCheckInterval <= 0 {
		return nil, errors.New("HEALTH_CHECK_INTERVAL must be positive")
	}
	return &cfg, nil
}
