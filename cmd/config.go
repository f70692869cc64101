package cmd

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort                string        `envconfig:"HTTP_PORT" default:"8080"`
	BackendURL              string        `envconfig:"BACKEND_URL" required:"true"`
	RequestTimeout          time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	AssignmentFailurePolicy string        `envconfig:"ASSIGNMENT_FAILURE_POLICY" default:"keep"`
	OrderRefreshSchedule    string        `envconfig:"ORDER_REFRESH_SCHEDULE" default:"@every 30s"`
	DriverRefreshSchedule   string        `envconfig:"DRIVER_REFRESH_SCHEDULE" default:"@every 5m"`
	NoticeCapacity          int           `envconfig:"NOTICE_CAPACITY" default:"50"`
	LogLevel                string        `envconfig:"LOG_LEVEL" default:"info"`
	DBHost                  string        `envconfig:"DB_HOST"`
	DBPort                  string        `envconfig:"DB_PORT" default:"5432"`
	DBUser                  string        `envconfig:"DB_USER"`
	DBPassword              string        `envconfig:"DB_PASSWORD"`
	DBName                  string        `envconfig:"DB_NAME"`
	DBSslMode               string        `envconfig:"DB_SSLMODE" default:"disable"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if _, err := url.ParseRequestURI(cfg.BackendURL); err != nil {
		return Config{}, fmt.Errorf("BACKEND_URL: %w", err)
	}
	return cfg, nil
}

// JournalEnabled reports whether a database is configured.
func (c Config) JournalEnabled() bool {
	return c.DBHost != ""
}

// DSN builds the postgres connection string of the journal database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
