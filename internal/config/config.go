package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Moneypot"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		// Backend selects where the ledgers live: "file" keeps the
		// JSON files the desktop tool used, "postgres" uses the DB.
		Backend string `envconfig:"STORAGE_BACKEND" default:"file"`
		DataDir string `envconfig:"DATA_DIR" default:"data"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"moneypot"`
	}

	Ledger struct {
		// ScheduleStep controls repayment schedule stepping:
		// "fixed30" for 30-day periods, "calendar" for calendar months.
		ScheduleStep string `envconfig:"LEDGER_SCHEDULE_STEP" default:"fixed30"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
