package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	HTTPPort                  string
	DBHost                    string
	DBPort                    string
	DBUser                    string
	DBPassword                string
	DBName                    string
	DBSslMode                 string
	KafkaBrokers              []string
	KafkaOrderChangedTopic    string
	KafkaDeliveryChangedTopic string
	LogLevel                  string
	OverdueCheckSchedule      string
	CourierAverageSpeedKmh    float64
}

// LoadConfig reads configuration in order: .env (if present), environment,
// then command-line flags.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn(".env not loaded", "error", err)
	}

	cfg := Config{
		HTTPPort:                  envOr("HTTP_PORT", "8080"),
		DBHost:                    envOr("DB_HOST", "localhost"),
		DBPort:                    envOr("DB_PORT", "5432"),
		DBUser:                    envOr("DB_USER", "postgres"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    envOr("DB_NAME", "fulfillment"),
		DBSslMode:                 envOr("DB_SSLMODE", "disable"),
		KafkaOrderChangedTopic:    envOr("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed"),
		KafkaDeliveryChangedTopic: envOr("KAFKA_DELIVERY_CHANGED_TOPIC", "delivery.status.changed"),
		LogLevel:                  envOr("LOG_LEVEL", "info"),
		OverdueCheckSchedule:      envOr("OVERDUE_CHECK_SCHEDULE", jobs.DefaultOverdueSchedule),
		CourierAverageSpeedKmh:    services.DefaultAverageSpeedKmh,
	}
	brokers := os.Getenv("KAFKA_BROKERS")
	if v := os.Getenv("COURIER_AVERAGE_SPEED_KMH"); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("COURIER_AVERAGE_SPEED_KMH: %w", err)
		}
		cfg.CourierAverageSpeedKmh = speed
	}

	flags := pflag.NewFlagSet("fulfillment", pflag.ContinueOnError)
	flags.StringVarP(&cfg.HTTPPort, "port", "p", cfg.HTTPPort, "port to listen on")
	flags.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "postgres host")
	flags.StringVar(&cfg.DBPort, "db-port", cfg.DBPort, "postgres port")
	flags.StringVar(&cfg.DBName, "db-name", cfg.DBName, "postgres database")
	flags.StringVar(&brokers, "kafka-brokers", brokers, "comma separated kafka brokers, empty disables publishing")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flags.StringVar(&cfg.OverdueCheckSchedule, "overdue-schedule", cfg.OverdueCheckSchedule, "cron spec with seconds")
	flags.Float64Var(&cfg.CourierAverageSpeedKmh, "courier-speed", cfg.CourierAverageSpeedKmh, "average courier speed, km/h")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.KafkaBrokers = splitList(brokers)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errList []error
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port <= 0 || port > 65535 {
		errList = append(errList, fmt.Errorf("invalid port: %q", c.HTTPPort))
	}
	if strings.TrimSpace(c.DBHost) == "" {
		errList = append(errList, errors.New("DB_HOST is required"))
	}
	if strings.TrimSpace(c.DBName) == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}
	if math.IsNaN(c.CourierAverageSpeedKmh) || c.CourierAverageSpeedKmh <= 0 {
		errList = append(errList, fmt.Errorf("courier average speed must be positive, got %g", c.CourierAverageSpeedKmh))
	}
	if _, err := c.SlogLevel(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
