package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/jobs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

// Notification transports.
const (
	NotifierLog      = "log"
	NotifierKafka    = "kafka"
	NotifierRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" validate:"required"`

	DBHost     string `env:"DB_HOST" validate:"required"`
	DBPort     string `env:"DB_PORT" validate:"required"`
	DBUser     string `env:"DB_USER" validate:"required"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" validate:"required"`
	DBSslMode  string `env:"DB_SSLMODE"`

	LogLevel  slog.Level `env:"LOG_LEVEL"`
	LogPretty bool       `env:"LOG_PRETTY"`

	Notifier      string `env:"NOTIFIER" validate:"oneof=log kafka rabbitmq"`
	KafkaHost     string `env:"KAFKA_HOST" validate:"required_if=Notifier kafka"`
	KafkaTopic    string `env:"KAFKA_NOTIFICATIONS_TOPIC" validate:"required_if=Notifier kafka"`
	RabbitMQURL   string `env:"RABBITMQ_URL" validate:"required_if=Notifier rabbitmq"`
	RabbitMQQueue string `env:"RABBITMQ_QUEUE" validate:"required_if=Notifier rabbitmq"`

	DashboardBranchTimeout time.Duration `env:"DASHBOARD_BRANCH_TIMEOUT" validate:"gt=0"`
	RetentionSchedule      string        `env:"RETENTION_SCHEDULE" validate:"required"`
	Retention              time.Duration `env:"RETENTION_PERIOD" validate:"gt=0"`
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

var defaults = map[string]any{
	"http_port":                 "8080",
	"db_port":                   "5432",
	"db_sslmode":                "disable",
	"log_level":                 "info",
	"log_pretty":                false,
	"notifier":                  NotifierLog,
	"kafka_notifications_topic": "freight.notifications",
	"rabbitmq_queue":            "freight.notifications",
	"dashboard_branch_timeout":  queries.DefaultBranchTimeout.String(),
	"retention_schedule":        jobs.DefaultRetentionSchedule,
	"retention_period":          commands.DefaultRetention.String(),
}

// LoadConfig reads envFile into the environment when it exists, then builds
// the configuration from environment variables over the defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	k := koanf.New(".")
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return Config{}, err
		}
	}
	err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(key), value
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	cfg := Config{
		HTTPPort:          k.String("http_port"),
		DBHost:            k.String("db_host"),
		DBPort:            k.String("db_port"),
		DBUser:            k.String("db_user"),
		DBPassword:        k.String("db_password"),
		DBName:            k.String("db_name"),
		DBSslMode:         k.String("db_sslmode"),
		LogPretty:         k.Bool("log_pretty"),
		Notifier:          strings.ToLower(k.String("notifier")),
		KafkaHost:         k.String("kafka_host"),
		KafkaTopic:        k.String("kafka_notifications_topic"),
		RabbitMQURL:       k.String("rabbitmq_url"),
		RabbitMQQueue:     k.String("rabbitmq_queue"),
		RetentionSchedule: k.String("retention_schedule"),
	}

	var errs []error
	if err = cfg.LogLevel.UnmarshalText([]byte(k.String("log_level"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if cfg.DashboardBranchTimeout, err = time.ParseDuration(k.String("dashboard_branch_timeout")); err != nil {
		errs = append(errs, fmt.Errorf("DASHBOARD_BRANCH_TIMEOUT: %w", err))
	}
	if cfg.Retention, err = time.ParseDuration(k.String("retention_period")); err != nil {
		errs = append(errs, fmt.Errorf("RETENTION_PERIOD: %w", err))
	}
	errs = append(errs, cfg.validate()...)
	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var configValidator = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})
	return v
}()

// validate reports every broken rule, named by the environment variable
// that sets the field.
func (c Config) validate() []error {
	err := configValidator.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		if err != nil {
			return []error{err}
		}
		return nil
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s is required", fe.Field()))
		case "required_if":
			errs = append(errs, fmt.Errorf("%s is required for the %s notifier", fe.Field(), c.Notifier))
		case "oneof":
			errs = append(errs, fmt.Errorf("%s %q is not one of %s", fe.Field(), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "gt":
			errs = append(errs, fmt.Errorf("%s must be positive", fe.Field()))
		default:
			errs = append(errs, fmt.Errorf("%s fails %s", fe.Field(), fe.Tag()))
		}
	}
	return errs
}
