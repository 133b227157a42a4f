package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Scheduler SchedulerConfig
	Pricing   PricingConfig
	Stripe    StripeConfig
	Alert     AlertConfig
	Outbox    OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Stripe-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// SchedulerConfig drives retry/backoff policy and I/O bounds of the price-change scheduler.
type SchedulerConfig struct {
	MaxAttempts             int           `envconfig:"SCHEDULER_MAX_ATTEMPTS" default:"3"`
	RetryBackoffInitial     time.Duration `envconfig:"SCHEDULER_RETRY_BACKOFF_INITIAL" default:"15m"`
	RetryBackoffMultiplier  float64       `envconfig:"SCHEDULER_RETRY_BACKOFF_MULTIPLIER" default:"4"`
	RetryBackoffMax         time.Duration `envconfig:"SCHEDULER_RETRY_BACKOFF_MAX" default:"24h"`
	RetrySweepSchedule      string        `envconfig:"SCHEDULER_RETRY_SWEEP_SCHEDULE" default:"@every 5m"`
	RetrySweepConcurrency   int           `envconfig:"SCHEDULER_RETRY_SWEEP_CONCURRENCY" default:"4"`
	PriceTolerance          string        `envconfig:"SCHEDULER_PRICE_TOLERANCE" default:"0.01"`
	DriftIsPermanent        bool          `envconfig:"SCHEDULER_DRIFT_IS_PERMANENT" default:"true"`
	BillingTimeout          time.Duration `envconfig:"SCHEDULER_BILLING_TIMEOUT" default:"10s"`
	StoreTimeout            time.Duration `envconfig:"SCHEDULER_STORE_TIMEOUT" default:"5s"`
	HistoryRetentionPerSubs int           `envconfig:"SCHEDULER_HISTORY_RETENTION_PER_SUBSCRIPTION" default:"50"`
}

type PricingConfig struct {
	ReductionRate string `envconfig:"PRICING_REDUCTION_RATE" default:"0.20"`
}

type StripeConfig struct {
	APIKey        string `envconfig:"STRIPE_API_KEY" required:"true"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
}

// Empty DSN disables Sentry; alerts then only go to the error log.
type AlertConfig struct {
	SentryDSN         string `envconfig:"SENTRY_DSN"`
	SentryEnvironment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
}

// Empty NATS URL disables the outcome relay; outcomes stay queryable from the outbox table.
type OutboxConfig struct {
	NATSURL       string `envconfig:"NATS_URL"`
	SubjectPrefix string `envconfig:"NATS_SUBJECT_PREFIX" default:"referral.price_change"`
	RelaySchedule string `envconfig:"OUTBOX_RELAY_SCHEDULE" default:"@every 30s"`
	BatchSize     int32  `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Scheduler: SchedulerConfig{
			MaxAttempts:             3,
			RetryBackoffInitial:     15 * time.Minute,
			RetryBackoffMultiplier:  4,
			RetryBackoffMax:         24 * time.Hour,
			RetrySweepSchedule:      "@every 5m",
			RetrySweepConcurrency:   2,
			PriceTolerance:          "0.01",
			DriftIsPermanent:        true,
			BillingTimeout:          2 * time.Second,
			StoreTimeout:            2 * time.Second,
			HistoryRetentionPerSubs: 50,
		},
		Pricing: PricingConfig{
			ReductionRate: "0.20",
		},
		Stripe: StripeConfig{
			APIKey:        "sk_test_dummy",
			WebhookSecret: "whsec_test",
		},
		Outbox: OutboxConfig{
			SubjectPrefix: "referral.price_change",
			RelaySchedule: "@every 30s",
			BatchSize:     100,
		},
	}
}
