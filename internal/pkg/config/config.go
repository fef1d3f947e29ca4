package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Reminder ReminderConfig
	Push     PushConfig
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
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8081"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// ReminderConfig controls when reminders fire and how often the sweeper delivers them.
// Hour and TimeZone define the wall-clock time every reminder is normalized to.
type ReminderConfig struct {
	Hour         int    `envconfig:"REMINDER_HOUR" default:"9"`
	TimeZone     string `envconfig:"REMINDER_TIMEZONE" default:"Asia/Tokyo"`
	SweepEnabled bool   `envconfig:"REMINDER_SWEEP_ENABLED" default:"true"`
	SweepCron    string `envconfig:"REMINDER_SWEEP_CRON" default:"0 * * * *"`
	SweepBatch   int32  `envconfig:"REMINDER_SWEEP_BATCH" default:"200"`
	MaxAttempts  int32  `envconfig:"REMINDER_MAX_ATTEMPTS" default:"3"`
	// a claimed job not finished within StuckAfter is requeued
	StuckAfter time.Duration `envconfig:"REMINDER_STUCK_AFTER" default:"15m"`
	// due jobs older than MaxLateness are dropped, e.g. after a sweeper outage
	MaxLateness time.Duration `envconfig:"REMINDER_MAX_LATENESS" default:"3h"`
}

type PushConfig struct {
	// Empty means reminders are only logged, never sent to devices.
	CredentialsFile string  `envconfig:"PUSH_CREDENTIALS_FILE"`
	RatePerSecond   float64 `envconfig:"PUSH_RATE_PER_SEC" default:"20"`
	Burst           int     `envconfig:"PUSH_BURST" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone, c.MaxConns,
	)
}

func (c ReminderConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c ReminderConfig) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("REMINDER_HOUR must be between 0 and 23, got %d", c.Hour)
	}
	if c.SweepBatch <= 0 {
		return fmt.Errorf("REMINDER_SWEEP_BATCH must be positive, got %d", c.SweepBatch)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("REMINDER_MAX_ATTEMPTS must be positive, got %d", c.MaxAttempts)
	}
	if c.StuckAfter <= 0 {
		return fmt.Errorf("REMINDER_STUCK_AFTER must be positive, got %s", c.StuckAfter)
	}
	if c.MaxLateness <= 0 {
		return fmt.Errorf("REMINDER_MAX_LATENESS must be positive, got %s", c.MaxLateness)
	}
	_, err := c.Location()
	return err
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments inject the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Reminder.Validate(); err != nil {
		return Config{}, err
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
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-recipe-scheduler",
			Duration: "1h",
		},
		Reminder: ReminderConfig{
			Hour:         9,
			TimeZone:     "Asia/Tokyo",
			SweepEnabled: false, // tests drive the sweeper through RunOnce
			SweepCron:    "0 * * * *",
			SweepBatch:   50,
			MaxAttempts:  3,
			StuckAfter:   15 * time.Minute,
			MaxLateness:  3 * time.Hour,
		},
		Push: PushConfig{
			RatePerSecond: 1000,
			Burst:         100,
		},
	}
}
