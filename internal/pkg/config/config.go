package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	RealtimeDriverLocal = "local"
	RealtimeDriverRedis = "redis"
)

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Store       StoreConfig
	CORS        CORSConfig
	Cookie      CookieConfig
	Log         LogConfig
	JWT         JWTConfig
	Admin       AdminConfig
	Mail        MailConfig
	Realtime    RealtimeConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	Jobs        JobsConfig
	Reservation ReservationConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// StoreConfig selects the storage backend. "memory" keeps everything in process
// and is meant for local development only.
type StoreConfig struct {
	Driver      string `envconfig:"STORE_DRIVER" default:"postgres"`
	SeedCatalog bool   `envconfig:"STORE_SEED_CATALOG" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

// AdminConfig holds the single studio-staff account. PasswordHash is a bcrypt hash.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"owner"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
}

type MailConfig struct {
	SendGridAPIKey string        `envconfig:"SENDGRID_API_KEY"`
	FromAddress    string        `envconfig:"MAIL_FROM_ADDRESS" default:"bookings@littlethings.studio"`
	FromName       string        `envconfig:"MAIL_FROM_NAME" default:"Little Things"`
	OwnerEmail     string        `envconfig:"OWNER_EMAIL"`
	SendTimeout    time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"15s"`
}

type RealtimeConfig struct {
	Driver        string `envconfig:"REALTIME_DRIVER" default:"local"`
	ChannelPrefix string `envconfig:"REALTIME_CHANNEL_PREFIX" default:"littlethings:slots:"`
	BufferSize    int    `envconfig:"REALTIME_BUFFER_SIZE" default:"32"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// RateLimitConfig covers the booking endpoint; login has its own, stricter
// bucket so failed sign-ins cannot eat into a visitor's booking allowance.
type RateLimitConfig struct {
	Enabled    bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS        float64       `envconfig:"RATE_LIMIT_RPS" default:"1"`
	Burst      int           `envconfig:"RATE_LIMIT_BURST" default:"5"`
	LoginRPS   float64       `envconfig:"RATE_LIMIT_LOGIN_RPS" default:"0.2"`
	LoginBurst int           `envconfig:"RATE_LIMIT_LOGIN_BURST" default:"5"`
	TTL        time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
}

type JobsConfig struct {
	Enabled            bool          `envconfig:"JOBS_ENABLED" default:"true"`
	ResendSpec         string        `envconfig:"JOBS_RESEND_SPEC" default:"@every 5m"`
	ResendGracePeriod  time.Duration `envconfig:"JOBS_RESEND_GRACE_PERIOD" default:"2m"`
	ResendBatchSize    int           `envconfig:"JOBS_RESEND_BATCH_SIZE" default:"50"`
	ResendMaxAttempts  int           `envconfig:"JOBS_RESEND_MAX_ATTEMPTS" default:"5"`
	CompletionSpec     string        `envconfig:"JOBS_COMPLETION_SPEC" default:"0 30 0 * * *"`
	CompletionTimezone string        `envconfig:"JOBS_COMPLETION_TIMEZONE" default:"Asia/Kolkata"`
	PurgeSpec          string        `envconfig:"JOBS_PURGE_SPEC" default:"0 0 * * * *"`
}

type ReservationConfig struct {
	MaxCodeAttempts int           `envconfig:"RESERVATION_MAX_CODE_ATTEMPTS" default:"5"`
	IdempotencyTTL  time.Duration `envconfig:"RESERVATION_IDEMPOTENCY_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file and then the process environment.
// Real environment variables win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Realtime.Driver {
	case RealtimeDriverLocal, RealtimeDriverRedis:
	default:
		return fmt.Errorf("unknown REALTIME_DRIVER %q", c.Realtime.Driver)
	}

	if c.Mail.SendGridAPIKey != "" && c.Mail.OwnerEmail == "" {
		return fmt.Errorf("OWNER_EMAIL is required when SENDGRID_API_KEY is set")
	}

	if c.Reservation.MaxCodeAttempts < 1 {
		return fmt.Errorf("RESERVATION_MAX_CODE_ATTEMPTS must be at least 1")
	}
	if c.Reservation.IdempotencyTTL < 0 {
		return fmt.Errorf("RESERVATION_IDEMPOTENCY_TTL must not be negative")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 20,
		},
		Store: StoreConfig{
			Driver:      StoreDriverPostgres,
			SeedCatalog: true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Username: "owner",
		},
		Mail: MailConfig{
			FromAddress: "bookings@littlethings.test",
			FromName:    "Little Things",
			OwnerEmail:  "owner@littlethings.test",
			SendTimeout: time.Second,
		},
		Realtime: RealtimeConfig{
			Driver:        RealtimeDriverLocal,
			ChannelPrefix: "littlethings:slots:",
			BufferSize:    32,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Jobs: JobsConfig{
			Enabled: false,
		},
		Reservation: ReservationConfig{
			MaxCodeAttempts: 5,
			IdempotencyTTL:  24 * time.Hour,
		},
	}
}
