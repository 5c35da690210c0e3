package config

import (
	"fmt"
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
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Store  StoreConfig
	DB     DBConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Admin  AdminConfig
	OTP    OTPConfig
	Coupon CouponConfig
}

type AppConfig struct {
	Version string `envconfig:"APP_VERSION" default:"1.0.0"`
	Env     string `envconfig:"APP_ENV" default:"development"`
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"50"`
}

// Empty URL disables Redis: OTPs fall back to process memory and the redeemed marker is off.
type RedisConfig struct {
	URL         string        `envconfig:"REDIS_URL"`
	RedeemedTTL time.Duration `envconfig:"REDIS_REDEEMED_TTL" default:"720h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-API-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type AdminConfig struct {
	APIKey string `envconfig:"ADMIN_API_KEY" required:"true"`
}

type OTPConfig struct {
	TTL time.Duration `envconfig:"OTP_TTL" default:"5m"`
	// DevCode replaces the random code when set. Never set it in production.
	DevCode string `envconfig:"OTP_DEV_CODE"`
}

type CouponConfig struct {
	MaxPerBatch     int `envconfig:"COUPON_MAX_PER_BATCH" default:"10000"`
	TokenMaxRetries int `envconfig:"COUPON_TOKEN_MAX_RETRIES" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

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
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Coupon.MaxPerBatch < 1 {
		return fmt.Errorf("COUPON_MAX_PER_BATCH must be positive")
	}
	if c.Coupon.TokenMaxRetries < 0 {
		return fmt.Errorf("COUPON_TOKEN_MAX_RETRIES must not be negative")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Version: "test",
			Env:     "test",
		},
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Redis: RedisConfig{
			RedeemedTTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			APIKey: "test-admin-key",
		},
		OTP: OTPConfig{
			TTL:     5 * time.Minute,
			DevCode: "123456",
		},
		Coupon: CouponConfig{
			MaxPerBatch:     1000,
			TokenMaxRetries: 5,
		},
	}
}
