package config

import (
	"errors"
	"fmt"
	"net/mail"
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
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Mail      MailConfig
	Social    SocialConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Client-Info,Apikey"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig holds the signing secret shared with the hosted auth platform.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
	// Audience is checked against the aud claim when set, e.g. "authenticated".
	Audience string `envconfig:"JWT_AUDIENCE"`
}

type RateLimitConfig struct {
	// memory | postgres
	Backend            string        `envconfig:"RATE_LIMIT_BACKEND" default:"postgres"`
	ContactMax         int           `envconfig:"RATE_LIMIT_CONTACT_MAX" default:"5"`
	ContactWindow      time.Duration `envconfig:"RATE_LIMIT_CONTACT_WINDOW" default:"10m"`
	RegistrationMax    int           `envconfig:"RATE_LIMIT_REGISTRATION_MAX" default:"5"`
	RegistrationWindow time.Duration `envconfig:"RATE_LIMIT_REGISTRATION_WINDOW" default:"5m"`
	PruneInterval      time.Duration `envconfig:"RATE_LIMIT_PRUNE_INTERVAL" default:"1m"`
}

type MailConfig struct {
	APIKey       string        `envconfig:"RESEND_API_KEY" required:"true"`
	BaseURL      string        `envconfig:"RESEND_BASE_URL" default:"https://api.resend.com"`
	FromEmail    string        `envconfig:"FROM_EMAIL" default:"noreply@rugboost.com"`
	SupportEmail string        `envconfig:"SUPPORT_EMAIL" default:"support@rugboost.com"`
	Timeout      time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

type SocialConfig struct {
	// sqlite | postgres
	Store      string `envconfig:"SOCIAL_STORE" default:"postgres"`
	SQLitePath string `envconfig:"SOCIAL_SQLITE_PATH" default:"social_posts.db"`
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

// Validate reports every setting that would only fail once a request hits it.
func (c Config) Validate() error {
	var problems []error
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		problems = append(problems, fmt.Errorf("JWT_DURATION: %w", err))
	}
	if c.RateLimit.ContactMax < 1 || c.RateLimit.RegistrationMax < 1 {
		problems = append(problems, errors.New("rate limit maximums must be at least 1"))
	}
	if c.RateLimit.ContactWindow <= 0 || c.RateLimit.RegistrationWindow <= 0 {
		problems = append(problems, errors.New("rate limit windows must be positive"))
	}
	for name, addr := range map[string]string{"FROM_EMAIL": c.Mail.FromEmail, "SUPPORT_EMAIL": c.Mail.SupportEmail} {
		if _, err := mail.ParseAddress(addr); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", name, err))
		}
	}
	if c.Mail.Timeout <= 0 {
		problems = append(problems, errors.New("MAIL_TIMEOUT must be positive"))
	}
	return errors.Join(problems...)
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
			TimeZone: "UTC",
			Migrate:  true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing",
			Duration: "1h",
		},
		RateLimit: RateLimitConfig{
			Backend:            "memory",
			ContactMax:         5,
			ContactWindow:      10 * time.Minute,
			RegistrationMax:    5,
			RegistrationWindow: 5 * time.Minute,
			PruneInterval:      time.Minute,
		},
		Mail: MailConfig{
			APIKey:       "re_test",
			BaseURL:      "http://localhost:0",
			FromEmail:    "noreply@rugboost.com",
			SupportEmail: "support@rugboost.com",
			Timeout:      time.Second,
		},
		Social: SocialConfig{
			Store:      "sqlite",
			SQLitePath: ":memory:",
		},
	}
}
