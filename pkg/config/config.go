package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "nutritrack"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Uploads       UploadsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NUTRITRACK_APP_ENV" required:"true"`
	Port         string `envconfig:"NUTRITRACK_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"NUTRITRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NUTRITRACK_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"NUTRITRACK_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"NUTRITRACK_DB_DSN"`

	Host     string `envconfig:"NUTRITRACK_DB_HOST"`
	Port     int    `envconfig:"NUTRITRACK_DB_PORT" default:"5432"`
	User     string `envconfig:"NUTRITRACK_DB_USER"`
	Password string `envconfig:"NUTRITRACK_DB_PASSWORD"`
	Name     string `envconfig:"NUTRITRACK_DB_NAME"`
	SSLMode  string `envconfig:"NUTRITRACK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"NUTRITRACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NUTRITRACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NUTRITRACK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NUTRITRACK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a postgres URL from the discrete settings when no DSN
// was provided directly.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either NUTRITRACK_DB_DSN or host/user/name settings are required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"NUTRITRACK_REDIS_URL"`
	Address      string        `envconfig:"NUTRITRACK_REDIS_ADDR"`
	Password     string        `envconfig:"NUTRITRACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"NUTRITRACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NUTRITRACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NUTRITRACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NUTRITRACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NUTRITRACK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NUTRITRACK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"NUTRITRACK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"NUTRITRACK_JWT_ISSUER" default:"nutritrack"`
	ExpirationMinutes int    `envconfig:"NUTRITRACK_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	MinLength        int `envconfig:"NUTRITRACK_PASSWORD_MIN_LENGTH" default:"5"`
	ArgonMemoryKB    int `envconfig:"NUTRITRACK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"NUTRITRACK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"NUTRITRACK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"NUTRITRACK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"NUTRITRACK_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	TokenWindow      time.Duration `envconfig:"NUTRITRACK_AUTH_RATE_LIMIT_TOKEN_WINDOW" default:"1m"`
	TokenEmailLimit  int           `envconfig:"NUTRITRACK_AUTH_RATE_LIMIT_TOKEN_EMAIL_LIMIT" default:"5"`
	TokenIPLimit     int           `envconfig:"NUTRITRACK_AUTH_RATE_LIMIT_TOKEN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"NUTRITRACK_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"NUTRITRACK_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"NUTRITRACK_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type UploadsConfig struct {
	Dir         string `envconfig:"NUTRITRACK_UPLOADS_DIR" default:"uploads"`
	MaxUploadMB int    `envconfig:"NUTRITRACK_MAX_UPLOAD_MB" default:"10"`
}
