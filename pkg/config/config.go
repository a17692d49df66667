package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Cache        CacheConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"CIVICREPORT_APP_ENV" required:"true"`
	Port         string `envconfig:"CIVICREPORT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CIVICREPORT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CIVICREPORT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CIVICREPORT_DB_DSN"`
	Driver string `envconfig:"CIVICREPORT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CIVICREPORT_DB_HOST"`
	LegacyPort     int    `envconfig:"CIVICREPORT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CIVICREPORT_DB_USER"`
	LegacyPassword string `envconfig:"CIVICREPORT_DB_PASSWORD"`
	LegacyName     string `envconfig:"CIVICREPORT_DB_NAME"`
	LegacySSLMode  string `envconfig:"CIVICREPORT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CIVICREPORT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CIVICREPORT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CIVICREPORT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CIVICREPORT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CIVICREPORT_REDIS_URL"`
	Address      string        `envconfig:"CIVICREPORT_REDIS_ADDR"`
	Password     string        `envconfig:"CIVICREPORT_REDIS_PASSWORD"`
	DB           int           `envconfig:"CIVICREPORT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CIVICREPORT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CIVICREPORT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CIVICREPORT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CIVICREPORT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CIVICREPORT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured. The cache layer is
// optional; the API runs without it.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"CIVICREPORT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"CIVICREPORT_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"CIVICREPORT_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CIVICREPORT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CIVICREPORT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CIVICREPORT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CIVICREPORT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CIVICREPORT_ARGON_KEY_LEN" default:"32"`
}

type CacheConfig struct {
	CategoryTTL time.Duration `envconfig:"CIVICREPORT_CACHE_CATEGORY_TTL" default:"10m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CIVICREPORT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CIVICREPORT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
