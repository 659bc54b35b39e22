package config

import (
    "fmt"
    "net/url"
    "os"
    "strings"
    "time"

    "github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
    Env       string          `yaml:"env" env:"APP_ENV" env-default:"development"`
    Server    ServerConfig    `yaml:"server"`
    Database  DatabaseConfig  `yaml:"database"`
    Backend   BackendConfig   `yaml:"backend"`
    Session   SessionConfig   `yaml:"session"`
    Refresher RefresherConfig `yaml:"refresher"`
    Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
    ListenAddr      string        `yaml:"listen_addr"      env:"LISTEN_ADDR"             env-default:":8080"`
    ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
    WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
    ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DatabaseConfig struct {
    URL      string `yaml:"url"       env:"DATABASE_URL"`
    MaxConns int32  `yaml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"10"`
    Migrate  bool   `yaml:"migrate"   env:"DATABASE_MIGRATE"   env-default:"true"`
}

// BackendConfig points at the ChainCarbon REST API.
type BackendConfig struct {
    BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"http://localhost:5000/api"`
    Timeout time.Duration `yaml:"timeout"  env:"BACKEND_TIMEOUT"  env-default:"30s"`
}

type SessionConfig struct {
    CookieName   string        `yaml:"cookie_name"   env:"SESSION_COOKIE_NAME"   env-default:"cc_session"`
    TTL          time.Duration `yaml:"ttl"           env:"SESSION_TTL"           env-default:"24h"`
    SecureCookie bool          `yaml:"secure_cookie" env:"SESSION_SECURE_COOKIE" env-default:"false"`
}

// RefresherConfig drives the delayed certificate refresh after a listing.
type RefresherConfig struct {
    Workers      int           `yaml:"workers"       env:"REFRESH_WORKERS"       env-default:"1"`
    PollInterval time.Duration `yaml:"poll_interval" env:"REFRESH_POLL_INTERVAL" env-default:"500ms"`
    Delay        time.Duration `yaml:"delay"         env:"REFRESH_DELAY"         env-default:"2s"`
}

type LogConfig struct {
    Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
    Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Load reads CONFIG_PATH (default ./config.yaml) when present, then the
// environment. ENV wins over YAML, YAML over defaults.
func Load() (Config, error) {
    var cfg Config

    path := os.Getenv("CONFIG_PATH")
    explicit := path != ""
    if !explicit {
        path = "./config.yaml"
    }

    if _, err := os.Stat(path); err == nil {
        if err := cleanenv.ReadConfig(path, &cfg); err != nil {
            return cfg, fmt.Errorf("config: read %s: %w", path, err)
        }
    } else if explicit {
        return cfg, fmt.Errorf("config: %s: %w", path, err)
    } else if err := cleanenv.ReadEnv(&cfg); err != nil {
        return cfg, fmt.Errorf("config: read env: %w", err)
    }

    if err := cfg.Validate(); err != nil {
        return cfg, err
    }
    return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
    if c.Database.URL == "" {
        return fmt.Errorf("config: DATABASE_URL is required")
    }
    u, err := url.Parse(c.Backend.BaseURL)
    if err != nil || u.Scheme == "" || u.Host == "" {
        return fmt.Errorf("config: BACKEND_BASE_URL %q is not an absolute URL", c.Backend.BaseURL)
    }
    if c.Backend.Timeout <= 0 {
        return fmt.Errorf("config: BACKEND_TIMEOUT must be positive")
    }
    if strings.TrimSpace(c.Session.CookieName) == "" {
        return fmt.Errorf("config: SESSION_COOKIE_NAME is required")
    }
    if c.Session.TTL <= 0 {
        return fmt.Errorf("config: SESSION_TTL must be positive")
    }
    if c.Refresher.Workers < 0 {
        return fmt.Errorf("config: REFRESH_WORKERS must not be negative")
    }
    if c.Refresher.Workers > 0 && c.Refresher.PollInterval <= 0 {
        return fmt.Errorf("config: REFRESH_POLL_INTERVAL must be positive")
    }
    if c.Refresher.Delay < 0 {
        return fmt.Errorf("config: REFRESH_DELAY must not be negative")
    }
    return nil
}
