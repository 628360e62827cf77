package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/spf13/viper"
)

// Preference backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Backends lists the supported preference backends.
func Backends() []string {
	return []string{BackendMemory, BackendFile, BackendSQLite, BackendRedis}
}

// Viper keys.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyLogFile        = "logging.file"
	KeyPrefsBackend   = "preferences.backend"
	KeyPrefsFile      = "preferences.file"
	KeyPrefsSQLite    = "preferences.sqlite_path"
	KeyRedisAddr      = "preferences.redis.addr"
	KeyRedisPassword  = "preferences.redis.password"
	KeyRedisDB        = "preferences.redis.db"
	KeyRedisHash      = "preferences.redis.key"
	KeyDefaultSection = "dashboard.section"
)

// Defaults.
const (
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	DefaultBackend    = BackendFile
	DefaultPrefsFile  = "~/.config/logisticspro/preferences.yaml"
	DefaultSQLitePath = "~/.local/share/logisticspro/preferences.db"
	DefaultRedisAddr  = "localhost:6379"
	DefaultRedisHash  = "logisticspro:preferences"
	DefaultSection    = "dashboard"
)

// Config is the resolved application configuration.
type Config struct {
	Logging     Logging
	Preferences Preferences
	Section     string // Section shown when the dashboard opens
}

// Logging controls slog output.
type Logging struct {
	Level  string
	Format string
	File   string // Empty keeps stderr
}

// Preferences selects and configures the preference store.
type Preferences struct {
	Backend    string
	File       string
	SQLitePath string
	Redis      Redis
}

// Redis configures the redis preference backend.
type Redis struct {
	Addr     string
	Password string
	Hash     string
	DB       int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyPrefsBackend, DefaultBackend)
	v.SetDefault(KeyPrefsFile, DefaultPrefsFile)
	v.SetDefault(KeyPrefsSQLite, DefaultSQLitePath)
	v.SetDefault(KeyRedisAddr, DefaultRedisAddr)
	v.SetDefault(KeyRedisHash, DefaultRedisHash)
	v.SetDefault(KeyDefaultSection, DefaultSection)
}

// Load reads the configuration from v. Paths are expanded and the result is
// validated.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)

	cfg := &Config{
		Logging: Logging{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
			File:   ExpandPath(v.GetString(KeyLogFile)),
		},
		Preferences: Preferences{
			Backend:    strings.ToLower(v.GetString(KeyPrefsBackend)),
			File:       ExpandPath(v.GetString(KeyPrefsFile)),
			SQLitePath: ExpandPath(v.GetString(KeyPrefsSQLite)),
			Redis: Redis{
				Addr:     v.GetString(KeyRedisAddr),
				Password: v.GetString(KeyRedisPassword),
				DB:       v.GetInt(KeyRedisDB),
				Hash:     v.GetString(KeyRedisHash),
			},
		},
		Section: strings.ToLower(v.GetString(KeyDefaultSection)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the preference backend settings.
func (c *Config) Validate() error {
	p := c.Preferences
	if !slices.Contains(Backends(), p.Backend) {
		return fmt.Errorf("%w: %w: %q", common.ErrInvalidConfig, common.ErrUnknownBackend, p.Backend)
	}

	switch p.Backend {
	case BackendFile:
		if p.File == "" {
			return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyPrefsFile)
		}
	case BackendSQLite:
		if p.SQLitePath == "" {
			return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyPrefsSQLite)
		}
	case BackendRedis:
		if p.Redis.Addr == "" {
			return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyRedisAddr)
		}
		if p.Redis.Hash == "" {
			return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyRedisHash)
		}
	}
	return nil
}
