package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DefaultSessionSecret signs session cookies when session.secret is unset.
const DefaultSessionSecret = "dev-secret"

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Session struct {
	Store      string
	CookieName string
	Secret     string
	Issuer     string
	TTL        time.Duration
	Secure     bool
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type RateLimit struct {
	RPS   float64
	Burst int
}

type Log struct {
	Level  string
	Format string
}

type Seed struct {
	Username string
	Password string
}

type Config struct {
	Server    Server
	DB        DB
	Session   Session
	Redis     Redis
	RateLimit RateLimit
	Log       Log
	Seed      Seed
}

// Load reads the YAML file at path. An empty path uses defaults and environment only.
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	return fromViper(v), nil
}

// Watch loads the config and calls onChange with the re-read config every time the file changes.
func Watch(path string, onChange func(*Config)) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.OnConfigChange(func(fsnotify.Event) { onChange(fromViper(v)) })
		v.WatchConfig()
	}
	return fromViper(v), nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RECIPEVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5555)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "recipes.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "recipe_vault")
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.issuer", "recipe-vault")
	v.SetDefault("session.ttl_min", 24*60)
	v.SetDefault("session.secure", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ratelimit.rps", 5)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("seed.username", "")
	v.SetDefault("seed.password", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Session: Session{
			Store:      strings.ToLower(v.GetString("session.store")),
			CookieName: v.GetString("session.cookie_name"),
			Secret:     v.GetString("session.secret"),
			Issuer:     v.GetString("session.issuer"),
			TTL:        time.Duration(v.GetInt("session.ttl_min")) * time.Minute,
			Secure:     v.GetBool("session.secure"),
		},
		Redis:     Redis{Addr: v.GetString("redis.addr"), Password: v.GetString("redis.password"), DB: v.GetInt("redis.db")},
		RateLimit: RateLimit{RPS: v.GetFloat64("ratelimit.rps"), Burst: v.GetInt("ratelimit.burst")},
		Log:       Log{Level: v.GetString("log.level"), Format: v.GetString("log.format")},
		Seed:      Seed{Username: v.GetString("seed.username"), Password: v.GetString("seed.password")},
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = DefaultSessionSecret
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
	return cfg
}
