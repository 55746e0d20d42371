// Package config loads the taskgraph configuration file.
//
// The file is TOML with one section per concern:
//
//	[layout]
//	node_width = 220
//	x_gap = 100
//
//	[render]
//	formats = ["svg"]
//	interactive = true
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//	database = "promanage"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	key_prefix = "taskgraph:prod:"
//
//	[server]
//	addr = ":8080"
//
// Every field is optional; missing values take the defaults from [Default].
// Command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	taskerrors "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
)

// AppName names the configuration and cache directories.
const AppName = "taskgraph"

// Store backends.
const (
	StoreFile  = "file"
	StoreMongo = "mongo"
)

// Cache backends. These match the names accepted by cache.Open.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Defaults for values outside the layout section.
const (
	DefaultFormat        = "svg"
	DefaultScale         = 2.0
	DefaultStoreDir      = "."
	DefaultMongoURI      = "mongodb://localhost:27017"
	DefaultDatabase      = "promanage"
	DefaultCollection    = "tasks"
	DefaultStoreTimeout  = 10 * time.Second
	DefaultRedisURL      = "redis://localhost:6379/0"
	DefaultAddr          = ":8080"
	DefaultServerTimeout = 30 * time.Second
)

// =============================================================================
// Config
// =============================================================================

// Config is the full configuration file.
type Config struct {
	Layout layout.Config `toml:"layout"`
	Render Render        `toml:"render"`
	Store  Store         `toml:"store"`
	Cache  Cache         `toml:"cache"`
	Server Server        `toml:"server"`
}

// Render holds output defaults.
type Render struct {
	Formats     []string `toml:"formats"`
	Interactive bool     `toml:"interactive"`
	Legend      bool     `toml:"legend"`
	Scale       float64  `toml:"scale"`
}

// Store selects where project tasks are read from.
type Store struct {
	Backend    string        `toml:"backend"`
	// Dir holds <project>.json/.yaml files for the file backend.
	Dir        string        `toml:"dir"`
	MongoURI   string        `toml:"mongo_uri"`
	Database   string        `toml:"database"`
	Collection string        `toml:"collection"`
	Timeout    time.Duration `toml:"timeout"`
}

// Cache selects the result cache.
type Cache struct {
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"`
	RedisURL  string `toml:"redis_url"`
	// KeyPrefix scopes every key, so deployments can share one Redis.
	KeyPrefix string `toml:"key_prefix"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var c Config
	c.SetDefaults()
	return c
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	c.Layout = c.Layout.WithDefaults()

	if len(c.Render.Formats) == 0 {
		c.Render.Formats = []string{DefaultFormat}
	}
	if c.Render.Scale == 0 {
		c.Render.Scale = DefaultScale
	}

	if c.Store.Backend == "" {
		c.Store.Backend = StoreFile
	}
	if c.Store.Dir == "" {
		c.Store.Dir = DefaultStoreDir
	}
	if c.Store.MongoURI == "" {
		c.Store.MongoURI = DefaultMongoURI
	}
	if c.Store.Database == "" {
		c.Store.Database = DefaultDatabase
	}
	if c.Store.Collection == "" {
		c.Store.Collection = DefaultCollection
	}
	if c.Store.Timeout == 0 {
		c.Store.Timeout = DefaultStoreTimeout
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheFile
	}
	if c.Cache.Dir == "" {
		if dir, err := CacheDir(); err == nil {
			c.Cache.Dir = dir
		}
	}
	if c.Cache.RedisURL == "" {
		c.Cache.RedisURL = DefaultRedisURL
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultServerTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultServerTimeout
	}
}

// Validate checks values that defaults cannot repair.
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return taskerrors.Wrap(taskerrors.ErrCodeInvalidConfig, err, "layout")
	}
	if c.Render.Scale < 0 {
		return taskerrors.New(taskerrors.ErrCodeInvalidConfig, "render scale must not be negative, got %g", c.Render.Scale)
	}
	switch c.Store.Backend {
	case StoreFile, StoreMongo:
	default:
		return taskerrors.New(taskerrors.ErrCodeInvalidConfig, "unknown store backend %q (want %s or %s)", c.Store.Backend, StoreFile, StoreMongo)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return taskerrors.New(taskerrors.ErrCodeInvalidConfig, "unknown cache backend %q (want %s, %s or %s)", c.Cache.Backend, CacheNone, CacheFile, CacheRedis)
	}
	if c.Cache.Backend == CacheFile && c.Cache.Dir == "" {
		return taskerrors.New(taskerrors.ErrCodeInvalidConfig, "file cache needs a directory")
	}
	return nil
}

// =============================================================================
// Loading
// =============================================================================

// Load reads the configuration at path and applies defaults.
//
// An empty path means the default location; a missing file there is not an
// error. A missing file at an explicit path is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, taskerrors.Wrap(taskerrors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Config{}, taskerrors.Wrap(taskerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, taskerrors.New(taskerrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}

	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// =============================================================================
// Paths
// =============================================================================

// Path returns the default config file, $XDG_CONFIG_HOME/taskgraph/config.toml
// or ~/.config/taskgraph/config.toml.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the cache directory using XDG standard (~/.cache/taskgraph/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
