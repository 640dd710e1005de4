// Package config loads the portfolio configuration from TOML files and
// PORTFOLIO_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "portfolio"

// EnvPrefix is the prefix of environment overrides. PORTFOLIO_SERVER_ADDR
// maps to server.addr.
const EnvPrefix = "PORTFOLIO_"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Store   StoreConfig   `koanf:"store"`
	Client  ClientConfig  `koanf:"client"`
	Player  PlayerConfig  `koanf:"player"`
	UI      UIConfig      `koanf:"ui"`
	Log     LogConfig     `koanf:"log"`
	Profile ProfileConfig `koanf:"profile"`
}

// ServerConfig configures the playlist API server.
type ServerConfig struct {
	Addr           string   `koanf:"addr"`            // listen address (default ":8080")
	DataFile       string   `koanf:"data_file"`       // JSON catalog document
	AssetsDir      string   `koanf:"assets_dir"`      // serves /audio and /png
	AllowedOrigins []string `koanf:"allowed_origins"` // CORS
}

// StoreConfig selects the catalog backend.
type StoreConfig struct {
	Driver     string `koanf:"driver"` // "file" (default) or "sqlite"
	SQLitePath string `koanf:"sqlite_path"`
}

// ClientConfig configures the terminal client.
type ClientConfig struct {
	APIURL string `koanf:"api_url"` // base URL of the playlist API
}

// PlayerConfig configures audio output.
type PlayerConfig struct {
	MediaRoot string `koanf:"media_root"` // local directory that media paths resolve against
	RepeatAll string `koanf:"repeat_all"` // "track" (default) or "playlist"
	Volume    int    `koanf:"volume"`     // initial volume percent (default 100)
}

// UIConfig holds terminal rendering options.
type UIConfig struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"
}

// LogConfig configures the root logger.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name (default "info")
	File  string `koanf:"file"`  // log file used by the terminal client
}

// ProfileConfig holds the owner details shown on the profile page.
type ProfileConfig struct {
	Name         string   `koanf:"name"`
	Title        string   `koanf:"title"`
	School       string   `koanf:"school"`
	Location     string   `koanf:"location"`
	Email        string   `koanf:"email"`
	Bio          string   `koanf:"bio"`
	Languages    []string `koanf:"languages"`
	Technologies []string `koanf:"technologies"`
	GitHub       string   `koanf:"github"`
	LinkedIn     string   `koanf:"linkedin"`
	Resume       string   `koanf:"resume"`
}

// Repeat-all behaviors.
const (
	RepeatTrack    = "track"
	RepeatPlaylist = "playlist"
)

// Store drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// envKey maps PORTFOLIO_SERVER_DATA_FILE to server.data_file: the first
// underscore separates the section.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.DataFile == "" {
		c.Server.DataFile = filepath.Join("data", "playlists.json")
	}
	c.Server.DataFile = expandPath(c.Server.DataFile)
	if c.Server.AssetsDir == "" {
		c.Server.AssetsDir = "public"
	}
	c.Server.AssetsDir = expandPath(c.Server.AssetsDir)
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	if c.Store.Driver == "" {
		c.Store.Driver = DriverFile
	}
	if c.Store.SQLitePath == "" {
		c.Store.SQLitePath = filepath.Join(xdg.DataHome, appName, "catalog.db")
	}
	c.Store.SQLitePath = expandPath(c.Store.SQLitePath)

	if c.Client.APIURL == "" {
		c.Client.APIURL = "http://localhost:8080/api"
	}
	// Normalize API URL (remove trailing slash)
	c.Client.APIURL = strings.TrimSuffix(c.Client.APIURL, "/")

	c.Player.MediaRoot = expandPath(c.Player.MediaRoot)
	if c.Player.RepeatAll != RepeatPlaylist {
		c.Player.RepeatAll = RepeatTrack
	}
	if c.Player.Volume <= 0 || c.Player.Volume > 100 {
		c.Player.Volume = 100
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(xdg.StateHome, appName, "portfolio.log")
	}
	c.Log.File = expandPath(c.Log.File)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/portfolio/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// UseSQLite reports whether the store should be backed by SQLite.
func (c *Config) UseSQLite() bool {
	return c.Store.Driver == DriverSQLite
}

// HasProfile reports whether any profile details were configured.
func (c *Config) HasProfile() bool {
	return c.Profile.Name != "" || c.Profile.Bio != ""
}
