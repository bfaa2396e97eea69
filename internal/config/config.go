package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Client ClientConfig `yaml:"client"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release, test
}

// StoreConfig locates the flat-file JSON document.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// ClientConfig configures the store layer. The two base URLs exist because
// the auth and task stores historically targeted a raw JSON-document server
// while the project stores used the application API; both are explicit and
// injectable here instead of hardcoded per call site.
type ClientConfig struct {
	APIBaseURL     string `yaml:"api_base_url"`
	DataBaseURL    string `yaml:"data_base_url"`
	ProbeTimeoutMS int    `yaml:"probe_timeout_ms"`
	SessionFile    string `yaml:"session_file"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

var GlobalConfig *Config

// Load reads the config file (default config.yaml), after loading a local
// .env if present, then applies environment overrides. A missing config
// file yields the defaults.
func Load(configPath string) (*Config, error) {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		cfg = &fileCfg
	}

	cfg.overrideFromEnv()
	cfg.applyDefaults()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "3001",
			Mode: "debug",
		},
		Store: StoreConfig{
			Path: "db.json",
		},
		Client: ClientConfig{
			APIBaseURL:     "http://localhost:3001/api",
			DataBaseURL:    "http://localhost:3001/data",
			ProbeTimeoutMS: 2000,
			SessionFile:    ".projectpulse-session.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Server.Mode == "" {
		c.Server.Mode = def.Server.Mode
	}
	if c.Store.Path == "" {
		c.Store.Path = def.Store.Path
	}
	if c.Client.APIBaseURL == "" {
		c.Client.APIBaseURL = def.Client.APIBaseURL
	}
	if c.Client.DataBaseURL == "" {
		c.Client.DataBaseURL = def.Client.DataBaseURL
	}
	if c.Client.ProbeTimeoutMS <= 0 {
		c.Client.ProbeTimeoutMS = def.Client.ProbeTimeoutMS
	}
	if c.Client.SessionFile == "" {
		c.Client.SessionFile = def.Client.SessionFile
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if path := os.Getenv("STORE_PATH"); path != "" {
		c.Store.Path = path
	}
	if url := os.Getenv("API_BASE_URL"); url != "" {
		c.Client.APIBaseURL = url
	}
	if url := os.Getenv("DATA_BASE_URL"); url != "" {
		c.Client.DataBaseURL = url
	}
	if ms := os.Getenv("PROBE_TIMEOUT_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			c.Client.ProbeTimeoutMS = v
		}
	}
	if path := os.Getenv("SESSION_FILE"); path != "" {
		c.Client.SessionFile = path
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}
