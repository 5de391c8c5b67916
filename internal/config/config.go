package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix       = "FBROWSE"
	DefaultTickRate = 250 * time.Millisecond
	DefaultMaxBytes = int64(1 << 20)
	DefaultStyle    = "monokai"
	DefaultLogLevel = "info"
)

// Config is the resolved runtime configuration.
type Config struct {
	StartDir   string        `mapstructure:"start_dir"`
	ShowHidden bool          `mapstructure:"show_hidden"`
	Ignore     []string      `mapstructure:"ignore"`
	TickRate   time.Duration `mapstructure:"tick_rate"`
	Watch      bool          `mapstructure:"watch"`
	Preview    PreviewConfig `mapstructure:"preview"`
	Log        LogConfig     `mapstructure:"log"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

type PreviewConfig struct {
	MaxBytes  int64  `mapstructure:"max_bytes"`
	Highlight bool   `mapstructure:"highlight"`
	Style     string `mapstructure:"style"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"show-hidden":       "show_hidden",
	"tick":              "tick_rate",
	"watch":             "watch",
	"highlight":         "preview.highlight",
	"style":             "preview.style",
	"max-preview-bytes": "preview.max_bytes",
	"log-file":          "log.file",
	"log-level":         "log.level",
}

// New returns a viper instance with defaults and FBROWSE_ environment
// lookups, e.g. FBROWSE_PREVIEW_MAX_BYTES for preview.max_bytes.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("start_dir", "")
	v.SetDefault("show_hidden", true)
	v.SetDefault("ignore", []string{})
	v.SetDefault("tick_rate", DefaultTickRate)
	v.SetDefault("watch", true)
	v.SetDefault("preview.max_bytes", DefaultMaxBytes)
	v.SetDefault("preview.highlight", true)
	v.SetDefault("preview.style", DefaultStyle)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags lets explicitly set flags override file and environment values.
// Flags missing from the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// DefaultDir is where the config file is looked up when none is given.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fbrowse")
}

// Load reads cfgFile, or config.yaml from DefaultDir when cfgFile is empty.
// A missing default file is not an error; a missing explicit one is.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir := DefaultDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Preview.MaxBytes <= 0 {
		c.Preview.MaxBytes = DefaultMaxBytes
	}
	if c.Preview.Style == "" {
		c.Preview.Style = DefaultStyle
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.StartDir = expandHome(c.StartDir)
	c.Log.File = expandHome(c.Log.File)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
