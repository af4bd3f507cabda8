// Package config resolves runtime settings from defaults, settings.yaml and HUMANIZER_* env.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"text_humanizer/internal/workspace"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const EnvPrefix = "HUMANIZER"

type Config struct {
	DataDir         string
	ServerAddr      string
	MaxLength       int
	DictionaryPath  string
	PreferencesPath string
	GraphPath       string
	GraphDisabled   bool
	HistoryDriver   string
	HistoryDSN      string
	GeminiAPIKey    string
	GeminiModel     string
	RandomSeed      int64
	LogFile         string
	Debug           bool
}

// SetDefaults registers every key on v. Paths default to locations under dataDir.
func SetDefaults(v *viper.Viper, dataDir string) {
	defaults := workspace.DefaultSettings(dataDir)
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("text.max_length", defaults.Text.MaxLength)
	v.SetDefault("dictionary.path", filepath.Join(workspace.DictionaryDir(dataDir), "dictionary.json"))
	v.SetDefault("preferences.path", "")
	v.SetDefault("graph.path", "")
	v.SetDefault("graph.disabled", false)
	v.SetDefault("history.driver", defaults.History.Driver)
	v.SetDefault("history.dsn", defaults.History.DSN)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", defaults.Gemini.Model)
	v.SetDefault("random.seed", 1)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("debug", false)
}

// BindEnv makes HUMANIZER_SERVER_ADDR and friends override file values. GEMINI_API_KEY is
// honoured as well.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("gemini.api_key", EnvPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY")
}

// ReadFile merges a yaml file into v. A missing file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DataDir:         v.GetString("data_dir"),
		ServerAddr:      v.GetString("server.addr"),
		MaxLength:       v.GetInt("text.max_length"),
		DictionaryPath:  v.GetString("dictionary.path"),
		PreferencesPath: v.GetString("preferences.path"),
		GraphPath:       v.GetString("graph.path"),
		GraphDisabled:   v.GetBool("graph.disabled"),
		HistoryDriver:   v.GetString("history.driver"),
		HistoryDSN:      v.GetString("history.dsn"),
		GeminiAPIKey:    strings.TrimSpace(v.GetString("gemini.api_key")),
		GeminiModel:     v.GetString("gemini.model"),
		RandomSeed:      v.GetInt64("random.seed"),
		LogFile:         v.GetString("log.file"),
		Debug:           v.GetBool("debug"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.MaxLength <= 0 {
		return fmt.Errorf("%w: text.max_length must be positive, got %d", ErrInvalidConfig, c.MaxLength)
	}
	switch c.HistoryDriver {
	case "sqlite", "pgx", "":
	default:
		return fmt.Errorf("%w: history.driver must be sqlite or pgx, got %q", ErrInvalidConfig, c.HistoryDriver)
	}
	if c.HistoryDriver != "" && strings.TrimSpace(c.HistoryDSN) == "" {
		return fmt.Errorf("%w: history.dsn is required for driver %s", ErrInvalidConfig, c.HistoryDriver)
	}
	return nil
}

// Default is the configuration for dataDir with no file and no env applied.
func Default(dataDir string) Config {
	v := viper.New()
	SetDefaults(v, dataDir)
	cfg, _ := Load(v)
	return cfg
}
