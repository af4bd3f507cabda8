// Package workspace lays out the on-disk data directory: settings, dictionaries, logs,
// interaction history and stored uploads.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const BaseDirName = "TextHumanizer"

type Settings struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Text struct {
		MaxLength int `yaml:"max_length"`
	} `yaml:"text"`
	History struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"history"`
	Gemini struct {
		Model string `yaml:"model"`
	} `yaml:"gemini"`
	Log struct {
		File string `yaml:"file"`
	} `yaml:"log"`
}

func DefaultSettings(base string) Settings {
	var s Settings
	s.Server.Addr = "127.0.0.1:8000"
	s.Text.MaxLength = 2048
	s.History.Driver = "sqlite"
	s.History.DSN = HistoryPath(base)
	s.Gemini.Model = "gemini-2.5-flash"
	s.Log.File = filepath.Join(base, "logs", "session.log")
	return s
}

func SettingsPath(base string) string {
	return filepath.Join(base, "configs", "settings.yaml")
}

func HistoryPath(base string) string {
	return filepath.Join(base, "history", "interactions.db")
}

func DictionaryDir(base string) string {
	return filepath.Join(base, "dictionaries")
}

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the directory tree under base and writes default settings when none exist.
// Existing settings are left untouched.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		DictionaryDir(base),
		filepath.Join(base, "logs"),
		filepath.Join(base, "history"),
		filepath.Join(base, "uploads"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := SettingsPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		raw, marshalErr := yaml.Marshal(DefaultSettings(base))
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}
