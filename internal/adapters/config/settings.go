package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName  = "config"
	configType  = "toml"
	localeKey   = "locale"
	storageKey  = "storage.path"
	configDir   = ".zclarity"
	configFile  = "config.toml"
	dataDirName = "data"

	DefaultLocale = "th"

	configFileMode = 0o600
	configDirMode  = 0o700
)

// Settings are the user preferences of the CLI, kept in
// ~/.zclarity/config.toml.
type Settings struct {
	Locale      string
	StoragePath string
}

type fileSchema struct {
	Locale  string        `toml:"locale"`
	Storage storageSchema `toml:"storage"`
}

type storageSchema struct {
	Path string `toml:"path"`
}

// Load reads settings through viper, falling back to defaults when the
// config file is absent.
func Load(cfg *viper.Viper) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(localeKey, DefaultLocale)
	cfg.SetDefault(storageKey, filepath.Join(homeDir, configDir, dataDirName))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	settings := Settings{
		Locale:      cfg.GetString(localeKey),
		StoragePath: cfg.GetString(storageKey),
	}
	if settings.Locale == "" {
		settings.Locale = DefaultLocale
	}
	if settings.StoragePath == "" {
		return Settings{}, errors.New("storage path is empty")
	}

	settings.StoragePath, err = filepath.Abs(settings.StoragePath)
	if err != nil {
		return Settings{}, fmt.Errorf("resolve storage path: %w", err)
	}

	return settings, nil
}

// Save writes the settings back as TOML. Unlike session autosave, an
// explicit `config set` reports write failures to the user.
func Save(settings Settings) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	return SaveTo(filepath.Join(homeDir, configDir, configFile), settings)
}

func SaveTo(path string, settings Settings) error {
	data, err := toml.Marshal(fileSchema{
		Locale:  settings.Locale,
		Storage: storageSchema{Path: settings.StoragePath},
	})
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
