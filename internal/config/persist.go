package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDirName  = "maka"
	configFileName = "config.json"
)

func DefaultConfig() Config {
	return Config{
		Path:       ".",
		ShowHidden: false,
		MaxDepth:   0,
		MaxEntries: 0,
		Workers:    0,
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func LoadConfig() (Config, error) {
	config := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return config, err
	}
	return mergeConfig(config, stored), nil
}

func SaveConfig(config Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.Path != nil {
		merged.Path = *stored.Path
	}
	if stored.ShowHidden != nil {
		merged.ShowHidden = *stored.ShowHidden
	}
	if stored.MaxDepth != nil {
		merged.MaxDepth = *stored.MaxDepth
	}
	if stored.MaxEntries != nil {
		merged.MaxEntries = *stored.MaxEntries
	}
	if stored.Workers != nil {
		merged.Workers = *stored.Workers
	}
	if stored.Exclusions != nil {
		merged.Exclusions = stored.Exclusions
	}
	return merged
}
