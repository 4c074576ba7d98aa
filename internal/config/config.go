package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "taskdash.db"

	apiKeyEnv = "TASKDASH_GEMINI_API_KEY"
)

type Keymap struct {
	Quit     string `toml:"quit"`
	Add      string `toml:"add"`
	Calendar string `toml:"calendar"`
	Profile  string `toml:"profile"`
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	Left     string `toml:"left"`
	Right    string `toml:"right"`
	Toggle   string `toml:"toggle"`
	Delete   string `toml:"delete"`
	Edit     string `toml:"edit"`
	Open     string `toml:"open"`
	Back     string `toml:"back"`
	Reset    string `toml:"reset"`
	Help     string `toml:"help"`
}

type Config struct {
	DBPath      string `toml:"db_path"`
	GeminiModel string `toml:"gemini_model"`
	Keys        Keymap `toml:"keys"`
}

// APIKey comes from the environment only; the config file never stores
// credentials.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(apiKeyEnv))
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = Default().GeminiModel
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the built-in configuration, used when no file exists
// and as the fallback for missing fields.
func Default() Config {
	return Config{
		DBPath:      DefaultDBName,
		GeminiModel: "gemini-3-flash-preview",
		Keys: Keymap{
			Quit:     "q",
			Add:      "a",
			Calendar: "c",
			Profile:  "p",
			Up:       "k",
			Down:     "j",
			Left:     "h",
			Right:    "l",
			Toggle:   " ",
			Delete:   "d",
			Edit:     "e",
			Open:     "enter",
			Back:     "esc",
			Reset:    "r",
			Help:     "?",
		},
	}
}
