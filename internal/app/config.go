package app

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"fragma/internal/crypto"
	"fragma/internal/protocol/validate"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home           string // state directory, e.g. $HOME/.fragma
	RelayURL       string // relay base URL, e.g. http://127.0.0.1:8080
	Channel        string // channel name on the relay
	WindowSize     int    // validator search window
	FragmentLength int    // fragment length in bytes
}

// DefaultConfig returns the defaults prior to file and flag overlays.
func DefaultConfig() Config {
	return Config{
		Channel:        "default",
		WindowSize:     validate.DefaultWindowSize,
		FragmentLength: crypto.FragmentSize,
	}
}

// fileConfig maps config.toml keys onto Config fields.
type fileConfig struct {
	Home           string `toml:"home"`
	RelayURL       string `toml:"relay_url"`
	Channel        string `toml:"channel"`
	WindowSize     int    `toml:"window_size"`
	FragmentLength int    `toml:"fragment_length"`
}

// LoadConfig overlays the TOML file at path onto cfg. Only keys present in
// the file override.
func LoadConfig(path string, cfg Config) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("home") {
		cfg.Home = strings.TrimSpace(raw.Home)
	}
	if meta.IsDefined("relay_url") {
		cfg.RelayURL = strings.TrimSpace(raw.RelayURL)
	}
	if meta.IsDefined("channel") {
		cfg.Channel = strings.TrimSpace(raw.Channel)
	}
	if meta.IsDefined("window_size") {
		cfg.WindowSize = raw.WindowSize
	}
	if meta.IsDefined("fragment_length") {
		cfg.FragmentLength = raw.FragmentLength
	}
	return cfg, nil
}
