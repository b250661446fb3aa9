package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// Config holds settings shared by every command. Zero values mean "use the
// default".
type Config struct {
	BaseURL   string  `json:"base_url"`
	UserAgent string  `json:"user_agent"`
	Timeout   string  `json:"timeout"`
	LogLevel  string  `json:"log_level"`
	LogFile   string  `json:"log_file"`
	Proxy     string  `json:"proxy"`
	Render    bool    `json:"render"`
	Rate      float64 `json:"rate"`
	Burst     int     `json:"burst"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL:   "https://finviz.com",
		UserAgent: "curl/7.82.0",
		Timeout:   "30s",
		LogLevel:  "warn",
		Burst:     1,
	}
}

// TimeoutDuration parses Timeout.
func (c Config) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// LocalPath returns the override file read alongside name:
// <name>.local.<ext>.
func LocalPath(name string) string {
	prefix, ext := splitExt(filepath.Base(name))
	return filepath.Join(filepath.Dir(name), fmt.Sprintf("%s.local.%s", prefix, ext))
}

// Read loads name and its local override, the override winning key by key,
// and fills what is still unset from Default. Missing files are not an error.
func Read(name string) (Config, error) {
	var out Config

	if err := readInto(name, &out); err != nil {
		return out, err
	}

	// keys present in the override replace the shared ones, false and 0 included
	if err := readInto(LocalPath(name), &out); err != nil {
		return out, err
	}

	if err := mergo.Merge(&out, Default()); err != nil {
		return out, err
	}
	return out, nil
}

func readInto(path string, out *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json5.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
