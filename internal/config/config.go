// Package config provides YAML-based configuration loading for the game
// and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the top-level configuration.
type Config struct {
	Words WordsConfig `yaml:"words"`
	Toast ToastConfig `yaml:"toast"`
	Sound bool        `yaml:"sound"` // terminal bell on rejected guesses
	Theme ThemeConfig `yaml:"theme"`
	SSH   SSHConfig   `yaml:"ssh"`
}

// WordsConfig points at optional word list files. Empty paths fall back to
// the embedded lists.
type WordsConfig struct {
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
}

// ToastConfig controls transient notices.
type ToastConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns the toast lifetime.
func (t ToastConfig) Duration() time.Duration {
	return time.Duration(t.DurationMS) * time.Millisecond
}

// ThemeConfig holds ANSI color codes ("0"-"255" or "#rrggbb") for tiles and keys.
type ThemeConfig struct {
	Correct string `yaml:"correct"`
	Present string `yaml:"present"`
	Absent  string `yaml:"absent"`
	Filled  string `yaml:"filled"`
	Empty   string `yaml:"empty"`
	Unused  string `yaml:"unused"`
	Text    string `yaml:"text"`
}

// SSHConfig configures the wish server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the SSH idle timeout.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Toast.DurationMS <= 0 {
		return fmt.Errorf("config: toast.duration_ms must be positive, got %d", c.Toast.DurationMS)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes)
	}
	if c.SSH.Address == "" {
		return errors.New("config: ssh.address is empty")
	}
	return nil
}
