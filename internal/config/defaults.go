package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Toast: ToastConfig{
			DurationMS: 1500,
		},
		Sound: true,
		Theme: ThemeConfig{
			Correct: "2",
			Present: "3",
			Absent:  "240",
			Filled:  "250",
			Empty:   "237",
			Unused:  "245",
			Text:    "15",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			HostKey:            ".ssh/wordle_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}
