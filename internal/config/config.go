// Package config defines the CLI structure and configuration for hidwire.
package config

import (
	"github.com/hidwire/hidwire/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"HIDWIRE_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"HIDWIRE_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log    `embed:"" prefix:"log."`
	Config string `help:"Path to a JSON/YAML/TOML config file" env:"HIDWIRE_CONFIG"`

	Decode   cmd.Decode   `cmd:"" help:"Decode a HID report descriptor into its items"`
	Describe cmd.Describe `cmd:"" help:"Parse a 9-byte HID class descriptor"`
	Build    cmd.Build    `cmd:"" help:"Build a report descriptor from a YAML item list"`
}
