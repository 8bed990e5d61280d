// Package config defines the top-level CLI grammar.
package config

import (
	"github.com/gopad/gopad/internal/cmd"
)

// LogConfig holds the logging flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"GOPAD_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"GOPAD_LOG_FILE"`
	RawFile string `help:"Write raw device reports (hex) to this file" env:"GOPAD_LOG_RAW_FILE"`
}

// CLI is the root command grammar parsed by kong.
type CLI struct {
	Config string    `help:"Path to a configuration file (json, yaml or toml)" env:"GOPAD_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Monitor cmd.Monitor       `cmd:"" help:"Poll connected gamepads and print their events"`
	Devices cmd.Devices       `cmd:"" help:"List gamepad slots and their current state"`
	Conf    cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}
