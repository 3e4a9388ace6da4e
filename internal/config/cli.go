// Package config declares the command-line surface of modelgen. Every flag
// can also come from the environment or a configuration file.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/modelgen/internal/cmd"
)

type CLI struct {
	ConfigFile string           `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"MODELGEN_CONFIG"`
	Version    kong.VersionFlag `help:"Print the version and exit"`
	Log        Log              `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" help:"Generate source files from a Core Data model"`
	Watch    cmd.Watch         `cmd:"" help:"Regenerate whenever the model changes"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

type Log struct {
	Level    string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"MODELGEN_LOG_LEVEL"`
	File     string `help:"Log file path (default: console)" type:"path" env:"MODELGEN_LOG_FILE"`
	DumpFile string `help:"Write the full text of every generated file here (trace level dumps to stdout)" type:"path" env:"MODELGEN_LOG_DUMP_FILE"`
}
