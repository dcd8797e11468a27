package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hidwire/hidwire/internal/config"
	"github.com/hidwire/hidwire/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("hidwire"),
		kong.Description(Description()),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("HIDWIRE_CONFIG")
}

// configCandidatePaths returns config file candidates grouped by format.
// An explicit user config is sorted into its group by extension; the standard
// candidates are the user config dir and the working directory.
func configCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	if d, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(d, "hidwire"))
	}
	dirs = append(dirs, ".")

	for _, d := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(d, "hidwire.json"))
		yamlPaths = append(yamlPaths, filepath.Join(d, "hidwire.yaml"), filepath.Join(d, "hidwire.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(d, "hidwire.toml"))
	}

	switch strings.ToLower(filepath.Ext(userCfg)) {
	case ".yaml", ".yml":
		yamlPaths = append(yamlPaths, userCfg)
	case ".toml":
		tomlPaths = append(tomlPaths, userCfg)
	case "":
	default:
		jsonPaths = append(jsonPaths, userCfg)
	}
	return jsonPaths, yamlPaths, tomlPaths
}
