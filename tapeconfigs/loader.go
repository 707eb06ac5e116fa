package tapeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tape/cmds"
	"github.com/reusee/tape/configs"
	"github.com/reusee/tape/logs"
	"github.com/reusee/tape/modes"
)

//go:embed schema.cue
var schema string

var configFile = cmds.Var[string]("-config")

var filenames = []string{
	"tape.cue",
	".tape.cue",
}

// ConfigFilePaths lists existing config files, most specific first.
type ConfigFilePaths []string

func (Module) ConfigFilePaths(
	mode modes.Mode,
) (paths ConfigFilePaths) {
	if *configFile != "" {
		paths = append(paths, *configFile)
	}
	if mode == modes.ModeDevelopment {
		return
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	paths ConfigFilePaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file", "paths", []string(paths))
	}
	return configs.NewLoader(paths, schema)
}
