// Package config resolves zetta's configuration: the global configuration
// directory, the optional config.yaml inside it, and the environment overrides
// that select the note box and the editor.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the zetta configuration directory.
//
// Resolution:
//   - $ZETTA_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/zetta if set (respects XDG on any platform)
//   - %AppData%/zetta on Windows
//   - ~/.config/zetta on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zetta")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "zetta")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "zetta")
}

// FilePath returns the location of config.yaml, or "" when no config
// directory can be determined.
func FilePath() string {
	return inDir("config.yaml")
}

// EnvFilePath returns the location of the global env file.
func EnvFilePath() string {
	return inDir("env")
}

// TemplatesDir returns the directory holding user note templates.
func TemplatesDir() string {
	return inDir("templates")
}

func inDir(name string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
