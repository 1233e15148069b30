// Package config provides the configuration loader for pace.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/pace/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file pace looks for.
const FileName = "pace.yaml"

// Loader implements ports.ConfigLoader using a YAML file discovered by
// walking up from the working directory.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads pace.yaml if one exists above cwd and returns the resolved
// settings. A missing file is not an error: the built-in defaults apply.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return domain.DefaultSettings(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var pacefile Pacefile
	if err := yaml.Unmarshal(data, &pacefile); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	settings := pacefile.toSettings()
	if err := settings.Grades.Validate(); err != nil {
		return domain.Settings{}, zerr.With(err, "config", configPath)
	}
	return settings, nil
}

// findConfiguration walks up from cwd looking for pace.yaml.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}
