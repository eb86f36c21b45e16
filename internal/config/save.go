package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrExists is returned by Save when the target exists and overwrite is off.
var ErrExists = errors.New("config file already exists")

// Save writes c to path as JSON or YAML, chosen by extension, creating parent
// directories. An existing file is only replaced when overwrite is set.
func Save(c *Config, path string, overwrite bool) error {
	expanded, err := expandTilde(path)
	if err != nil {
		return err
	}
	var data []byte
	switch {
	case isJSONFile(expanded):
		data, err = json.MarshalIndent(c, "", "  ")
	case isYAMLFile(expanded):
		data, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("%w: %s (write .json, .yaml or .yml)", ErrUnknownFormat, expanded)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", expanded, err)
	}

	if !overwrite {
		if _, err := os.Stat(expanded); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, expanded)
		}
	}

	logrus.Debug("Saving nav config to: ", expanded)
	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return err
	}
	return os.WriteFile(expanded, data, 0o600)
}
