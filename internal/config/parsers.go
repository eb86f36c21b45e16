package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	maxConfigSize = 1024 * 1024 // 1MB is far beyond any real nav config
)

// ErrConfigTooLarge is returned when a config file exceeds maxConfigSize.
var ErrConfigTooLarge = errors.New("config file too large")

// readFile reads a file with a size cap.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, info.Size(), maxConfigSize)
	}

	return io.ReadAll(io.LimitReader(f, maxConfigSize))
}

// decode fills c from path using the parser matching its extension.
func decode(path string, c *Config) error {
	switch {
	case isTOMLFile(path):
		// koanf reads the file itself; stat first so the size cap still applies.
		if info, err := os.Stat(path); err != nil {
			return err
		} else if info.Size() > maxConfigSize {
			return fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, info.Size(), maxConfigSize)
		}
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return err
		}
		return k.Unmarshal("", c)
	case isJSONFile(path), isYAMLFile(path):
		data, err := readFile(path)
		if err != nil {
			return err
		}
		return unmarshal(path, data, c)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// unmarshal decodes data using path to choose JSON or YAML.
func unmarshal(path string, data []byte, v any) error {
	if isJSONFile(path) {
		return json.Unmarshal(data, v)
	}
	if isYAMLFile(path) {
		return yaml.Unmarshal(data, v)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

func ext(path string) string { return strings.ToLower(filepath.Ext(path)) }

func isJSONFile(path string) bool { return ext(path) == ".json" }

func isYAMLFile(path string) bool {
	e := ext(path)
	return e == ".yaml" || e == ".yml"
}

func isTOMLFile(path string) bool { return ext(path) == ".toml" }
