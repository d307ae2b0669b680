package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration
// including file accessibility. The configPath argument specifies the config
// file location to validate (empty string skips the config file check).
// This calls Validate() first for basic structural validation, then adds I/O
// checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("guide", c.Guide, isFileOrEmpty),
		criterio.Run("assets_dir", c.AssetsDir, isDirectoryOrEmpty),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isFileOrEmpty validates that a path is unset or names a readable file.
func isFileOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

// isDirectoryOrEmpty validates that a path is unset or names a directory.
func isDirectoryOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
