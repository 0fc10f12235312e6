package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory. Existing
// files are left untouched.
func Initialize(dir string, logger *log.Logger) error {
	return InitializeFs(afero.NewOsFs(), dir, logger)
}

// InitializeFs writes the default configuration onto the given filesystem.
func InitializeFs(fs afero.Fs, dir string, logger *log.Logger) error {
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return err
	}
	if exists {
		logger.Printf("%s already exists, skipping", configPath)
		return nil
	}

	if err := afero.WriteFile(fs, configPath, defaultConfigData, 0600); err != nil {
		return fmt.Errorf("couldn't write %s: %v", configPath, err)
	}

	logger.Printf("wrote %s", configPath)
	return nil
}
