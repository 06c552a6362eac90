package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName is the directory name used below the user config directory.
const AppName = "gdrive-cli"

// Environment variables that override the default locations.
const (
	EnvConfigDir       = "GDRIVE_CONFIG_DIR"
	EnvCredentialsFile = "GDRIVE_CREDENTIALS_FILE"
)

// Config carries the filesystem locations the CLI works with. It is loaded
// once at startup and passed explicitly so nothing reads ambient state later.
type Config struct {
	// Dir is the configuration directory.
	Dir string

	// CredentialsFile is where OAuth credentials are stored.
	CredentialsFile string
}

// Load resolves the configuration from the environment, falling back to
// <user config dir>/gdrive-cli and credentials.json inside it.
func Load() (Config, error) {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, AppName)
	}

	credentials := os.Getenv(EnvCredentialsFile)
	if credentials == "" {
		credentials = filepath.Join(dir, "credentials.json")
	}

	return Config{Dir: dir, CredentialsFile: credentials}, nil
}

// EnsureDir creates the configuration directory if it does not exist.
func (c Config) EnsureDir() error {
	if err := os.MkdirAll(c.Dir, 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}
