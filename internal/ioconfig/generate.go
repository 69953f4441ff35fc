package ioconfig

import (
	"os"
	"path/filepath"

	"github.com/nedrex/nedrexdb/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# NeDRexDB ClinVar ingestion configuration.
# All values can be overridden with NEDREX_* environment variables,
# e.g. NEDREX_DATABASE_HOST or NEDREX_CLINVAR_VARIANT_FILE.

`

// GenerateDefaultConfig writes the built-in defaults as a YAML config file
// to the user config directory and returns the path.
func GenerateDefaultConfig() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "nedrex")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ConfigFileName)

	data, err := yaml.Marshal(config.Defaults())
	if err != nil {
		return "", err
	}

	out := append([]byte(configHeader), data...)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", err
	}
	return path, nil
}
