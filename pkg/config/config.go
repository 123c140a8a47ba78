package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the optional overrides read from the config file. Empty
// fields mean "use the built-in default".
type Config struct {
	// KernelPackage is the package installed into environments missing
	// kernel support. Defaults to ipykernel.
	KernelPackage string `yaml:"kernel_package,omitempty"`

	// Prefix marks the kernel directories this tool owns. Defaults to AUTO_.
	Prefix string `yaml:"prefix,omitempty"`

	// Shell interprets commands and install scripts. Defaults to /bin/sh.
	Shell string `yaml:"shell,omitempty"`

	// EnvRoot overrides the conda environments directory.
	EnvRoot string `yaml:"env_root,omitempty"`

	// KernelRoot overrides the Jupyter kernels directory.
	KernelRoot string `yaml:"kernel_root,omitempty"`
}

// Load reads the config file at path. A missing file is not an error and
// yields the zero Config.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads the config from the standard location.
func LoadDefault() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Validate rejects values that would escape the kernel root or break the
// descriptor sweep.
func (c Config) Validate() error {
	if strings.ContainsAny(c.Prefix, "/\\") || strings.Contains(c.Prefix, "..") {
		return fmt.Errorf("prefix must not contain path separators")
	}
	if c.Shell != "" && !filepath.IsAbs(c.Shell) {
		return fmt.Errorf("shell must be an absolute path")
	}
	if c.EnvRoot != "" && !filepath.IsAbs(c.EnvRoot) {
		return fmt.Errorf("env_root must be an absolute path")
	}
	if c.KernelRoot != "" && !filepath.IsAbs(c.KernelRoot) {
		return fmt.Errorf("kernel_root must be an absolute path")
	}
	return nil
}
