package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configEnv points the CLI at a config file other than ~/.portal/config.yaml.
const configEnv = "PORTAL_CONFIG"

// UserConfig holds the named CLI profiles.
type UserConfig struct {
	CurrentProfile string             `yaml:"current-profile" json:"current_profile"`
	Profiles       map[string]Profile `yaml:"profiles" json:"profiles"`
}

// Profile holds per-profile defaults for the persistent flags.
type Profile struct {
	DataFile string `yaml:"data-file,omitempty" json:"data_file,omitempty"`
	Output   string `yaml:"output,omitempty" json:"output,omitempty"`
}

func (p Profile) validate() error {
	return validateOutputFormat(p.Output)
}

// ActiveProfile returns the override profile, or the current one. Unknown
// names give an empty profile.
func (c *UserConfig) ActiveProfile(override string) Profile {
	name := c.CurrentProfile
	if override != "" {
		name = override
	}
	return c.Profiles[name]
}

// SetProfile stores p under name. The first profile saved becomes current.
func (c *UserConfig) SetProfile(name string, p Profile) error {
	if name == "" {
		return errors.New("profile name is required")
	}
	if err := p.validate(); err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}
	if c.Profiles == nil {
		c.Profiles = map[string]Profile{}
	}
	c.Profiles[name] = p
	if c.CurrentProfile == "" {
		c.CurrentProfile = name
	}
	return nil
}

// ConfigPath returns $PORTAL_CONFIG, or ~/.portal/config.yaml.
func ConfigPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".portal", "config.yaml")
	}
	return filepath.Join(home, ".portal", "config.yaml")
}

// LoadUserConfig reads the config file. A missing file is an empty config.
func LoadUserConfig() (*UserConfig, error) {
	cfg := &UserConfig{Profiles: map[string]Profile{}}
	data, err := os.ReadFile(ConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", ConfigPath(), err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	for name, p := range cfg.Profiles {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("config %s: profile %q: %w", ConfigPath(), name, err)
		}
	}
	return cfg, nil
}

// SaveUserConfig writes the config file through a temp file in the same
// directory, so readers never see a partial file.
func SaveUserConfig(cfg *UserConfig) error {
	path := ConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
