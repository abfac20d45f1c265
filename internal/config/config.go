package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Company identity printed on every document
	Company CompanyConfig `yaml:"company"`

	// PDF output settings
	Output OutputConfig `yaml:"output"`
}

type CompanyConfig struct {
	Name    string `yaml:"name"`    // Trade name shown in the document header
	Owner   string `yaml:"owner"`   // Legal person behind the agency
	Siren   string `yaml:"siren"`   // French company registration number
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Tagline string `yaml:"tagline"` // Footer line under the thank-you note
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`       // Directory for generated PDFs
	LogoPath string `yaml:"logo_path"` // Path to the logo image (JPEG or PNG)
}

// DefaultConfigPath returns ~/.config/docgen/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "docgen", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "docgen", "config.yaml")
}

// DefaultConfig returns the agency defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Company: CompanyConfig{
			Name:    "AZOTH AGENCE",
			Owner:   "FERRAGU ELIAS-MILAN",
			Siren:   "928520014",
			Email:   "azothflux@gmail.com",
			Phone:   "+33605191745",
			Tagline: "L'alchimie digitale au service de votre croissance",
		},
		Output: OutputConfig{
			Dir:      filepath.Join(homeDir, ".config", "docgen", "documents"),
			LogoPath: filepath.Join(homeDir, ".config", "docgen", "logo.jpeg"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the PDF output directory
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(c.Output.Dir, 0755)
}
