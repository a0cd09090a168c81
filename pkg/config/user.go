package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

type Chain string

const (
	ChainPaseo   Chain = "paseo"
	ChainWestend Chain = "westend"
)

var bucketName = regexp.MustCompile(`^[a-z0-9.-]+$`)

// UserConfig is the first-run setup persisted between invocations.
type UserConfig struct {
	Mnemonic       string `json:"mnemonic"`
	FilebaseKey    string `json:"filebaseKey"`
	FilebaseSecret string `json:"filebaseSecret"`
	FilebaseBucket string `json:"filebaseBucket"`
	Chain          Chain  `json:"chain,omitempty"`
}

// DefaultPath is <tmp>/dot-nft/config.json.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "dot-nft", "config.json")
}

// Load reads the config at path. A missing file is not an error: it returns (nil, nil)
// so the caller can start the first-run setup.
func Load(path string) (*UserConfig, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var c UserConfig
	if err := json.Unmarshal(blob, &c); err != nil {
		return nil, fmt.Errorf("decode config %q: %w", path, err)
	}
	if c.Chain == "" {
		c.Chain = ChainPaseo
	}
	if err := Validate(&c); err != nil {
		return nil, fmt.Errorf("config validation %q: %w", path, err)
	}
	return &c, nil
}

// Save writes the config as indented JSON with mode 0600.
func Save(path string, c *UserConfig) error {
	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir %q: %w", filepath.Dir(path), err)
	}
	blob, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	// WriteFile keeps the mode of an existing file
	return os.Chmod(path, 0o600)
}

func Validate(c *UserConfig) error {
	if c == nil {
		return errors.New("nil config")
	}
	if strings.TrimSpace(c.Mnemonic) == "" {
		return errors.New("mnemonic must not be empty")
	}
	if c.FilebaseKey == "" {
		return errors.New("filebaseKey must not be empty")
	}
	if c.FilebaseSecret == "" {
		return errors.New("filebaseSecret must not be empty")
	}
	if err := ValidateBucket(c.FilebaseBucket); err != nil {
		return fmt.Errorf("filebaseBucket: %w", err)
	}
	switch c.Chain {
	case ChainPaseo, ChainWestend, "":
	default:
		return fmt.Errorf("chain must be one of: %s, %s", ChainPaseo, ChainWestend)
	}
	return nil
}

func ValidateBucket(name string) error {
	if name == "" {
		return errors.New("bucket name is required")
	}
	if !bucketName.MatchString(name) {
		return errors.New("bucket name must contain only lowercase letters, numbers, dots, and hyphens")
	}
	return nil
}
