package appcfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type NetworkOverride struct {
	RPCURL      string `yaml:"rpc_url"`
	ExplorerURL string `yaml:"explorer_url"`
}

type Config struct {
	Language             string                     `yaml:"language"`  // "en" | "ru"
	LogLevel             string                     `yaml:"log_level"` // "debug"|"info"|"warn"|"error"
	HideSecretsInConsole bool                       `yaml:"hide_secrets_in_console"`
	LogsBase             string                     `yaml:"logs_base"`
	GatewayURL           string                     `yaml:"gateway_url"`
	UploadConcurrency    int                        `yaml:"upload_concurrency"`
	Networks             map[string]NetworkOverride `yaml:"networks"`
}

// Default is used when configs/app.yaml is missing or unreadable.
func Default() *Config {
	c := &Config{HideSecretsInConsole: true}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open app config %q: %w", path, err)
	}
	defer f.Close()

	var c Config
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode app yaml %q: %w", path, err)
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogsBase == "" {
		c.LogsBase = "logs"
	}
	if c.GatewayURL == "" {
		c.GatewayURL = "https://nftstorage.link"
	}
	if c.UploadConcurrency <= 0 {
		c.UploadConcurrency = 1
	}
	if c.Networks == nil {
		c.Networks = map[string]NetworkOverride{}
	}
}

// ApplyEnv overlays DOTNFT_* variables (typically loaded from .env) on top of the file values.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("DOTNFT_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("DOTNFT_LANGUAGE"); ok && v != "" {
		c.Language = v
	}
	if v, ok := lookup("DOTNFT_GATEWAY_URL"); ok && v != "" {
		c.GatewayURL = v
	}
	if v, ok := lookup("DOTNFT_UPLOAD_CONCURRENCY"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			c.UploadConcurrency = n
		}
	}
	for _, id := range []string{"paseo", "westend"} {
		v, ok := lookup("DOTNFT_" + strings.ToUpper(id) + "_RPC")
		if !ok || v == "" {
			continue
		}
		o := c.Networks[id]
		o.RPCURL = v
		c.Networks[id] = o
	}
}
