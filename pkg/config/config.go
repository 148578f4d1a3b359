package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/inkwell/config"
	ConfigFileName    = "inkwell.yml"
)

// InkwellConfig holds all Inkwell configuration settings
type InkwellConfig struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// SettleDelayMs is how long a cascade waits, in milliseconds, before
	// reading the folder tree, so an in-flight save of the folder's own
	// ownership can land first. Used when no save barrier is wired up.
	SettleDelayMs int `yaml:"settle_delay_ms" json:"settle_delay_ms"`

	// TokenTTL is the API token lifetime in seconds
	TokenTTL int `yaml:"token_ttl" json:"token_ttl"`

	// APIFolderListLimitMax is the maximum number of results for folder listing requests
	APIFolderListLimitMax int `yaml:"api_folder_list_limit_max" json:"api_folder_list_limit_max"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *InkwellConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *InkwellConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *InkwellConfig {
	return &InkwellConfig{
		TrustedProxies:        []string{},
		SettleDelayMs:         500,
		TokenTTL:              480,
		APIFolderListLimitMax: 1000,
		sources:               make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*InkwellConfig, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("INKWELL_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig InkwellConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "settle_delay_ms", "token_ttl",
		"api_folder_list_limit_max",
	}
}

func (c *InkwellConfig) applyFileConfig(file *InkwellConfig) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.SettleDelayMs != 0 {
		c.SettleDelayMs = file.SettleDelayMs
		c.sources["settle_delay_ms"] = "file"
	}
	if file.TokenTTL != 0 {
		c.TokenTTL = file.TokenTTL
		c.sources["token_ttl"] = "file"
	}
	if file.APIFolderListLimitMax != 0 {
		c.APIFolderListLimitMax = file.APIFolderListLimitMax
		c.sources["api_folder_list_limit_max"] = "file"
	}
}

func (c *InkwellConfig) applyEnvConfig() {
	if val := os.Getenv("INKWELL_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("INKWELL_SETTLE_DELAY_MS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SettleDelayMs = i
			c.sources["settle_delay_ms"] = "environment"
		}
	}
	if val := os.Getenv("INKWELL_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("INKWELL_API_FOLDER_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIFolderListLimitMax = i
			c.sources["api_folder_list_limit_max"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *InkwellConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *InkwellConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// SettleDelay returns the cascade settle delay as a duration
func (c *InkwellConfig) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

// TokenLifetime returns the API token TTL as a duration
func (c *InkwellConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// IsTrustedProxy checks if an IP is from a trusted proxy
func (c *InkwellConfig) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *InkwellConfig) Validate() error {
	// Validate trusted proxies are valid CIDR ranges
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.SettleDelayMs < 0 {
		return fmt.Errorf("settle_delay_ms must not be negative: %d", c.SettleDelayMs)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive: %d", c.TokenTTL)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *InkwellConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "settle_delay_ms", Value: strconv.Itoa(c.SettleDelayMs), Source: c.Source("settle_delay_ms")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTL), Source: c.Source("token_ttl")},
		{Name: "api_folder_list_limit_max", Value: strconv.Itoa(c.APIFolderListLimitMax), Source: c.Source("api_folder_list_limit_max")},
	}
}

// FormatText returns a text representation of the configuration
func (c *InkwellConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *InkwellConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
