package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the food image scraper
type Config struct {
	// Collection settings
	Scrape ScrapeConfig `yaml:"scrape" json:"scrape"`

	// Browser session settings
	Browser BrowserConfig `yaml:"browser" json:"browser"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Download settings
	Download DownloadConfig `yaml:"download" json:"download"`

	// Pacing between category navigations
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ScrapeConfig holds collection-specific configuration
type ScrapeConfig struct {
	// ImagesPerCategory is the target count per category
	ImagesPerCategory int `yaml:"images_per_category" json:"images_per_category"`
	// QueryContext is appended to every search query for better results
	QueryContext string `yaml:"query_context" json:"query_context"`
}

// BrowserConfig holds browser session configuration
type BrowserConfig struct {
	Headless      bool          `yaml:"headless" json:"headless"`
	WindowWidth   int           `yaml:"window_width" json:"window_width"`
	WindowHeight  int           `yaml:"window_height" json:"window_height"`
	PageLoadWait  time.Duration `yaml:"page_load_wait" json:"page_load_wait"`
	ScrollPause   time.Duration `yaml:"scroll_pause" json:"scroll_pause"`
	MaxIdlePasses int           `yaml:"max_idle_passes" json:"max_idle_passes"`
}

// OutputConfig holds output directory configuration
type OutputConfig struct {
	BaseDirectory string `yaml:"base_directory" json:"base_directory"`
}

// DownloadConfig holds download-specific configuration
type DownloadConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

// RateLimitConfig holds the politeness delay between categories
type RateLimitConfig struct {
	CategoryDelay time.Duration `yaml:"category_delay" json:"category_delay"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level" json:"level"`
	File       string `yaml:"file" json:"file"`
	MaxSize    int    `yaml:"max_size" json:"max_size"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `yaml:"max_age" json:"max_age"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scrape: ScrapeConfig{
			ImagesPerCategory: 30,
			QueryContext:      "Myanmar food",
		},
		Browser: BrowserConfig{
			Headless:      false,
			WindowWidth:   1920,
			WindowHeight:  1080,
			PageLoadWait:  3 * time.Second,
			ScrollPause:   2 * time.Second,
			MaxIdlePasses: 5,
		},
		Output: OutputConfig{
			BaseDirectory: "Myanmar_Food_Images",
		},
		Download: DownloadConfig{
			Timeout:   10 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		},
		RateLimit: RateLimitConfig{
			CategoryDelay: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   false,
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if count := os.Getenv("FOODSCRAPER_IMAGES_PER_CATEGORY"); count != "" {
		var val int
		fmt.Sscanf(count, "%d", &val)
		if val >= 0 {
			c.Scrape.ImagesPerCategory = val
		}
	}

	if headless := os.Getenv("FOODSCRAPER_HEADLESS"); headless != "" {
		c.Browser.Headless = strings.ToLower(headless) == "true"
	}

	if outputDir := os.Getenv("FOODSCRAPER_OUTPUT_DIR"); outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}

	if userAgent := os.Getenv("FOODSCRAPER_USER_AGENT"); userAgent != "" {
		c.Download.UserAgent = userAgent
	}

	if logLevel := os.Getenv("FOODSCRAPER_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	locations := []string{
		".foodscraper.yaml",
		".foodscraper.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "foodscraper", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "foodscraper", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".foodscraper.yaml"),
		filepath.Join(os.Getenv("HOME"), ".foodscraper.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Scrape.ImagesPerCategory < 0 {
		errs = append(errs, errors.New("images per category cannot be negative"))
	}

	if c.Browser.WindowWidth <= 0 || c.Browser.WindowHeight <= 0 {
		errs = append(errs, errors.New("browser window dimensions must be positive"))
	}
	if c.Browser.ScrollPause <= 0 {
		errs = append(errs, errors.New("scroll pause must be positive"))
	}
	if c.Browser.MaxIdlePasses <= 0 {
		errs = append(errs, errors.New("max idle passes must be positive"))
	}

	if c.Output.BaseDirectory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}

	if c.Download.Timeout <= 0 {
		errs = append(errs, errors.New("download timeout must be positive"))
	}
	if c.Download.UserAgent == "" {
		errs = append(errs, errors.New("user agent is required"))
	}

	if c.RateLimit.CategoryDelay < 0 {
		errs = append(errs, errors.New("category delay cannot be negative"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.BaseDirectory = outputDir
	}
	if count, ok := flags["count"].(int); ok && count >= 0 {
		c.Scrape.ImagesPerCategory = count
	}
	if headless, ok := flags["headless"].(bool); ok {
		c.Browser.Headless = headless
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".foodscraper.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeCommandLineFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
