package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/htmlbuilder/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlbuilder.json"

	// DefaultDocument is the document rendered when none is named.
	DefaultDocument = "page.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultWatchInterval is the default file polling interval.
	DefaultWatchInterval = 300 * time.Millisecond

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "htmlbuilder"

	// DefaultCacheControl is the default Cache-Control for published pages.
	DefaultCacheControl = "no-cache"
)

// Config represents the complete htmlbuilder.json configuration.
type Config struct {
	// Document is the path to the document description, relative to the
	// config file.
	Document string `json:"document,omitempty"`

	// Render contains output formatting configuration.
	Render RenderConfig `json:"render"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains output formatting configuration.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Doctype prefixes output with <!DOCTYPE html>.
	Doctype bool `json:"doctype,omitempty"`
}

// PreviewConfig contains preview server configuration.
type PreviewConfig struct {
	// Host is the server host.
	Host string `json:"host,omitempty"`

	// Port is the server port.
	Port int `json:"port,omitempty"`

	// WatchInterval is how often the document is polled for changes.
	WatchInterval Duration `json:"watchInterval,omitempty"`
}

// PublishConfig contains S3 publishing configuration.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region overrides the region from the AWS environment.
	Region string `json:"region,omitempty"`

	// CacheControl is sent as the object's Cache-Control header.
	CacheControl string `json:"cacheControl,omitempty"`
}

// MetricsConfig contains Prometheus configuration.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// Duration is a time.Duration that encodes as a Go duration string.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts a duration string ("500ms") or a number of
// milliseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads the configuration from htmlbuilder.json in the given directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile loads the configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass the document path explicitly")
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to its original path.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo saves the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path to the configuration file.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the configuration file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Document == "" {
		c.Document = DefaultDocument
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.WatchInterval <= 0 {
		c.Preview.WatchInterval = Duration(DefaultWatchInterval)
	}
	if c.Publish.CacheControl == "" {
		c.Publish.CacheControl = DefaultCacheControl
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New(errors.CodeConfigPort).
			WithDetailf("Port must be between 0 and 65535, got %d", c.Preview.Port)
	}
	return nil
}

// DocumentPath returns the document path resolved against the config
// directory.
func (c *Config) DocumentPath() string {
	if filepath.IsAbs(c.Document) {
		return c.Document
	}
	return filepath.Join(c.Dir(), c.Document)
}

// PreviewAddress returns the preview server listen address.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// PreviewURL returns the full preview server URL.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// Exists checks if htmlbuilder.json exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot searches upward from startDir for htmlbuilder.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir finds and loads the configuration for the current
// directory, falling back to defaults when no project root exists.
func LoadFromWorkingDir() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(cwd)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}
