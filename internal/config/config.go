package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for collaborator endpoints and timeouts.
const (
	DefaultNTPServer         = "pool.ntp.org"
	DefaultNTPTimeoutSecs    = 5
	DefaultGeocoderBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultGeocoderUserAgent = "chronos-mcp/1.0 (+https://github.com/chronos-mcp/chronos)"
	DefaultGeocodeTimeout    = 5
	DefaultHTTPAddr          = ":8080"
	DefaultMetricsAddr       = ":9090"
)

// Config is the top-level application configuration.
type Config struct {
	// NTPServer is the default NTP pool queried by the time source.
	// Individual get_utc calls may override it per request.
	NTPServer string `yaml:"ntp_server"`

	// NTPTimeoutSeconds bounds a single NTP query. On expiry the time
	// source falls back to the local clock; it never retries.
	NTPTimeoutSeconds int `yaml:"ntp_timeout_seconds"`

	// GeocoderBaseURL is the Nominatim-compatible endpoint used to turn
	// free-text city/country names into coordinates.
	GeocoderBaseURL string `yaml:"geocoder_base_url"`

	// GeocoderUserAgent identifies this server to the geocoding service.
	// Nominatim's usage policy requires a non-default User-Agent.
	GeocoderUserAgent string `yaml:"geocoder_user_agent"`

	// GeocodeTimeoutSeconds bounds a single geocoding request.
	GeocodeTimeoutSeconds int `yaml:"geocode_timeout_seconds"`

	// HTTPAddr is the listen address for the streamable-http transport.
	HTTPAddr string `yaml:"http_addr"`

	// MetricsAddr is the listen address for the Prometheus metrics server.
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		NTPServer:             DefaultNTPServer,
		NTPTimeoutSeconds:     DefaultNTPTimeoutSecs,
		GeocoderBaseURL:       DefaultGeocoderBaseURL,
		GeocoderUserAgent:     DefaultGeocoderUserAgent,
		GeocodeTimeoutSeconds: DefaultGeocodeTimeout,
		HTTPAddr:              DefaultHTTPAddr,
		MetricsAddr:           DefaultMetricsAddr,
	}
}

// Normalize fills in missing/zero values with defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.NTPServer == "" {
		c.NTPServer = DefaultNTPServer
	}
	if c.NTPTimeoutSeconds <= 0 {
		c.NTPTimeoutSeconds = DefaultNTPTimeoutSecs
	}
	if c.GeocoderBaseURL == "" {
		c.GeocoderBaseURL = DefaultGeocoderBaseURL
	}
	if c.GeocoderUserAgent == "" {
		c.GeocoderUserAgent = DefaultGeocoderUserAgent
	}
	if c.GeocodeTimeoutSeconds <= 0 {
		c.GeocodeTimeoutSeconds = DefaultGeocodeTimeout
	}
	if c.HTTPAddr == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = DefaultMetricsAddr
	}
}

// NTPTimeout returns the NTP query timeout as a duration.
func (c *Config) NTPTimeout() time.Duration {
	return time.Duration(c.NTPTimeoutSeconds) * time.Second
}

// GeocodeTimeout returns the geocoding request timeout as a duration.
func (c *Config) GeocodeTimeout() time.Duration {
	return time.Duration(c.GeocodeTimeoutSeconds) * time.Second
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If path is empty: return the default config without touching disk.
//   - If the file does not exist: create parent directory if needed, write
//     a default config with 0600 perms and return it.
//   - If the file exists: read YAML, unmarshal and normalize defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
// The write is atomic (temp file + rename) and the final file is 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".chronos-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
