package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for aircon-core.
//
// All ECHONET Lite protocol addresses and ports are compile-time
// constants in the echonet package and deliberately not configurable.
// Configuration covers only operational concerns: logging, optional
// timeouts, and the optional MQTT / InfluxDB / history integrations.
//
// The configuration file is optional. When it is absent every integration
// stays disabled and the controller behaves as a bare command sender.
type Config struct {
	Discovery DiscoveryConfig `yaml:"discovery"`
	Sensor    SensorConfig    `yaml:"sensor"`
	Logging   LoggingConfig   `yaml:"logging"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	InfluxDB  InfluxDBConfig  `yaml:"influxdb"`
	History   HistoryConfig   `yaml:"history"`
}

// DiscoveryConfig bounds the multicast discovery wait.
type DiscoveryConfig struct {
	// Timeout is the maximum wait for a discovery response, in seconds.
	// Zero preserves the protocol's default behaviour: block until a
	// device answers.
	Timeout int `yaml:"timeout"`
}

// SensorConfig controls the HTTP sensor query.
type SensorConfig struct {
	// Timeout is the HTTP client timeout in seconds. Zero means no
	// timeout.
	Timeout int `yaml:"timeout"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// MQTTConfig contains the optional MQTT bus integration settings.
// When enabled, sensor readings and issued commands are published to the
// home-automation bus.
type MQTTConfig struct {
	Enabled bool             `yaml:"enabled"`
	Broker  MQTTBrokerConfig `yaml:"broker"`
	Auth    MQTTAuthConfig   `yaml:"auth"`
	QoS     int              `yaml:"qos"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// InfluxDBConfig contains the optional telemetry settings. When enabled,
// numeric sensor readings are written as points on every info query.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// HistoryConfig contains the optional local sensor history settings.
type HistoryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// Load reads configuration from the given YAML file.
//
// A missing file is not an error: defaults apply and all integrations
// stay disabled. Environment variables override file values afterwards
// (AIRCON_LOG_LEVEL, AIRCON_MQTT_HOST, AIRCON_MQTT_USERNAME,
// AIRCON_MQTT_PASSWORD, AIRCON_INFLUXDB_TOKEN, AIRCON_HISTORY_PATH).
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If the file exists but cannot be read or parsed, or
//     validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Optional file; run on defaults.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults: plain controller
// behaviour, everything optional switched off.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "aircon-core",
			},
			QoS: 1,
		},
		InfluxDB: InfluxDBConfig{
			BatchSize:     20,
			FlushInterval: 5,
		},
		History: HistoryConfig{
			Path:        "./data/aircon.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
	}
}

// applyEnvOverrides applies environment variable overrides.
// Variables follow the pattern AIRCON_SECTION_KEY.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AIRCON_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("AIRCON_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("AIRCON_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("AIRCON_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}
	if v := os.Getenv("AIRCON_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
	if v := os.Getenv("AIRCON_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Discovery.Timeout < 0 {
		errs = append(errs, "discovery.timeout must not be negative")
	}
	if c.Sensor.Timeout < 0 {
		errs = append(errs, "sensor.timeout must not be negative")
	}

	if c.MQTT.Enabled {
		if c.MQTT.Broker.Host == "" {
			errs = append(errs, "mqtt.broker.host is required when mqtt is enabled")
		}
		if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
			errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
		}
		if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
			errs = append(errs, "mqtt.qos must be 0, 1, or 2")
		}
	}

	if c.InfluxDB.Enabled {
		if c.InfluxDB.URL == "" {
			errs = append(errs, "influxdb.url is required when influxdb is enabled")
		}
		if c.InfluxDB.Org == "" || c.InfluxDB.Bucket == "" {
			errs = append(errs, "influxdb.org and influxdb.bucket are required when influxdb is enabled")
		}
	}

	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, "history.path is required when history is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// DiscoveryTimeout returns the discovery wait bound as a Duration.
// Zero means unbounded.
func (c *Config) DiscoveryTimeout() time.Duration {
	return time.Duration(c.Discovery.Timeout) * time.Second
}

// SensorTimeout returns the HTTP sensor query timeout as a Duration.
// Zero means unbounded.
func (c *Config) SensorTimeout() time.Duration {
	return time.Duration(c.Sensor.Timeout) * time.Second
}
