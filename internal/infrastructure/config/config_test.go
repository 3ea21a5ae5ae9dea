package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want defaults for a missing file", err)
	}

	if cfg.MQTT.Enabled || cfg.InfluxDB.Enabled || cfg.History.Enabled {
		t.Error("integrations enabled by default, want all disabled")
	}
	if cfg.Discovery.Timeout != 0 {
		t.Errorf("discovery.timeout = %d, want 0 (block forever)", cfg.Discovery.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
discovery:
  timeout: 10

sensor:
  timeout: 5

logging:
  level: debug
  format: json
  output: stdout

mqtt:
  enabled: true
  broker:
    host: broker.local
    port: 1883
    client_id: aircon-test
  qos: 1

history:
  enabled: true
  path: /tmp/aircon-test.db
  wal_mode: true
  busy_timeout: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DiscoveryTimeout() != 10*time.Second {
		t.Errorf("DiscoveryTimeout() = %v, want 10s", cfg.DiscoveryTimeout())
	}
	if cfg.SensorTimeout() != 5*time.Second {
		t.Errorf("SensorTimeout() = %v, want 5s", cfg.SensorTimeout())
	}
	if !cfg.MQTT.Enabled || cfg.MQTT.Broker.Host != "broker.local" {
		t.Errorf("mqtt = %+v, want enabled with broker.local", cfg.MQTT)
	}
	if !cfg.History.Enabled || cfg.History.Path != "/tmp/aircon-test.db" {
		t.Errorf("history = %+v, want enabled at /tmp/aircon-test.db", cfg.History)
	}
	// Unspecified sections keep their defaults.
	if cfg.InfluxDB.Enabled {
		t.Error("influxdb enabled without being configured")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging: [not a mapping"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on malformed YAML, want error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AIRCON_LOG_LEVEL", "debug")
	t.Setenv("AIRCON_MQTT_HOST", "env-broker.local")
	t.Setenv("AIRCON_MQTT_PASSWORD", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug from env", cfg.Logging.Level)
	}
	if cfg.MQTT.Broker.Host != "env-broker.local" {
		t.Errorf("mqtt.broker.host = %q, want env-broker.local from env", cfg.MQTT.Broker.Host)
	}
	if cfg.MQTT.Auth.Password != "secret" {
		t.Error("mqtt.auth.password not taken from env")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "negative discovery timeout",
			mutate:  func(c *Config) { c.Discovery.Timeout = -1 },
			wantErr: "discovery.timeout",
		},
		{
			name: "mqtt enabled without host",
			mutate: func(c *Config) {
				c.MQTT.Enabled = true
				c.MQTT.Broker.Host = ""
			},
			wantErr: "mqtt.broker.host",
		},
		{
			name: "mqtt invalid qos",
			mutate: func(c *Config) {
				c.MQTT.Enabled = true
				c.MQTT.QoS = 3
			},
			wantErr: "mqtt.qos",
		},
		{
			name: "influxdb enabled without url",
			mutate: func(c *Config) {
				c.InfluxDB.Enabled = true
				c.InfluxDB.Org = "home"
				c.InfluxDB.Bucket = "aircon"
			},
			wantErr: "influxdb.url",
		},
		{
			name: "history enabled without path",
			mutate: func(c *Config) {
				c.History.Enabled = true
				c.History.Path = ""
			},
			wantErr: "history.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error mentioning %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
