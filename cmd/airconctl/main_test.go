package main

import (
	"os"
	"testing"

	"github.com/nerrad567/aircon-core/internal/aircon"
)

// TestParseArgs_Valid verifies the three recognised commands pass.
func TestParseArgs_Valid(t *testing.T) {
	for _, command := range []string{"off", "on", "info"} {
		got, err := parseArgs([]string{command})
		if err != nil {
			t.Errorf("parseArgs([%q]) error = %v, want nil", command, err)
		}
		if got != command {
			t.Errorf("parseArgs([%q]) = %q, want %q", command, got, command)
		}
	}
}

// TestParseArgs_Invalid verifies usage errors for bad command lines.
func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too many arguments", []string{"off", "on"}},
		{"unknown command", []string{"toggle"}},
		{"wrong case", []string{"OFF"}},
		{"empty command", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(tt.args); err == nil {
				t.Errorf("parseArgs(%v) error = nil, want usage error", tt.args)
			}
		})
	}
}

// TestGetConfigPath_Default verifies default config path.
func TestGetConfigPath_Default(t *testing.T) {
	originalEnv := os.Getenv("AIRCON_CONFIG")
	defer os.Setenv("AIRCON_CONFIG", originalEnv)

	os.Unsetenv("AIRCON_CONFIG")

	path := getConfigPath()
	if path != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", path, defaultConfigPath)
	}
}

// TestGetConfigPath_EnvOverride verifies environment variable override.
func TestGetConfigPath_EnvOverride(t *testing.T) {
	originalEnv := os.Getenv("AIRCON_CONFIG")
	defer os.Setenv("AIRCON_CONFIG", originalEnv)

	expected := "/custom/path/config.yaml"
	os.Setenv("AIRCON_CONFIG", expected)

	path := getConfigPath()
	if path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}

// TestReadingsMap verifies kind-preserving conversion for the MQTT
// state payload.
func TestReadingsMap(t *testing.T) {
	info := aircon.SensorInfo{
		"htemp": aircon.FloatValue(20.5),
		"hhum":  aircon.IntValue(25),
		"ret":   aircon.TextValue("OK"),
	}

	got := readingsMap(info)

	if v, ok := got["htemp"].(float64); !ok || v != 20.5 {
		t.Errorf("readingsMap()[htemp] = %v (%T), want 20.5 (float64)", got["htemp"], got["htemp"])
	}
	if v, ok := got["hhum"].(int64); !ok || v != 25 {
		t.Errorf("readingsMap()[hhum] = %v (%T), want 25 (int64)", got["hhum"], got["hhum"])
	}
	if v, ok := got["ret"].(string); !ok || v != "OK" {
		t.Errorf("readingsMap()[ret] = %v (%T), want OK (string)", got["ret"], got["ret"])
	}
}
