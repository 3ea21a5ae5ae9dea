// Package config loads and validates aircon-core configuration.
//
// Configuration comes from three layers, later layers winning:
//
//  1. Built-in defaults (everything optional disabled)
//  2. An optional YAML file
//  3. AIRCON_* environment variables for secrets and overrides
//
// The ECHONET Lite protocol constants (multicast group, port, object
// codes) are intentionally not configurable; they live as compile-time
// constants in the echonet package.
package config
