// Package mqtt publishes aircon-core activity to the home-automation bus.
//
// The controller is a publisher only: sensor readings go to the state
// topic, issued commands to the command topic, and process liveness to
// the system status topic (with a Last Will for crash detection). Nothing
// is subscribed to; the device is driven by the CLI, not the bus.
//
// The integration is optional and disabled by default. Publish failures
// never fail the device command that triggered them.
package mqtt
