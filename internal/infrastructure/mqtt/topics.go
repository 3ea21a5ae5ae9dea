package mqtt

import "fmt"

// Topic prefixes for the aircon-core topic hierarchy.
//
// All topics use the flat scheme: aircon/{category}/{host}. The host is
// the device's IP address as returned by discovery.
const (
	// TopicPrefix is the base for all aircon-core topics.
	TopicPrefix = "aircon"

	// TopicPrefixSystem is the base for process-level topics.
	TopicPrefixSystem = "aircon/system"
)

// Topics provides builders for aircon-core MQTT topics.
// Using these helpers keeps topic naming consistent across the codebase.
type Topics struct{}

// State returns the topic for sensor reading snapshots from a device.
//
// Example: aircon/state/192.168.1.50
func (Topics) State(host string) string {
	return fmt.Sprintf("%s/state/%s", TopicPrefix, host)
}

// Command returns the topic for commands issued to a device.
//
// Example: aircon/command/192.168.1.50
func (Topics) Command(host string) string {
	return fmt.Sprintf("%s/command/%s", TopicPrefix, host)
}

// Discovery returns the topic for device discovery announcements.
//
// Example: aircon/discovery
func (Topics) Discovery() string {
	return fmt.Sprintf("%s/discovery", TopicPrefix)
}

// SystemStatus returns the process status topic (also the LWT topic).
//
// Example: aircon/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}
