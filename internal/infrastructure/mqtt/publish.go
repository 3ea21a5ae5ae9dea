package mqtt

import (
	"encoding/json"
	"fmt"
	"time"
)

// Maximum payload size for MQTT messages. A sensor snapshot is a few
// hundred bytes; anything near this limit indicates a bug.
const maxPayloadSize = 1 << 20 // 1MB

// Publish sends a message to the specified MQTT topic.
//
// Parameters:
//   - topic: The topic to publish to (use the Topics builders)
//   - payload: The message payload (JSON, max 1MB)
//   - qos: Quality of Service level (0, 1, or 2)
//   - retained: Whether the broker should retain the message for new
//     subscribers (use for state topics, not for command events)
//
// Returns:
//   - error: nil on success, or wrapped error describing the failure
func (c *Client) Publish(topic string, payload []byte, qos byte, retained bool) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if len(payload) > maxPayloadSize {
		return fmt.Errorf("%w: payload size %d exceeds maximum %d bytes", ErrPublishFailed, len(payload), maxPayloadSize)
	}

	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}

// PublishState publishes a sensor reading snapshot for a device, retained
// so new subscribers immediately see the last known readings.
//
// Parameters:
//   - host: Device IP address
//   - readings: Snapshot as key → native value (number or string)
//
// Returns:
//   - error: If marshalling or publishing fails
func (c *Client) PublishState(host string, readings map[string]any) error {
	payload, err := json.Marshal(map[string]any{
		"host":      host,
		"readings":  readings,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("%w: marshal state: %w", ErrPublishFailed, err)
	}
	return c.Publish(Topics{}.State(host), payload, byte(c.cfg.QoS), true)
}

// PublishCommand publishes a command event for a device. Not retained:
// commands are events, not state.
//
// Parameters:
//   - host: Device IP address
//   - action: Command name ("off" or "on")
//   - fields: Extra event fields (mode, setpoint); may be nil
//
// Returns:
//   - error: If marshalling or publishing fails
func (c *Client) PublishCommand(host, action string, fields map[string]any) error {
	event := map[string]any{
		"host":      host,
		"action":    action,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range fields {
		event[k] = v
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal command: %w", ErrPublishFailed, err)
	}
	return c.Publish(Topics{}.Command(host), payload, byte(c.cfg.QoS), false)
}
