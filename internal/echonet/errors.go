package echonet

import "errors"

// Domain errors for the echonet package.
var (
	// ErrTooManyProperties is returned when a frame carries more than 255
	// property entries. OPC is a single byte on the wire.
	ErrTooManyProperties = errors.New("echonet: too many properties for one frame")

	// ErrValueTooLong is returned when a property value exceeds 255 bytes.
	// PDC is a single byte on the wire.
	ErrValueTooLong = errors.New("echonet: property value too long")

	// ErrDiscoveryFailed is returned when the multicast discovery exchange
	// fails at the socket level.
	ErrDiscoveryFailed = errors.New("echonet: device discovery failed")

	// ErrSendFailed is returned when a unicast control datagram cannot be
	// sent.
	ErrSendFailed = errors.New("echonet: frame send failed")
)
