package echonet

import (
	"fmt"
	"strings"
)

// Fixed frame header fields. These are protocol constants, not runtime
// state; every frame this controller sends carries them verbatim.
var (
	// frameHeader is EHD1+EHD2 (0x1081, ECHONET Lite format 1) followed by
	// the transaction id, which this controller leaves at zero.
	frameHeader = []byte{0x10, 0x81, 0x00, 0x00}

	// seojController is the source object: Controller class, instance 1.
	seojController = []byte{0x05, 0xFF, 0x01}

	// deojAirConditioner is the destination object: Home air conditioner
	// class, instance 1.
	deojAirConditioner = []byte{0x01, 0x30, 0x01}
)

// headerSize is the byte count before the property list: EHD(2) + TID(2) +
// SEOJ(3) + DEOJ(3) + ESV(1) + OPC(1).
const headerSize = 12

// maxFieldValue is the largest value representable in the one-byte OPC and
// PDC fields.
const maxFieldValue = 255

// PropertyValue pairs a property code with its raw value bytes (EDT).
// An empty Data slice is valid and encodes PDC=0, as used by GET requests.
type PropertyValue struct {
	Code Property
	Data []byte
}

// Frame is a single outbound ECHONET Lite message.
//
// Properties are an ordered slice rather than a map: the order of entries
// determines on-wire ordering, and two frames with the same entries in
// different orders encode to different byte sequences.
//
// A Frame is built fresh per operation, encoded once, and discarded; it
// has no persistent identity.
type Frame struct {
	Service    Service
	Properties []PropertyValue
}

// NewFrame creates a frame for the given service and properties.
func NewFrame(service Service, properties ...PropertyValue) Frame {
	return Frame{Service: service, Properties: properties}
}

// Encode serialises the frame to its on-wire byte sequence.
//
// The result is always 12 + 2*len(Properties) + sum of value lengths bytes.
// Encoding is a pure function of the frame; it has no side effects.
//
// Returns:
//   - []byte: The encoded frame
//   - error: ErrTooManyProperties or ErrValueTooLong on a contract
//     violation, nil otherwise
func (f Frame) Encode() ([]byte, error) {
	if len(f.Properties) > maxFieldValue {
		return nil, fmt.Errorf("%w: %d entries", ErrTooManyProperties, len(f.Properties))
	}

	size := headerSize
	for _, p := range f.Properties {
		if len(p.Data) > maxFieldValue {
			return nil, fmt.Errorf("%w: %s has %d bytes", ErrValueTooLong, p.Code, len(p.Data))
		}
		size += 2 + len(p.Data)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, frameHeader...)
	buf = append(buf, seojController...)
	buf = append(buf, deojAirConditioner...)
	buf = append(buf, byte(f.Service))
	buf = append(buf, byte(len(f.Properties)))

	for _, p := range f.Properties {
		buf = append(buf, byte(p.Code), byte(len(p.Data)))
		buf = append(buf, p.Data...)
	}

	return buf, nil
}

// String returns a human-readable representation of the frame for logs.
func (f Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frame{ESV:%s", f.Service)
	for _, p := range f.Properties {
		fmt.Fprintf(&b, " %s:%X", p.Code, p.Data)
	}
	b.WriteString("}")
	return b.String()
}
