// Package echonet implements the ECHONET Lite frame protocol layer for
// aircon-core.
//
// ECHONET Lite is a home-automation application protocol carried over UDP.
// This package covers the subset needed to control a single home air
// conditioner:
//
//   - Binary frame construction (header, service code, property list)
//   - Multicast discovery of the device on the local network
//   - Unicast fire-and-forget control datagrams
//
// # Frame Layout
//
// Every outbound frame uses the fixed layout:
//
//	EHD(2)  0x10 0x81         protocol header
//	TID(2)  0x00 0x00         transaction id (unused)
//	SEOJ(3) 0x05 0xFF 0x01    source object: Controller, instance 1
//	DEOJ(3) 0x01 0x30 0x01    destination: Home air conditioner, instance 1
//	ESV(1)                    service code
//	OPC(1)                    property count
//	then per property: EPC(1) + PDC(1) + EDT(PDC bytes)
//
// OPC and PDC are single bytes, so a frame carries at most 255 properties
// and each value is at most 255 bytes. Exceeding either limit is a caller
// contract violation and fails encoding with ErrTooManyProperties or
// ErrValueTooLong.
//
// # Discovery
//
// Discovery sends a GET/STATUS frame to the well-known multicast group
// 224.0.23.0:3610 and waits for the first answering datagram. Only the
// sender's address is used; the response payload is not decoded.
//
// # References
//
//   - ECHONET Lite specification: https://echonet.jp/spec_g/
package echonet
