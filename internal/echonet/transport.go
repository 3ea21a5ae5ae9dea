package echonet

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// Well-known ECHONET Lite network constants.
const (
	// MulticastAddress is the ECHONET Lite IPv4 multicast group used for
	// device discovery.
	MulticastAddress = "224.0.23.0"

	// Port is the well-known ECHONET Lite UDP port for both discovery and
	// unicast control.
	Port = 3610

	// readBufferSize is the receive buffer for discovery responses. The
	// payload is discarded, only the sender address matters, but the
	// datagram must still fit.
	readBufferSize = 4096
)

// Logger interface for optional logging.
type Logger interface {
	Debug(msg string, args ...any)
}

// Transport moves encoded frames over UDP.
//
// Every socket is scoped to a single operation and closed before the
// method returns, on success and failure alike. The transport itself
// holds no connection state and is safe for concurrent use.
type Transport struct {
	// group and port default to the well-known ECHONET Lite multicast
	// group and port. Overridden only in tests.
	group     string
	port      int
	localAddr string

	logger Logger
}

// NewTransport creates a transport bound to the well-known ECHONET Lite
// addresses.
func NewTransport() *Transport {
	return &Transport{
		group:     MulticastAddress,
		port:      Port,
		localAddr: "0.0.0.0:" + strconv.Itoa(Port),
	}
}

// SetLogger sets an optional logger for datagram-level debug output.
func (t *Transport) SetLogger(logger Logger) {
	t.logger = logger
}

// Discover locates the air conditioner on the local network.
//
// It multicasts a GET/STATUS frame to the discovery group and performs a
// single blocking receive on the same socket, returning the responder's
// IP address. Exactly one datagram is sent and exactly one is consumed.
//
// By default the receive blocks until a device answers — there is no
// retry and no built-in timeout. A deadline carried on ctx bounds the
// wait; pass context.Background() for the unbounded behaviour.
//
// Parameters:
//   - ctx: Carries an optional deadline for the receive
//
// Returns:
//   - string: IP address of the first responding device
//   - error: ErrDiscoveryFailed wrapping the underlying socket error
func (t *Transport) Discover(ctx context.Context) (string, error) {
	frame := NewFrame(ServiceGet, PropertyValue{Code: PropertyStatus})
	payload, err := frame.Encode()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDiscoveryFailed, err)
	}

	conn, err := net.ListenPacket("udp4", t.localAddr)
	if err != nil {
		return "", fmt.Errorf("%w: bind: %w", ErrDiscoveryFailed, err)
	}
	defer conn.Close()

	group, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(t.group, strconv.Itoa(t.port)))
	if err != nil {
		return "", fmt.Errorf("%w: resolve group: %w", ErrDiscoveryFailed, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return "", fmt.Errorf("%w: set deadline: %w", ErrDiscoveryFailed, err)
		}
	}

	if _, err := conn.WriteTo(payload, group); err != nil {
		return "", fmt.Errorf("%w: send: %w", ErrDiscoveryFailed, err)
	}
	t.logDebug("discovery frame sent", "group", group.String(), "frame", frame.String())

	buf := make([]byte, readBufferSize)
	n, addr, err := conn.ReadFrom(buf)
	if err != nil {
		return "", fmt.Errorf("%w: receive: %w", ErrDiscoveryFailed, err)
	}

	udpAddr, ok := addr.(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("%w: unexpected address type %T", ErrDiscoveryFailed, addr)
	}

	t.logDebug("discovery response received", "from", udpAddr.IP.String(), "bytes", n)
	return udpAddr.IP.String(), nil
}

// SendUnicast encodes a frame and sends it once to the given host on the
// well-known control port. No response is awaited; SET-immediate frames
// are fire-and-forget.
//
// Parameters:
//   - host: IP address of the device, as returned by Discover
//   - frame: Frame to encode and send
//
// Returns:
//   - error: ErrSendFailed wrapping an encoding or socket error
func (t *Transport) SendUnicast(host string, frame Frame) error {
	payload, err := frame.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	conn, err := net.Dial("udp4", net.JoinHostPort(host, strconv.Itoa(t.port)))
	if err != nil {
		return fmt.Errorf("%w: dial %s: %w", ErrSendFailed, host, err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("%w: write: %w", ErrSendFailed, err)
	}

	t.logDebug("control frame sent", "host", host, "frame", frame.String())
	return nil
}

func (t *Transport) logDebug(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Debug(msg, args...)
	}
}
