package echonet

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

// newLoopbackTransport returns a transport whose discovery "group" is a
// plain loopback listener, so tests exercise the full send/receive
// exchange without multicast routing or the privileged well-known port.
func newLoopbackTransport(t *testing.T) (*Transport, net.PacketConn) {
	t.Helper()

	responder, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen responder: %v", err)
	}
	t.Cleanup(func() { responder.Close() })

	port := responder.LocalAddr().(*net.UDPAddr).Port
	tr := &Transport{
		group:     "127.0.0.1",
		port:      port,
		localAddr: "127.0.0.1:0",
	}
	return tr, responder
}

func TestDiscover(t *testing.T) {
	tr, responder := newLoopbackTransport(t)

	wantFrame, err := NewFrame(ServiceGet, PropertyValue{Code: PropertyStatus}).Encode()
	if err != nil {
		t.Fatalf("encode reference frame: %v", err)
	}

	// Simulated device: answer the first discovery datagram.
	done := make(chan error, 1)
	go func() {
		buf := make([]byte, 64)
		n, addr, err := responder.ReadFrom(buf)
		if err != nil {
			done <- err
			return
		}
		if !bytes.Equal(buf[:n], wantFrame) {
			done <- errors.New("discovery datagram does not match GET/STATUS frame")
			return
		}
		_, err = responder.WriteTo([]byte{0x10, 0x81, 0x00, 0x00}, addr)
		done <- err
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	host, err := tr.Discover(ctx)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if host != "127.0.0.1" {
		t.Errorf("Discover() = %q, want %q", host, "127.0.0.1")
	}
	if err := <-done; err != nil {
		t.Fatalf("responder: %v", err)
	}
}

// TestDiscover_DeadlineBoundsTheWait verifies a context deadline turns the
// otherwise unbounded receive into a bounded one.
func TestDiscover_DeadlineBoundsTheWait(t *testing.T) {
	tr, _ := newLoopbackTransport(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := tr.Discover(ctx)
	if !errors.Is(err, ErrDiscoveryFailed) {
		t.Fatalf("Discover() error = %v, want ErrDiscoveryFailed", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Discover() blocked for %v with a 100ms deadline", elapsed)
	}
}

func TestSendUnicast(t *testing.T) {
	device, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen device: %v", err)
	}
	defer device.Close()

	tr := &Transport{port: device.LocalAddr().(*net.UDPAddr).Port}

	frame := NewFrame(ServiceSetI, PropertyValue{Code: PropertyStatus, Data: []byte{StatusOff}})
	if err := tr.SendUnicast("127.0.0.1", frame); err != nil {
		t.Fatalf("SendUnicast() error = %v", err)
	}

	want, err := frame.Encode()
	if err != nil {
		t.Fatalf("encode reference frame: %v", err)
	}

	device.SetReadDeadline(time.Now().Add(5 * time.Second))
	buf := make([]byte, 64)
	n, _, err := device.ReadFrom(buf)
	if err != nil {
		t.Fatalf("device read: %v", err)
	}
	if !bytes.Equal(buf[:n], want) {
		t.Errorf("received % X, want % X", buf[:n], want)
	}
}

func TestSendUnicast_EncodingErrorSurfaces(t *testing.T) {
	tr := NewTransport()
	frame := NewFrame(ServiceSetI, PropertyValue{Code: PropertyMode, Data: make([]byte, 300)})

	err := tr.SendUnicast("127.0.0.1", frame)
	if !errors.Is(err, ErrSendFailed) {
		t.Errorf("error = %v, want ErrSendFailed", err)
	}
	if !errors.Is(err, ErrValueTooLong) {
		t.Errorf("error = %v, want wrapped ErrValueTooLong", err)
	}
}
