package aircon

import (
	"context"
	"strconv"

	"github.com/nerrad567/aircon-core/internal/echonet"
)

// Transport is the frame-level interface the session drives.
// Satisfied by *echonet.Transport; mocked in tests.
type Transport interface {
	Discover(ctx context.Context) (string, error)
	SendUnicast(host string, frame echonet.Frame) error
}

// SensorFetcher is the sensor-query interface the session delegates to.
// Satisfied by *SensorClient.
type SensorFetcher interface {
	Fetch(ctx context.Context, host string) (SensorInfo, error)
}

// Setpoint is an optional target temperature in whole degrees Celsius.
//
// The zero value means "no setpoint": the TEMPERATURE property is omitted
// from the frame, encoding the domain rule that automatic and
// dehumidification modes need no explicit target.
type Setpoint struct {
	celsius uint8
	set     bool
}

// Celsius creates a present Setpoint at the given temperature.
func Celsius(degrees uint8) Setpoint {
	return Setpoint{celsius: degrees, set: true}
}

// Present reports whether a target temperature was specified.
func (s Setpoint) Present() bool { return s.set }

// Degrees returns the target temperature. Only meaningful when Present.
func (s Setpoint) Degrees() uint8 { return s.celsius }

// String formats the setpoint for logs.
func (s Setpoint) String() string {
	if !s.set {
		return "none"
	}
	return strconv.Itoa(int(s.celsius)) + "C"
}

// Session combines the frame transport and the sensor client into the
// three operations a caller needs. It holds no device state; every call
// stands alone.
type Session struct {
	transport Transport
	sensors   SensorFetcher
}

// NewSession creates a session over the given transport and sensor client.
func NewSession(transport Transport, sensors SensorFetcher) *Session {
	return &Session{transport: transport, sensors: sensors}
}

// Discover locates the air conditioner and returns its IP address.
// See echonet.Transport.Discover for the blocking contract.
func (s *Session) Discover(ctx context.Context) (string, error) {
	return s.transport.Discover(ctx)
}

// TurnOff sends a SET-immediate frame with STATUS=OFF. Fire-and-forget:
// no response is awaited.
func (s *Session) TurnOff(host string) error {
	frame := echonet.NewFrame(echonet.ServiceSetI,
		echonet.PropertyValue{Code: echonet.PropertyStatus, Data: []byte{echonet.StatusOff}},
	)
	return s.transport.SendUnicast(host, frame)
}

// TurnOn sends a SET-immediate frame with STATUS=ON and the given mode.
// When setpoint is present, a TEMPERATURE property is appended as a
// single unsigned byte. No response is awaited.
//
// Parameters:
//   - host: IP address of the device
//   - mode: Operating mode to select
//   - setpoint: Optional target temperature; the zero value omits it
func (s *Session) TurnOn(host string, mode echonet.Mode, setpoint Setpoint) error {
	properties := []echonet.PropertyValue{
		{Code: echonet.PropertyStatus, Data: []byte{echonet.StatusOn}},
		{Code: echonet.PropertyMode, Data: []byte{byte(mode)}},
	}
	if setpoint.Present() {
		properties = append(properties, echonet.PropertyValue{
			Code: echonet.PropertyTemperature,
			Data: []byte{setpoint.Degrees()},
		})
	}

	return s.transport.SendUnicast(host, echonet.NewFrame(echonet.ServiceSetI, properties...))
}

// GetInfo reads the device's sensor report.
func (s *Session) GetInfo(ctx context.Context, host string) (SensorInfo, error) {
	return s.sensors.Fetch(ctx, host)
}
