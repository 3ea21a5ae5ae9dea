package aircon

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/nerrad567/aircon-core/internal/echonet"
)

// fakeTransport records sent frames instead of touching the network.
type fakeTransport struct {
	host    string
	frames  []echonet.Frame
	sendErr error
}

func (f *fakeTransport) Discover(_ context.Context) (string, error) {
	return "192.168.1.50", nil
}

func (f *fakeTransport) SendUnicast(host string, frame echonet.Frame) error {
	f.host = host
	f.frames = append(f.frames, frame)
	return f.sendErr
}

type fakeSensors struct {
	info SensorInfo
	err  error
}

func (f *fakeSensors) Fetch(_ context.Context, _ string) (SensorInfo, error) {
	return f.info, f.err
}

func TestSessionDiscover(t *testing.T) {
	session := NewSession(&fakeTransport{}, &fakeSensors{})

	host, err := session.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if host != "192.168.1.50" {
		t.Errorf("Discover() = %q, want 192.168.1.50", host)
	}
}

func TestSessionTurnOff(t *testing.T) {
	transport := &fakeTransport{}
	session := NewSession(transport, &fakeSensors{})

	if err := session.TurnOff("192.168.1.50"); err != nil {
		t.Fatalf("TurnOff() error = %v", err)
	}

	if transport.host != "192.168.1.50" {
		t.Errorf("sent to %q, want 192.168.1.50", transport.host)
	}
	if len(transport.frames) != 1 {
		t.Fatalf("sent %d frames, want 1", len(transport.frames))
	}

	frame := transport.frames[0]
	if frame.Service != echonet.ServiceSetI {
		t.Errorf("service = %v, want SetI", frame.Service)
	}
	if len(frame.Properties) != 1 {
		t.Fatalf("got %d properties, want 1", len(frame.Properties))
	}
	p := frame.Properties[0]
	if p.Code != echonet.PropertyStatus || !bytes.Equal(p.Data, []byte{echonet.StatusOff}) {
		t.Errorf("property = %v:%X, want Status:31", p.Code, p.Data)
	}
}

func TestSessionTurnOn(t *testing.T) {
	tests := []struct {
		name     string
		mode     echonet.Mode
		setpoint Setpoint
		want     []echonet.PropertyValue
	}{
		{
			name:     "heating with setpoint appends temperature entry",
			mode:     echonet.ModeHeating,
			setpoint: Celsius(22),
			want: []echonet.PropertyValue{
				{Code: echonet.PropertyStatus, Data: []byte{echonet.StatusOn}},
				{Code: echonet.PropertyMode, Data: []byte{0x43}},
				{Code: echonet.PropertyTemperature, Data: []byte{0x16}},
			},
		},
		{
			name:     "dehumidification without setpoint omits temperature",
			mode:     echonet.ModeDehumidification,
			setpoint: Setpoint{},
			want: []echonet.PropertyValue{
				{Code: echonet.PropertyStatus, Data: []byte{echonet.StatusOn}},
				{Code: echonet.PropertyMode, Data: []byte{0x44}},
			},
		},
		{
			name:     "cooling at 26",
			mode:     echonet.ModeCooling,
			setpoint: Celsius(26),
			want: []echonet.PropertyValue{
				{Code: echonet.PropertyStatus, Data: []byte{echonet.StatusOn}},
				{Code: echonet.PropertyMode, Data: []byte{0x42}},
				{Code: echonet.PropertyTemperature, Data: []byte{0x1A}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &fakeTransport{}
			session := NewSession(transport, &fakeSensors{})

			if err := session.TurnOn("192.168.1.50", tt.mode, tt.setpoint); err != nil {
				t.Fatalf("TurnOn() error = %v", err)
			}
			if len(transport.frames) != 1 {
				t.Fatalf("sent %d frames, want 1", len(transport.frames))
			}

			frame := transport.frames[0]
			if frame.Service != echonet.ServiceSetI {
				t.Errorf("service = %v, want SetI", frame.Service)
			}
			if len(frame.Properties) != len(tt.want) {
				t.Fatalf("got %d properties, want %d", len(frame.Properties), len(tt.want))
			}
			for i, want := range tt.want {
				got := frame.Properties[i]
				if got.Code != want.Code || !bytes.Equal(got.Data, want.Data) {
					t.Errorf("property[%d] = %v:%X, want %v:%X", i, got.Code, got.Data, want.Code, want.Data)
				}
			}
		})
	}
}

func TestSessionTurnOn_SendErrorPropagates(t *testing.T) {
	sendErr := errors.New("network down")
	session := NewSession(&fakeTransport{sendErr: sendErr}, &fakeSensors{})

	err := session.TurnOn("192.168.1.50", echonet.ModeHeating, Celsius(22))
	if !errors.Is(err, sendErr) {
		t.Errorf("error = %v, want %v", err, sendErr)
	}
}

func TestSessionGetInfo(t *testing.T) {
	info := SensorInfo{"htemp": FloatValue(20.5)}
	session := NewSession(&fakeTransport{}, &fakeSensors{info: info})

	got, err := session.GetInfo(context.Background(), "192.168.1.50")
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}
	if v, ok := got.Float("htemp"); !ok || v != 20.5 {
		t.Errorf(`htemp = (%v, %v), want (20.5, true)`, v, ok)
	}
}

func TestSetpoint(t *testing.T) {
	var none Setpoint
	if none.Present() {
		t.Error("zero Setpoint reports Present")
	}
	if none.String() != "none" {
		t.Errorf("zero Setpoint String() = %q, want none", none.String())
	}

	sp := Celsius(22)
	if !sp.Present() || sp.Degrees() != 22 {
		t.Errorf("Celsius(22) = (%v, %d), want (true, 22)", sp.Present(), sp.Degrees())
	}
	if sp.String() != "22C" {
		t.Errorf("Celsius(22).String() = %q, want 22C", sp.String())
	}
}
