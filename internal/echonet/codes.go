package echonet

// Service is an ECHONET Lite service code (ESV). It identifies the
// operation requested by a frame.
type Service byte

// Service codes used by this controller. The set is closed; ECHONET Lite
// defines more, but basic property GET/SET is all this system needs.
const (
	// ServiceSetI is property write without response (SetI).
	ServiceSetI Service = 0x60

	// ServiceSetC is property write with response required (SetC).
	// Defined for completeness; this controller never awaits responses.
	ServiceSetC Service = 0x61

	// ServiceGet is property read (Get).
	ServiceGet Service = 0x62

	// ServiceInfReq requests a property notification (INF_REQ).
	ServiceInfReq Service = 0x63

	// ServiceSetGet is combined write/read (SetGet).
	ServiceSetGet Service = 0x6E
)

// String returns the conventional ECHONET Lite name of the service code.
func (s Service) String() string {
	switch s {
	case ServiceSetI:
		return "SetI"
	case ServiceSetC:
		return "SetC"
	case ServiceGet:
		return "Get"
	case ServiceInfReq:
		return "INF_REQ"
	case ServiceSetGet:
		return "SetGet"
	}
	return "Unknown"
}

// Property is an ECHONET Lite property code (EPC). It addresses a single
// device attribute within the destination object.
type Property byte

// Home air conditioner properties used by this controller.
const (
	// PropertyStatus is the operational on/off status (EPC 0x80).
	PropertyStatus Property = 0x80

	// PropertyMode is the operating mode setting (EPC 0xB0).
	PropertyMode Property = 0xB0

	// PropertyTemperature is the target temperature setting in whole
	// degrees Celsius (EPC 0xB3).
	PropertyTemperature Property = 0xB3
)

// String returns the property name.
func (p Property) String() string {
	switch p {
	case PropertyStatus:
		return "Status"
	case PropertyMode:
		return "Mode"
	case PropertyTemperature:
		return "Temperature"
	}
	return "Unknown"
}

// Operational status values for PropertyStatus.
const (
	// StatusOn turns the unit on (EDT 0x30).
	StatusOn byte = 0x30

	// StatusOff turns the unit off (EDT 0x31).
	StatusOff byte = 0x31
)

// Mode is an operating mode value for PropertyMode (EDT byte).
type Mode byte

// Operating modes defined by the home air conditioner class.
const (
	ModeOther            Mode = 0x40
	ModeAutomatic        Mode = 0x41
	ModeCooling          Mode = 0x42
	ModeHeating          Mode = 0x43
	ModeDehumidification Mode = 0x44
	ModeAirCirculator    Mode = 0x45
)

// String returns a lower-case mode name suitable for logs and MQTT payloads.
func (m Mode) String() string {
	switch m {
	case ModeOther:
		return "other"
	case ModeAutomatic:
		return "automatic"
	case ModeCooling:
		return "cooling"
	case ModeHeating:
		return "heating"
	case ModeDehumidification:
		return "dehumidification"
	case ModeAirCirculator:
		return "air_circulator"
	}
	return "unknown"
}
