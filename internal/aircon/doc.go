// Package aircon provides the device session for a home air conditioner:
// the three user-facing operations (discover + turn off, turn on, read
// sensors) composed from the ECHONET Lite transport and the vendor HTTP
// sensor endpoint.
//
// The session is stateless. Each call is independent, the device's own
// state (on/off, mode) is never tracked locally, and nothing is cached:
// the system is a pure command sender plus a passive sensor reader.
//
// Sensor readings come from the vendor-specific endpoint
// GET http://<host>/aircon/get_sensor_info, a comma-separated key=value
// body with no fixed schema. Values are coerced with a total best-effort
// rule (integer, then float, else text) into the Value tagged union.
package aircon
