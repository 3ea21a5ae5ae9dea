// Package influxdb writes air-conditioner telemetry to InfluxDB.
//
// When enabled in config.yaml, every numeric sensor reading fetched by
// the info command is written as a point in the aircon_readings
// measurement, tagged with the device host and the reading key. Writes
// are batched and asynchronous; failures surface through an error
// callback and never fail the command that produced the readings.
package influxdb
