package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// readingsMeasurement is the measurement name for sensor readings.
const readingsMeasurement = "aircon_readings"

// WriteReading writes a single numeric sensor reading to InfluxDB.
//
// The point is tagged with the device host and the sensor key so that
// readings from multiple units and sensors can be queried independently.
// Writes are non-blocking and batched; failures surface through the
// SetOnError callback.
//
// Parameters:
//   - host: Device IP address the reading came from
//   - key: Sensor key (htemp, otemp, hhum, ...)
//   - value: Numeric reading
func (c *Client) WriteReading(host, key string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		readingsMeasurement,
		map[string]string{
			"host": host,
			"key":  key,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}
