package aircon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// sensorInfoPath is the vendor-specific sensor endpoint, served plain
// HTTP on port 80 with no authentication.
const sensorInfoPath = "/aircon/get_sensor_info"

// SensorClient queries the air conditioner's HTTP sensor endpoint.
type SensorClient struct {
	httpClient *http.Client
}

// NewSensorClient creates a sensor client.
//
// A zero timeout leaves the HTTP request unbounded, mirroring the
// blocking behaviour of the UDP discovery receive; pass a positive
// timeout to bound the call.
func NewSensorClient(timeout time.Duration) *SensorClient {
	return &SensorClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch reads the full sensor report from the device.
//
// The response body is comma-separated key=value pairs, for example:
//
//	ret=OK,htemp=20.5,hhum=25,otemp=6,err=0,cmpfreq=0
//
// Each value is coerced with ParseValue. Connection failures and non-2xx
// statuses surface as ErrSensorQueryFailed; there is no retry and no
// partial result.
//
// Parameters:
//   - ctx: Context for cancellation
//   - host: IP address of the device
//
// Returns:
//   - SensorInfo: Parsed readings, one entry per response pair
//   - error: ErrSensorQueryFailed wrapping the underlying cause
func (c *SensorClient) Fetch(ctx context.Context, host string) (SensorInfo, error) {
	url := "http://" + host + sensorInfoPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrSensorQueryFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSensorQueryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrSensorQueryFailed, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrSensorQueryFailed, err)
	}

	return parseSensorBody(string(body)), nil
}

// parseSensorBody splits a comma-separated key=value body into readings.
// Entries without a '=' separator carry no value and are skipped.
func parseSensorBody(body string) SensorInfo {
	info := make(SensorInfo)
	for _, entry := range strings.Split(body, ",") {
		key, raw, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}
		info[key] = ParseValue(raw)
	}
	return info
}
