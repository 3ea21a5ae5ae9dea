// Package policy decides which air-conditioner command to issue from the
// current sensor readings. It is a pure function over a SensorInfo
// snapshot; it performs no I/O and holds no state.
package policy

import (
	"github.com/nerrad567/aircon-core/internal/aircon"
	"github.com/nerrad567/aircon-core/internal/echonet"
)

// Decision thresholds, in degrees Celsius and percent relative humidity.
// htemp is the indoor temperature, otemp the outdoor temperature and
// hhum the indoor humidity as reported by the sensor endpoint.
const (
	// heatBelow: at or below this indoor temperature, heat to heatTarget.
	heatBelow  = 20.0
	heatTarget = 22

	// coolAbove/coolOutdoorAbove: cooling needs both a hot room and a hot
	// day, to coolTarget.
	coolAbove        = 28.0
	coolOutdoorAbove = 25.0
	coolTarget       = 26

	// dehumidifyAbove: on a hot day, high indoor humidity triggers
	// dehumidification. No setpoint; the mode needs no explicit target.
	dehumidifyAbove = 70.0
)

// Action is a turn-on command chosen by the policy.
type Action struct {
	Mode     echonet.Mode
	Setpoint aircon.Setpoint
}

// Decide picks an action for the given readings.
//
// Rules are evaluated in order; the first match wins:
//  1. htemp <= 20            → heating at 22
//  2. htemp >= 28, otemp >= 25 → cooling at 26
//  3. hhum >= 70, otemp >= 25  → dehumidification, no setpoint
//
// A rule whose readings are missing or non-numeric does not match.
//
// Returns:
//   - Action: The chosen command
//   - bool: false when no rule matches and nothing should be sent
func Decide(info aircon.SensorInfo) (Action, bool) {
	htemp, hasHtemp := info.Float("htemp")
	otemp, hasOtemp := info.Float("otemp")
	hhum, hasHhum := info.Float("hhum")

	switch {
	case hasHtemp && htemp <= heatBelow:
		return Action{Mode: echonet.ModeHeating, Setpoint: aircon.Celsius(heatTarget)}, true

	case hasHtemp && hasOtemp && htemp >= coolAbove && otemp >= coolOutdoorAbove:
		return Action{Mode: echonet.ModeCooling, Setpoint: aircon.Celsius(coolTarget)}, true

	case hasHhum && hasOtemp && hhum >= dehumidifyAbove && otemp >= coolOutdoorAbove:
		return Action{Mode: echonet.ModeDehumidification}, true
	}

	return Action{}, false
}
