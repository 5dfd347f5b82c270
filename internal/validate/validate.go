package validate

import (
	"fmt"

	"github.com/cryptk/omnilogic-local/internal/omnierrors"
)

const (
	// MinTemperatureF and MaxTemperatureF bound every heater/solar
	// heater set-point command.
	MinTemperatureF = 65
	MaxTemperatureF = 104

	// MinSpeedPercent and MaxSpeedPercent bound every pump/filter speed
	// command.
	MinSpeedPercent = 0
	MaxSpeedPercent = 100
)

// Temperature checks that temperature falls within
// [MinTemperatureF, MaxTemperatureF].
func Temperature(temperature int, paramName string) error {
	if temperature < MinTemperatureF || temperature > MaxTemperatureF {
		return omnierrors.NewValidation(fmt.Sprintf(
			"%s must be between %d°F and %d°F, got %d°F",
			paramName, MinTemperatureF, MaxTemperatureF, temperature))
	}
	return nil
}

// Speed checks that speed falls within [MinSpeedPercent, MaxSpeedPercent].
func Speed(speed int, paramName string) error {
	if speed < MinSpeedPercent || speed > MaxSpeedPercent {
		return omnierrors.NewValidation(fmt.Sprintf(
			"%s must be between %d and %d, got %d",
			paramName, MinSpeedPercent, MaxSpeedPercent, speed))
	}
	return nil
}

// ID checks that an id-like value (system id, equipment id, pool id,
// group id) is non-negative.
func ID(idValue int, paramName string) error {
	if idValue < 0 {
		return omnierrors.NewValidation(fmt.Sprintf(
			"%s must be non-negative, got %d", paramName, idValue))
	}
	return nil
}

// Host checks that a controller hostname/IP is non-empty.
func Host(host string) error {
	if host == "" {
		return omnierrors.NewValidation("controller host must not be empty")
	}
	return nil
}

// Port checks that a UDP port falls within the valid 1-65535 range.
func Port(port int) error {
	if port < 1 || port > 65535 {
		return omnierrors.NewValidation(fmt.Sprintf(
			"port must be between 1 and 65535, got %d", port))
	}
	return nil
}

// ResponseTimeoutPositive checks that a timeout in seconds is strictly
// positive.
func ResponseTimeoutPositive(seconds float64) error {
	if seconds <= 0 {
		return omnierrors.NewValidation(fmt.Sprintf(
			"response_timeout must be greater than 0, got %v", seconds))
	}
	return nil
}
