// Package actuator defines the capability interface the engine drives.
//
// The engine consumes this interface; concrete motor, light, buzzer and
// sensor drivers live outside this module and are assumed correct. A mock
// implementation backed by testify is provided for tests.
package actuator

import "time"

// Speed range accepted by the drive motors. Negative values reverse the
// wheel.
const (
	MinSpeed = -100
	MaxSpeed = 100
)

// Direction of a timed motion.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
	DirLeft
	DirRight
)

// String returns string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Actuator is the capability set of the physical platform.
//
// All calls except MoveTimed and PlayTone are expected to return promptly.
// MoveTimed is documented as blocking for the commanded duration; the
// platform enforces the stop. PlayTone starts the tone and returns; the tone
// ends on its own after the given duration.
//
// The Actuator is a single exclusively-owned resource. Callers must not issue
// concurrent motion calls; the engine serializes access.
type Actuator interface {
	// SetMotors sets the left and right wheel speeds, each in
	// [MinSpeed, MaxSpeed]. The motors keep running until changed or
	// stopped.
	SetMotors(left, right int)

	// Stop halts both motors. A failure is reported but the platform state
	// is undefined; callers treat stop as fail-soft.
	Stop() error

	// TurnLeft and TurnRight perform an instantaneous pivot.
	TurnLeft()
	TurnRight()

	// MoveTimed drives in the given direction at the given speed and
	// blocks until the platform-enforced duration has elapsed.
	MoveTimed(dir Direction, speed int, d time.Duration)

	// SetLightColor sets the RGB headlights to the given 0xRRGGBB color.
	SetLightColor(rgb uint32)

	// PlayTone starts a buzzer tone at the given frequency for the given
	// duration and returns without waiting for it to finish.
	PlayTone(freqHz int, d time.Duration)

	// ReadDistanceCm samples the ultrasonic distance sensor.
	ReadDistanceCm() uint

	// ReadLineSensors samples the line tracking sensors as a bitmask:
	// bit 0 = right sensor active, bit 1 = left sensor active.
	ReadLineSensors() uint8
}
