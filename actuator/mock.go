package actuator

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockActuator is a testify-backed Actuator for tests.
type MockActuator struct {
	mock.Mock
}

var _ Actuator = (*MockActuator)(nil)

func NewMockActuator() *MockActuator {
	return &MockActuator{}
}

func (m *MockActuator) SetMotors(left, right int) {
	m.Called(left, right)
}

func (m *MockActuator) Stop() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockActuator) TurnLeft() {
	m.Called()
}

func (m *MockActuator) TurnRight() {
	m.Called()
}

func (m *MockActuator) MoveTimed(dir Direction, speed int, d time.Duration) {
	m.Called(dir, speed, d)
}

func (m *MockActuator) SetLightColor(rgb uint32) {
	m.Called(rgb)
}

func (m *MockActuator) PlayTone(freqHz int, d time.Duration) {
	m.Called(freqHz, d)
}

func (m *MockActuator) ReadDistanceCm() uint {
	args := m.Called()
	return args.Get(0).(uint)
}

func (m *MockActuator) ReadLineSensors() uint8 {
	args := m.Called()
	return args.Get(0).(uint8)
}
