package prefs

import "github.com/stretchr/testify/mock"

// MockSink implements a test-friendly Sink
type MockSink struct {
	mock.Mock
}

// SetBoolean mocks the SetBoolean method
func (m *MockSink) SetBoolean(name string, value bool) error {
	args := m.Called(name, value)
	return args.Error(0)
}

// SetInteger mocks the SetInteger method
func (m *MockSink) SetInteger(name string, value int64) error {
	args := m.Called(name, value)
	return args.Error(0)
}

// SetColor mocks the SetColor method
func (m *MockSink) SetColor(name string, c Color) error {
	args := m.Called(name, c)
	return args.Error(0)
}
