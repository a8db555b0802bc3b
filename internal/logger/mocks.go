package logger

import "github.com/stretchr/testify/mock"

// MockLogger implements a test-friendly logger
type MockLogger struct {
	mock.Mock
}

var _ Logger = (*MockLogger)(nil)

// Debug mocks the Debug method
func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// Info mocks the Info method
func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// Warn mocks the Warn method
func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// Error mocks the Error method
func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// Fatal mocks the Fatal method
func (m *MockLogger) Fatal(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// Debugf mocks the Debugf method
func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

// Infof mocks the Infof method
func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

// Warnf mocks the Warnf method
func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

// Errorf mocks the Errorf method
func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

// Fatalf mocks the Fatalf method
func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}

// WithField mocks the WithField method
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	args := m.Called(key, value)
	if l, ok := args.Get(0).(Logger); ok {
		return l
	}
	return m
}

// WithFields mocks the WithFields method
func (m *MockLogger) WithFields(fields map[string]interface{}) Logger {
	args := m.Called(fields)
	if l, ok := args.Get(0).(Logger); ok {
		return l
	}
	return m
}

// Sync mocks the Sync method
func (m *MockLogger) Sync() error {
	return m.Called().Error(0)
}
