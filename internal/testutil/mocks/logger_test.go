package mocks_test

import (
	"testing"

	"github.com/douhashi/buildutils/internal/logger"
	"github.com/douhashi/buildutils/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMockLogger_BasicLogging(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(logger.Logger, string)
		method  string
		message string
	}{
		{
			name:    "debug log",
			logFunc: func(l logger.Logger, msg string) { l.Debug(msg, "key", "value") },
			method:  "Debug",
			message: "debug message",
		},
		{
			name:    "info log",
			logFunc: func(l logger.Logger, msg string) { l.Info(msg, "key", "value") },
			method:  "Info",
			message: "info message",
		},
		{
			name:    "warn log",
			logFunc: func(l logger.Logger, msg string) { l.Warn(msg, "key", "value") },
			method:  "Warn",
			message: "warn message",
		},
		{
			name:    "error log",
			logFunc: func(l logger.Logger, msg string) { l.Error(msg, "key", "value") },
			method:  "Error",
			message: "error message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLogger := mocks.NewMockLogger()
			mockLogger.On(tt.method, tt.message, []interface{}{"key", "value"}).Return()

			tt.logFunc(mockLogger, tt.message)

			mockLogger.AssertExpectations(t)
		})
	}
}

func TestMockLogger_WithFields(t *testing.T) {
	mockLogger := mocks.NewMockLogger()
	childLogger := mocks.NewMockLogger()

	mockLogger.On("WithFields", []interface{}{"task", "build"}).Return(childLogger)
	childLogger.On("Error", "task failed", mock.Anything).Return()

	result := mockLogger.WithFields("task", "build")
	result.Error("task failed")

	assert.Equal(t, childLogger, result)
	mockLogger.AssertExpectations(t)
	childLogger.AssertExpectations(t)
}

func TestMockLogger_WithDefaultBehavior(t *testing.T) {
	mockLogger := mocks.NewMockLogger().WithDefaultBehavior()

	// デフォルト動作のテスト - 何も返さないが呼び出しは記録される
	mockLogger.Debug("debug message")
	mockLogger.Info("info message", "count", 1)
	mockLogger.Warn("warn message")
	mockLogger.Error("error message")

	// WithFieldsは自分自身を返す
	result := mockLogger.WithFields("key", "value")
	assert.Equal(t, mockLogger, result)
	mockLogger.AssertNumberOfCalls(t, "Info", 1)
}
