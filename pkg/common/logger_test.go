package common

import (
	"bytes"
	"strings"
	"testing"

	_ "github.com/Claretdelgado/bd-calvillo/pkg/testing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestGetLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLoggerWith(LoggerNameAquaCore,
		zap.String(LoggerFieldAquaCategory, LoggerCategoryAquaReading))
	logger.Info("categorized message")

	logOutput := buf.String()
	if !strings.Contains(logOutput, LoggerCategoryAquaReading) {
		t.Errorf("expected log output to carry the category field, got: %s", logOutput)
	}
}
