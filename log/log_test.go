//
// ArbiterHQ is pleased to support the open source community by making arbiter-go available.
//
// Copyright (C) 2026 ArbiterHQ.  All rights reserved.
//
// arbiter-go is licensed under the Apache License Version 2.0.
//
//

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		SetLevel(tt.level)
		assert.Equal(t, tt.want, zapLevel.Level(), "level %q", tt.level)
	}
	SetLevel(LevelInfo)
}

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Debug(args ...any)                 { r.messages = append(r.messages, "debug") }
func (r *recordingLogger) Debugf(format string, args ...any) { r.messages = append(r.messages, "debugf") }
func (r *recordingLogger) Info(args ...any)                  { r.messages = append(r.messages, "info") }
func (r *recordingLogger) Infof(format string, args ...any)  { r.messages = append(r.messages, "infof") }
func (r *recordingLogger) Warn(args ...any)                  { r.messages = append(r.messages, "warn") }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.messages = append(r.messages, "warnf") }
func (r *recordingLogger) Error(args ...any)                 { r.messages = append(r.messages, "error") }
func (r *recordingLogger) Errorf(format string, args ...any) { r.messages = append(r.messages, "errorf") }
func (r *recordingLogger) Fatal(args ...any)                 { r.messages = append(r.messages, "fatal") }
func (r *recordingLogger) Fatalf(format string, args ...any) { r.messages = append(r.messages, "fatalf") }

func TestPackageHelpersDelegateToDefault(t *testing.T) {
	orig := Default
	defer func() { Default = orig }()

	rec := &recordingLogger{}
	Default = rec

	Debug("d")
	Debugf("%s", "d")
	Info("i")
	Infof("%s", "i")
	Warn("w")
	Warnf("%s", "w")
	Error("e")
	Errorf("%s", "e")

	assert.Equal(t, []string{
		"debug", "debugf", "info", "infof", "warn", "warnf", "error", "errorf",
	}, rec.messages)
}
