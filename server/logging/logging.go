/*
 * Copyright 2026 The Folio Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logging provides logging facilities for Folio Server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper of zap.Logger.
type Logger = *zap.SugaredLogger

// Field is a wrapper of zap.Field.
type Field = zap.Field

// Format is the encoding of log entries.
type Format string

const (
	// FormatConsole writes human readable lines with colored levels.
	FormatConsole Format = "console"

	// FormatJSON writes one JSON object per entry.
	FormatJSON Format = "json"
)

var (
	mu     sync.RWMutex
	format = FormatConsole
	output = zapcore.AddSync(os.Stdout)

	// level is shared by every logger, so it can be changed after the
	// loggers are created.
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	defaultLogger Logger
	loggerOnce    sync.Once
)

// SetLogLevel sets the level of every logger with one of "debug", "info",
// "warn", "error", "panic" and "fatal".
func SetLogLevel(name string) error {
	l, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("invalid log level: %s", name)
	}
	level.SetLevel(l)
	return nil
}

// SetFormat sets the encoding of loggers created afterwards. It must be
// called before DefaultLogger() or New().
func SetFormat(name string) error {
	f := Format(strings.ToLower(name))
	if f != FormatConsole && f != FormatJSON {
		return fmt.Errorf("invalid log format: %s", name)
	}

	mu.Lock()
	defer mu.Unlock()
	format = f
	return nil
}

// SetOutput sets the destination of loggers created afterwards.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = zapcore.AddSync(w)
}

// New creates a new logger with the given name and fields.
func New(name string, fields ...Field) Logger {
	return newLogger(name, fields...)
}

// NewField creates a new field with the given key and value.
func NewField(key string, value string) Field {
	return zap.String(key, value)
}

// DefaultLogger returns the default logger used by Folio.
func DefaultLogger() Logger {
	loggerOnce.Do(func() {
		defaultLogger = newLogger("default")
	})
	return defaultLogger
}

// Enabled returns true if the given level is enabled.
func Enabled(l zapcore.Level) bool {
	return level.Enabled(l)
}

func newLogger(name string, fields ...Field) Logger {
	mu.RLock()
	encoder := zapcore.NewConsoleEncoder(consoleEncoderConfig())
	if format == FormatJSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig())
	}
	core := zapcore.NewCore(encoder, output, level)
	mu.RUnlock()

	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).
		Named(name).
		With(fields...).
		Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := encoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}
