/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package zapx bridges cant instances into go.uber.org/zap.
//
// It works in both directions: Log/Fields push an instance through an
// existing zap logger as a structured event, and Writer turns a zap logger
// into an io.Writer usable as a cant sink, so zap-managed outputs (rotation,
// sampling, encoding) can receive the library's JSON log lines.
package zapx

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/cant"
	"dirpx.dev/cant/severity"
)

// Level maps a cant severity onto a zap level.
//
// Fatal maps to zap's Error level, not Fatal: logging an instance must
// never terminate the process. Unknown and empty severities map to Error
// as well — an error instance is an error event by default.
func Level(s severity.Severity) zapcore.Level {
	switch s {
	case severity.Debug:
		return zapcore.DebugLevel
	case severity.Info:
		return zapcore.InfoLevel
	case severity.Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Fields renders an instance's classification as structured zap fields:
// name, and when present, level and status. The message itself is not a
// field — pass it as the log message.
func Fields(inst *cant.Instance) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	fields = append(fields, zap.String("name", inst.Name()))
	if lv := inst.Level(); lv != severity.Empty {
		fields = append(fields, zap.String("level", lv.String()))
	}
	if st := inst.Status(); st != 0 {
		fields = append(fields, zap.Int("status", st))
	}
	return fields
}

// Log writes the instance through l at the level implied by its severity,
// with the composed message as the log message and Fields as the payload.
func Log(l *zap.Logger, inst *cant.Instance) {
	if l == nil || inst == nil {
		return
	}
	if ce := l.Check(Level(inst.Level()), inst.Error()); ce != nil {
		ce.Write(Fields(inst)...)
	}
}

// Writer returns an io.Writer that forwards each payload line to l at the
// given level. Configure it as a kind's sink to route the library's JSON
// log records through a zap-managed output:
//
//	t.MustSinks(zapx.Writer(logger, zapcore.ErrorLevel))
func Writer(l *zap.Logger, at zapcore.Level) io.Writer {
	return loggerWriter{l: l, at: at}
}

type loggerWriter struct {
	l  *zap.Logger
	at zapcore.Level
}

// Write logs the payload as one message, stripping the trailing line
// terminator. It always reports full consumption; delivery failures are
// zap's to handle.
func (w loggerWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\r\n")
	if ce := w.l.Check(w.at, msg); ce != nil {
		ce.Write()
	}
	return len(p), nil
}
