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

package cant

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"dirpx.dev/cant/severity"
)

// becauseSeparator splits a composed message into its "can't" and "because"
// clauses. Describe relies on its exact spelling; chained kinds extract the
// text after its first occurrence.
const becauseSeparator = "because "

// Instance is the error value produced by one Kind invocation.
//
// It carries:
//   - Message: the fully composed "Can't X because Y" text, trimmed and
//     whitespace-collapsed;
//   - Name: the kind's type tag;
//   - Level: the kind's severity, unless overridden by a chained cause;
//   - Status: the kind's HTTP status, unless overridden by a chained cause;
//   - Stack: a stack trace captured at construction time.
//
// An Instance is immutable after construction and safe to share. The
// concrete *Instance type is what distinguishes errors produced by this
// system from arbitrary external errors; use IsInstance to test wrapped
// values.
type Instance struct {
	name    string
	message string
	level   severity.Severity
	status  int
	stack   string
	sinks   []io.Writer
}

// Error implements the built-in error interface; it returns the composed
// message.
func (e *Instance) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Name returns the kind name this instance was constructed by.
func (e *Instance) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Level returns the instance's severity level. May return severity.Empty.
//
// Level also satisfies the Leveled cause contract, so an Instance fed into
// another kind's because-clause propagates its classification. A nil
// receiver declines with severity.Empty.
func (e *Instance) Level() severity.Severity {
	if e == nil {
		return severity.Empty
	}
	return e.level
}

// Status returns the instance's HTTP status. May return 0.
//
// Status also satisfies the StatusCoded cause contract. A nil receiver
// declines with 0.
func (e *Instance) Status() int {
	if e == nil {
		return 0
	}
	return e.status
}

// Stack returns the stack trace captured at construction time, or "" when
// capture was not possible.
func (e *Instance) Stack() string {
	if e == nil {
		return ""
	}
	return e.stack
}

// Describe implements the Cause contract: it returns only the
// because-fragment of the message — the text after the first literal
// "because " separator — discarding the instance's own "can't" clause.
//
// Messages without the separator (not producible by New, but Describe is
// defensive about it) are returned whole.
func (e *Instance) Describe() string {
	if e == nil {
		return ""
	}
	if i := strings.Index(e.message, becauseSeparator); i >= 0 {
		return e.message[i+len(becauseSeparator):]
	}
	return e.message
}

// IsInstance reports whether err, or any error it wraps, was produced by
// this library.
func IsInstance(err error) bool {
	var inst *Instance
	return errors.As(err, &inst)
}

// captureStack records the current goroutine's call stack, skipping the
// given number of frames above captureStack itself. Returns "" when the
// runtime yields no frames.
func captureStack(skip int) string {
	pc := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pc[:n])
	var b strings.Builder
	for {
		f, more := frames.Next()
		if f.Function != "" {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}
