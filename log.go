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
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// logRecord is the wire shape of one serialized log line. This is the only
// externally observable artifact of the system:
//
//	{"level": string|null, "status": number|null, "message": ..., "date": ..., "stack"?: ...}
//
// Level and Status are pointers so that unset values serialize as null
// rather than disappearing; stack is omitted entirely unless requested.
type logRecord struct {
	Level   *string `json:"level"`
	Status  *int    `json:"status"`
	Message string  `json:"message"`
	Date    string  `json:"date"`
	Stack   string  `json:"stack,omitempty"`
}

// Log serializes the instance's state as a single compact JSON line and
// writes it to every sink configured on the producing kind, in order.
//
// The record carries level, status, message and the current time
// (RFC 3339 with nanoseconds); when includeStack is true and a stack trace
// was captured, it carries the stack too.
//
// Each sink write is independent: a failing sink does not prevent writes to
// the remaining sinks, and nothing is retried. The returned error joins
// whatever write errors occurred (nil when all sinks accepted the record).
// No completion or flush guarantee beyond the sinks' own Write semantics is
// provided; callers needing durability must flush the underlying sinks
// themselves.
func (e *Instance) Log(includeStack bool) error {
	rec := logRecord{
		Message: e.message,
		Date:    time.Now().Format(time.RFC3339Nano),
	}
	if e.level != "" {
		s := e.level.String()
		rec.Level = &s
	}
	if e.status != 0 {
		st := e.status
		rec.Status = &st
	}
	if includeStack && e.stack != "" {
		rec.Stack = e.stack
	}

	b, err := json.Marshal(rec)
	if err != nil {
		// Message and stack are plain strings; this is unreachable in
		// practice but must not panic.
		return fmt.Errorf("cant: marshal log record: %w", err)
	}
	b = append(b, '\n')

	var errs []error
	for _, w := range e.sinks {
		if _, werr := w.Write(b); werr != nil {
			errs = append(errs, werr)
		}
	}
	return errors.Join(errs...)
}
