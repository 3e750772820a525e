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

package sink

import (
	"fmt"
	"io"
	"os"
)

// InvalidTypeError reports a configuration value that is not a recognized
// sink type, a sink-convertible path string, or a sequence thereof.
//
// It keeps both the offending value and its observed dynamic type so that
// the configuring caller sees exactly what was rejected.
type InvalidTypeError struct {
	// Value is the rejected configuration value as provided.
	Value any

	// Type is the observed dynamic type of Value, e.g. "int" or "struct {}".
	Type string
}

// Error implements the built-in error interface.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("sink: invalid sink %v (type %s): want io.Writer, path string, or a sequence of those", e.Value, e.Type)
}

// Default returns the process-error-output sink used when a kind is
// finalized without any sink configuration.
func Default() io.Writer {
	return os.Stderr
}

// Resolve normalizes an arbitrary sink configuration value into a flat,
// same-order slice of writable sinks.
//
// Accepted inputs:
//
//  1. io.Writer — returned unchanged. This covers regular files, terminal
//     devices and duplex network connections (net.Conn) alike.
//  2. string — interpreted as a filesystem path and converted into a new
//     writable sink targeting that path (created if missing, appended to
//     otherwise).
//  3. []io.Writer, []string, []any — resolved element-wise per the rules
//     above; the result has the same length and order.
//
// Any other input fails with *InvalidTypeError. A sequence containing one
// invalid element fails as a whole; no sinks are opened for partial results
// beyond those already converted.
func Resolve(v any) ([]io.Writer, error) {
	switch s := v.(type) {
	case []io.Writer:
		out := make([]io.Writer, 0, len(s))
		for _, w := range s {
			if w == nil {
				return nil, &InvalidTypeError{Value: w, Type: "nil"}
			}
			out = append(out, w)
		}
		return out, nil
	case []string:
		out := make([]io.Writer, 0, len(s))
		for _, p := range s {
			w, err := openPath(p)
			if err != nil {
				return nil, err
			}
			out = append(out, w)
		}
		return out, nil
	case []any:
		out := make([]io.Writer, 0, len(s))
		for _, e := range s {
			w, err := resolveOne(e)
			if err != nil {
				return nil, err
			}
			out = append(out, w)
		}
		return out, nil
	default:
		w, err := resolveOne(v)
		if err != nil {
			return nil, err
		}
		return []io.Writer{w}, nil
	}
}

// resolveOne converts a single non-sequence configuration value.
func resolveOne(v any) (io.Writer, error) {
	switch s := v.(type) {
	case nil:
		return nil, &InvalidTypeError{Value: v, Type: "nil"}
	case io.Writer:
		return s, nil
	case string:
		return openPath(s)
	default:
		return nil, &InvalidTypeError{Value: v, Type: fmt.Sprintf("%T", v)}
	}
}

// openPath converts a filesystem path into a writable sink. The file is
// created if missing and appended to otherwise, so repeated runs against
// the same log path accumulate records.
func openPath(path string) (io.Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: open path %q: %w", path, err)
	}
	return f, nil
}
