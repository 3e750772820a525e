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
	"reflect"

	"dirpx.dev/cant/severity"
)

// Cause describes a prior failure supplied as the final relevant argument
// to a kind built with SetBecauseCause.
//
// Describe returns the text substituted into the new instance's
// because-clause. The two concrete variants differ exactly there:
//
//   - an *Instance describes itself by its because-fragment only, so
//     because-clauses chain transitively without restating "can't" text
//     already subsumed by the outer message;
//   - an external failure (see External) describes itself by its full
//     message, since there is no clause structure to strip.
//
// A Cause may additionally implement Leveled and/or StatusCoded to
// propagate classification into the new instance.
type Cause interface {
	// Describe returns the text to substitute into the because-clause.
	Describe() string
}

// Leveled is optionally implemented by causes that carry a severity level.
//
// A non-empty level on the cause overrides the constructing kind's own
// severity, so the most specific classification — the deepest one — wins.
// Implementations return severity.Empty to decline.
type Leveled interface {
	// Level returns the severity carried by the cause.
	// The returned value MAY be severity.Empty, meaning "no level".
	Level() severity.Severity
}

// StatusCoded is optionally implemented by causes that carry an HTTP status.
//
// A non-zero status on the cause overrides the constructing kind's own
// status. Implementations return 0 to decline.
type StatusCoded interface {
	// Status returns the HTTP status carried by the cause. May return 0.
	Status() int
}

// External adapts an arbitrary error into a Cause whose description is the
// error's full message. Use it to feed failures from other systems into a
// because-clause:
//
//	ErrFetch.New(url, cant.External(err))
//
// Plain error values passed directly to Kind.New are adapted the same way;
// External exists for call sites that want the conversion to be explicit.
func External(err error) Cause {
	return externalCause{err: err}
}

type externalCause struct {
	err error
}

// Describe returns the wrapped error's message verbatim.
func (c externalCause) Describe() string {
	if c.err == nil {
		return ""
	}
	return c.err.Error()
}

// Unwrap exposes the wrapped error for errors.Is / errors.As chains.
func (c externalCause) Unwrap() error { return c.err }

// isNilCause reports whether v is nil or a typed-nil pointer. Interface
// assertions match typed nils, so the chaining rules must skip them before
// calling any methods on them — construction never fails, and a nil cause
// simply formats as-is.
func isNilCause(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// asCause adapts an arbitrary construction argument into a Cause.
//
// Values already implementing Cause (including *Instance) pass through;
// plain errors are wrapped as external failures; everything else is not a
// cause and reports false, leaving the argument to ordinary formatting.
func asCause(v any) (Cause, bool) {
	switch c := v.(type) {
	case Cause:
		return c, true
	case error:
		return External(c), true
	}
	return nil, false
}
