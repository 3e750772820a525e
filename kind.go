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

import "dirpx.dev/cant/severity"

// Kind is an immutable, reusable error-construction capability produced by
// Template.Finalize.
//
// A Kind holds a frozen configuration snapshot by value, so kinds can be
// copied, shared and invoked concurrently without synchronization (provided
// the configured sinks tolerate concurrent writes — a property of the sinks
// themselves, not of the Kind).
type Kind struct {
	cfg config
}

// Name returns the kind's type tag.
func (k Kind) Name() string { return k.cfg.name }

// Level returns the kind's severity level. May return severity.Empty.
func (k Kind) Level() severity.Severity { return k.cfg.level }

// Status returns the kind's HTTP status. May return 0.
func (k Kind) Status() int { return k.cfg.status }

// New constructs an Instance from positional arguments.
//
// The flat argument list is split between the two templates by the
// placeholder counts computed at Finalize time: the first cantArgc values
// feed the "can't" clause, the next becauseArgc values feed the "because"
// clause. Missing arguments are padded with empty strings; extra trailing
// arguments are ignored entirely.
//
// For kinds built with SetBecauseCause, the single because-argument is the
// cause and is handled before formatting:
//
//  1. a cause exposing a non-empty severity level overrides the kind's own
//     level for this instance; a non-zero status likewise;
//  2. a *cant.Instance contributes only its because-fragment, so chained
//     messages never restate already-subsumed "can't" text;
//  3. any other Cause contributes Describe(); a plain error contributes
//     its full message;
//  4. anything else is formatted as-is.
//
// New never fails: arity mismatches are absorbed by padding and truncation,
// and formatting has no error path.
func (k Kind) New(args ...any) *Instance {
	cfg := &k.cfg
	total := cfg.cantArgc + cfg.becauseArgc

	// Pad on the right with empty strings, drop extras beyond total.
	argv := make([]any, total)
	for i := range argv {
		if i < len(args) {
			argv[i] = args[i]
		} else {
			argv[i] = ""
		}
	}
	cantArgs := argv[:cfg.cantArgc]
	becauseArgs := argv[cfg.cantArgc:]

	level := cfg.level
	status := cfg.status

	// becauseIsCause implies exactly one because-argument: the effective
	// cause template is a single generic marker. Nil and typed-nil causes
	// are skipped entirely — they format as-is instead of being asked to
	// describe themselves.
	if cfg.becauseIsCause && !isNilCause(becauseArgs[0]) {
		v := becauseArgs[0]
		if l, ok := v.(Leveled); ok {
			if lv := l.Level(); lv != severity.Empty {
				level = lv
			}
		}
		if s, ok := v.(StatusCoded); ok {
			if st := s.Status(); st != 0 {
				status = st
			}
		}
		if c, ok := asCause(v); ok {
			becauseArgs[0] = c.Describe()
		}
	}

	msg := collapseWhitespace("Can't " + formatTemplate(cfg.cant, cantArgs) +
		" because " + formatTemplate(cfg.because, becauseArgs))

	return &Instance{
		name:    cfg.name,
		message: msg,
		level:   level,
		status:  status,
		stack:   captureStack(1),
		sinks:   cfg.sinks,
	}
}
