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
	"io"

	"dirpx.dev/cant/severity"
	"dirpx.dev/cant/sink"
)

// DefaultName is the type tag of kinds whose builder never set a name.
const DefaultName = "Error"

// causePlaceholder is the effective because-template of a kind built with
// SetBecauseCause: a single generic marker that receives the cause's
// description.
const causePlaceholder = "%s"

// Template accumulates the configuration of one error kind being defined.
//
// All pure setters return the same builder, enabling chained configuration;
// SetSinks returns an error instead because sink validation can fail (use
// MustSinks to keep a static chain intact). Finalize freezes the current
// state into an immutable Kind; the builder stays mutable and reusable, and
// later mutation never affects already-produced kinds.
//
// A Template is not safe for concurrent mutation. Kinds are.
type Template struct {
	name           string
	cant           string
	because        string
	becauseIsCause bool
	status         int
	level          severity.Severity
	sinks          []io.Writer
}

// NewTemplate returns an empty builder: generic name, empty templates, no
// status, no level, and the default process-error-output sink (applied at
// Finalize when no sinks were configured).
func NewTemplate(opts ...Option) *Template {
	t := &Template{name: DefaultName}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetName sets the produced kind's type tag.
func (t *Template) SetName(name string) *Template {
	t.name = name
	return t
}

// SetCant sets the format template for the "can't X" clause.
func (t *Template) SetCant(tpl string) *Template {
	t.cant = tpl
	return t
}

// SetBecause sets a literal format template for the "because Y" clause,
// clearing any previous SetBecauseCause marking.
func (t *Template) SetBecause(tpl string) *Template {
	t.because = tpl
	t.becauseIsCause = false
	return t
}

// SetBecauseCause marks the because-clause as derived from a nested cause
// error: the effective template becomes a single generic placeholder, and
// the kind's final relevant construction argument is treated as the cause
// (see Kind.New for the chaining rules).
func (t *Template) SetBecauseCause() *Template {
	t.because = causePlaceholder
	t.becauseIsCause = true
	return t
}

// SetStatus sets the HTTP status associated with the kind. Zero means
// "no status".
func (t *Template) SetStatus(status int) *Template {
	t.status = status
	return t
}

// SetLevel sets the severity level associated with the kind.
// severity.Empty means "no level".
func (t *Template) SetLevel(level severity.Severity) *Template {
	t.level = level
	return t
}

// SetSinks validates and stores the kind's output sinks.
//
// The value is normalized through sink.Resolve: a single writer or path
// string becomes a one-element sequence, slices are converted element-wise.
// On invalid input the stored sinks are left untouched and the returned
// error is a *sink.InvalidTypeError naming the offending value and type.
func (t *Template) SetSinks(v any) error {
	ws, err := sink.Resolve(v)
	if err != nil {
		return err
	}
	t.sinks = ws
	return nil
}

// MustSinks is the panic-on-error variant of SetSinks. It keeps the fluent
// chain intact for static configuration, where an invalid sink is a
// programmer error.
func (t *Template) MustSinks(v any) *Template {
	if err := t.SetSinks(v); err != nil {
		panic(err)
	}
	return t
}

// Name returns the currently configured name.
func (t *Template) Name() string { return t.name }

// Level returns the currently configured severity level.
// Registries use it to pick level-specific sinks before finalizing.
func (t *Template) Level() severity.Severity { return t.level }

// Status returns the currently configured HTTP status. May return 0.
func (t *Template) Status() int { return t.status }

// config is the frozen snapshot of a Template taken at Finalize time.
//
// Kinds hold a config by value, never a *Template, so there is no aliasing
// between a builder and its already-produced kinds: mutating the builder
// after Finalize cannot reach into a Kind.
type config struct {
	name           string
	cant           string
	because        string
	becauseIsCause bool

	// Placeholder counts are computed once here, not per invocation.
	cantArgc    int
	becauseArgc int

	status int
	level  severity.Severity
	sinks  []io.Writer
}

// Finalize computes the placeholder counts for both templates, captures all
// current builder fields by value and returns a new immutable Kind over
// that snapshot.
//
// Finalize may be called any number of times; each call is independent and
// does not mutate the builder. Two kinds finalized from the same builder at
// different times reflect the builder state at their respective calls.
func (t *Template) Finalize() Kind {
	cfg := config{
		name:           t.name,
		cant:           t.cant,
		because:        t.because,
		becauseIsCause: t.becauseIsCause,
		cantArgc:       countPlaceholders(t.cant),
		becauseArgc:    countPlaceholders(t.because),
		status:         t.status,
		level:          t.level,
	}
	if len(t.sinks) == 0 {
		cfg.sinks = []io.Writer{sink.Default()}
	} else {
		cfg.sinks = make([]io.Writer, len(t.sinks))
		copy(cfg.sinks, t.sinks)
	}
	return Kind{cfg: cfg}
}
