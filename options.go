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

// Option is a functional option for constructing a Template. It is the
// declaration-style alternative to the fluent setters:
//
//	var ErrOpen = cant.NewTemplate(
//	    cant.WithName("OpenError"),
//	    cant.WithCant("open file %s"),
//	    cant.WithBecauseCause(),
//	    cant.WithLevel(severity.Error),
//	).Finalize()
type Option func(*Template)

// WithName sets the kind name on the template being constructed.
// Intended to be used with NewTemplate(...).
func WithName(name string) Option {
	return func(t *Template) { t.SetName(name) }
}

// WithCant sets the "can't X" template on construction.
// Intended to be used with NewTemplate(...).
func WithCant(tpl string) Option {
	return func(t *Template) { t.SetCant(tpl) }
}

// WithBecause sets a literal "because Y" template on construction.
// Intended to be used with NewTemplate(...).
func WithBecause(tpl string) Option {
	return func(t *Template) { t.SetBecause(tpl) }
}

// WithBecauseCause marks the because-clause as cause-derived on construction.
// Intended to be used with NewTemplate(...).
func WithBecauseCause() Option {
	return func(t *Template) { t.SetBecauseCause() }
}

// WithStatus sets the HTTP status on construction.
// Intended to be used with NewTemplate(...).
func WithStatus(status int) Option {
	return func(t *Template) { t.SetStatus(status) }
}

// WithLevel sets the severity level on construction.
// Intended to be used with NewTemplate(...).
func WithLevel(level severity.Severity) Option {
	return func(t *Template) { t.SetLevel(level) }
}

// WithSinks sets the output sinks on construction. Like MustSinks, it
// panics on invalid input — options are for static declarations, where an
// invalid sink is a programmer error. Use SetSinks when the value comes
// from runtime input.
func WithSinks(v any) Option {
	return func(t *Template) { t.MustSinks(v) }
}
