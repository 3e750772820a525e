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

package registry

import (
	"fmt"
	"io"

	"dirpx.dev/cant"
	"dirpx.dev/cant/severity"
	"dirpx.dev/cant/sink"
)

// Registry maps severity levels to output sinks and drives bulk
// registration of named error kinds.
//
// The zero Registry is not usable; construct with New. A Registry is not
// safe for concurrent mutation; configure it first, then share it.
type Registry struct {
	sinks map[severity.Severity][]io.Writer
}

// New returns an empty registry with no level→sink mappings.
func New() *Registry {
	return &Registry{sinks: make(map[severity.Severity][]io.Writer)}
}

// SetSinks maps a severity level to one sink or a sequence of sinks.
//
// The value is validated through sink.Resolve, so it accepts writers, path
// strings and slices of either; invalid input fails with
// *sink.InvalidTypeError and leaves the mapping unchanged.
func (r *Registry) SetSinks(level severity.Severity, v any) error {
	if err := severity.Validate(level); err != nil {
		return err
	}
	ws, err := sink.Resolve(v)
	if err != nil {
		return err
	}
	r.sinks[level] = ws
	return nil
}

// Sinks returns the sinks mapped to the given level, if any.
func (r *Registry) Sinks(level severity.Severity) ([]io.Writer, bool) {
	ws, ok := r.sinks[level]
	return ws, ok
}

// Build finalizes every template in the mapping into a kind of the same
// name.
//
// For each entry the template's name is set to the map key, and if the
// registry has sinks for the template's severity level, they replace the
// template's own sinks. Templates without a matching level keep whatever
// sinks they configured.
//
// The input templates are mutated (name, possibly sinks) — they are
// registration material, not reusable builders.
func (r *Registry) Build(templates map[string]*cant.Template) (map[string]cant.Kind, error) {
	kinds := make(map[string]cant.Kind, len(templates))
	for name, t := range templates {
		if t == nil {
			return nil, fmt.Errorf("registry: nil template for kind %q", name)
		}
		t.SetName(name)
		if ws, ok := r.sinks[t.Level()]; ok {
			if err := t.SetSinks(ws); err != nil {
				return nil, fmt.Errorf("registry: kind %q: %w", name, err)
			}
		}
		kinds[name] = t.Finalize()
	}
	return kinds, nil
}
