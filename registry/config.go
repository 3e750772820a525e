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
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"dirpx.dev/cant"
	"dirpx.dev/cant/severity"
)

// fileConfig mirrors the YAML declaration layout:
//
//	sinks:
//	  error: ["/var/log/app/error.log"]
//	  warn:  ["/var/log/app/warn.log", "/dev/stderr"]
//	kinds:
//	  OpenError:
//	    cant: "open file %s"
//	    because: "the disk is %s"
//	    status: 500
//	    level: error
//	  FetchError:
//	    cant: "fetch %s"
//	    because_from_cause: true
//	    level: warn
type fileConfig struct {
	Sinks map[string][]string   `koanf:"sinks"`
	Kinds map[string]kindConfig `koanf:"kinds"`
}

type kindConfig struct {
	Cant             string `koanf:"cant"`
	Because          string `koanf:"because"`
	BecauseFromCause bool   `koanf:"because_from_cause"`
	Status           int    `koanf:"status"`
	Level            string `koanf:"level"`
}

// Load reads a YAML declaration file and returns the built kinds together
// with the populated registry (useful for registering more kinds against
// the same sinks later).
func Load(path string) (map[string]cant.Kind, *Registry, error) {
	return LoadWithEnv(path, "")
}

// LoadWithEnv is Load with environment overrides: variables carrying the
// given prefix are merged over the file values, with "_" separating key
// path segments, e.g.
//
//	CANT_SINKS_ERROR=/var/log/app/error.log
//
// overrides sinks.error. Pass an empty prefix to skip the environment.
func LoadWithEnv(path, envPrefix string) (map[string]cant.Kind, *Registry, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("registry: load config %q: %w", path, err)
	}

	if envPrefix != "" {
		if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(
				strings.TrimPrefix(s, envPrefix)), "_", ".")
		}), nil); err != nil {
			return nil, nil, fmt.Errorf("registry: load environment: %w", err)
		}
	}

	var cfg fileConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, nil, fmt.Errorf("registry: unmarshal config %q: %w", path, err)
	}

	r := New()
	for lvl, paths := range cfg.Sinks {
		sev, err := severity.Parse(lvl)
		if err != nil {
			return nil, nil, fmt.Errorf("registry: sinks level %q: %w", lvl, err)
		}
		if err := r.SetSinks(sev, paths); err != nil {
			return nil, nil, fmt.Errorf("registry: sinks for level %q: %w", lvl, err)
		}
	}

	templates := make(map[string]*cant.Template, len(cfg.Kinds))
	for name, kc := range cfg.Kinds {
		t := cant.NewTemplate().SetCant(kc.Cant)
		if kc.BecauseFromCause {
			t.SetBecauseCause()
		} else {
			t.SetBecause(kc.Because)
		}
		if kc.Status != 0 {
			t.SetStatus(kc.Status)
		}
		if kc.Level != "" {
			sev, err := severity.Parse(kc.Level)
			if err != nil {
				return nil, nil, fmt.Errorf("registry: kind %q level: %w", name, err)
			}
			t.SetLevel(sev)
		}
		templates[name] = t
	}

	kinds, err := r.Build(templates)
	if err != nil {
		return nil, nil, err
	}
	return kinds, r, nil
}
