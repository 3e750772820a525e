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

package severity

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Severity is the canonical, validated representation of a severity level.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// Unlike an error code, a severity is optional: the empty value is allowed
// everywhere and means "no level provided".
type Severity string

// MinLength and MaxLength define the allowed length range for a canonical
// severity level.
const (
	// MinLength is the minimum length for a non-empty severity.
	// Two characters admit short conventional tags like "io" while still
	// rejecting single-letter noise. Remember: the empty string is allowed
	// and means "no level provided".
	MinLength = 2

	// MaxLength is the maximum length for a valid severity.
	// 32 characters is enough for descriptive tags like "security_critical"
	// while preventing unbounded or accidental long strings.
	MaxLength = 32
)

const (
	// severityFmt is the canonical regular expression used to validate
	// severity levels.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{1,31} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; the quantifier {1,31} makes
	//	                  the total length 2..32 characters (1 + 1..31);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {1,31} is tied to MinLength / MaxLength
	// above. If you change MinLength / MaxLength, adjust this pattern too.
	severityFmt = `^[a-z][a-z0-9_]{1,31}$`
)

var (
	// severityRe is the compiled regexp for the above pattern.
	//
	// Precompiled so that repeated validations (e.g. in registries or
	// config loading) do not pay the compilation cost over and over.
	severityRe = regexp.MustCompile(severityFmt)
)

var (
	// ErrSeverityInvalid is returned when a value cannot be parsed or
	// validated as a severity level.
	ErrSeverityInvalid = errors.New("cant: invalid severity")
)

// Ensure Severity implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Severity)(nil)
	_ encoding.TextUnmarshaler = (*Severity)(nil)
)

// Empty is the zero-value severity. It is considered "not provided" and is
// valid to store in error kinds. Callers that require a non-empty level
// should check against Empty explicitly.
var Empty Severity = ""

// The conventional severity ladder. These are ordinary canonical values,
// not an exhaustive enum — Parse accepts any value in canonical form.
const (
	Debug Severity = "debug"
	Info  Severity = "info"
	Warn  Severity = "warn"
	Error Severity = "error"
	Fatal Severity = "fatal"
)

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical severity form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Parse/Validate after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Severity value.
//
// Parse also accepts the empty string and returns severity.Empty without
// error. This is what makes Severity an "optional" part of the error model.
func Parse(s string) (Severity, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Severity(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level severity constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Severity {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if v == Empty {
		panic("cant: empty severity in MustParse")
	}
	return v
}

// Validate checks whether the provided Severity is in canonical form.
//
// The empty severity ("") is considered valid here, because the whole point
// of this type is to be optional. If you need to enforce "must be
// non-empty", add that check at call site.
func Validate(v Severity) error {
	if v == Empty {
		return nil
	}
	return validate(string(v))
}

// String returns the canonical string representation of the severity.
func (v Severity) String() string {
	return string(v)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty severity as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (v Severity) MarshalText() ([]byte, error) {
	if err := Validate(v); err != nil {
		return nil, err
	}
	if v == Empty {
		return []byte{}, nil
	}
	return []byte(v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce severity.Empty.
func (v *Severity) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrSeverityInvalid
	}
	if !severityRe.MatchString(s) {
		return ErrSeverityInvalid
	}
	return nil
}
