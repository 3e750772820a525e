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
	"fmt"
	"strconv"
	"strings"
)

// The three valid placeholder markers. Each is the two-character sequence
// '%' followed by one of these verbs:
//
//   - 's' — coerce-to-string substitution;
//   - 'd' — coerce-to-number substitution (non-numeric input renders "NaN");
//   - 'j' — JSON-serialize substitution.
//
// Nothing else is a marker. In particular "%%" carries no escape semantics
// here: counting and substitution both work on a plain left-to-right,
// non-overlapping scan.
const (
	verbString = 's'
	verbNumber = 'd'
	verbJSON   = 'j'
)

func isVerb(c byte) bool {
	return c == verbString || c == verbNumber || c == verbJSON
}

// countPlaceholders returns the number of valid placeholder markers in tpl.
//
// The scan is left-to-right and non-overlapping, so adjacent candidate
// sequences never double-count: "%s%d" counts 2, "%%s" counts 1 (the marker
// starting at index 1). Empty and marker-free templates count 0.
func countPlaceholders(tpl string) int {
	n := 0
	for i := 0; i+1 < len(tpl); {
		if tpl[i] == '%' && isVerb(tpl[i+1]) {
			n++
			i += 2
			continue
		}
		i++
	}
	return n
}

// formatTemplate substitutes args into tpl, consuming one argument per
// marker, left to right. Markers beyond the supplied arguments are kept as
// literal text.
func formatTemplate(tpl string, args []any) string {
	if len(tpl) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(tpl) + 16*len(args))
	next := 0
	for i := 0; i < len(tpl); {
		if tpl[i] == '%' && i+1 < len(tpl) && isVerb(tpl[i+1]) && next < len(args) {
			b.WriteString(formatArg(tpl[i+1], args[next]))
			next++
			i += 2
			continue
		}
		b.WriteByte(tpl[i])
		i++
	}
	return b.String()
}

// formatArg renders one argument according to the marker verb.
func formatArg(verb byte, v any) string {
	switch verb {
	case verbNumber:
		return numberify(v)
	case verbJSON:
		return jsonify(v)
	default:
		return stringify(v)
	}
}

// stringify applies default string coercion: strings pass through, anything
// else renders in its default fmt form.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// numberify coerces v to a number and renders it in decimal. Values that do
// not coerce render as the literal "NaN".
//
// The "NaN" rendering is specified behavior, not a bug: callers rely on the
// exact substring in composed messages, so it must not be replaced with a
// friendlier error.
func numberify(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case bool:
		if n {
			return "1"
		}
		return "0"
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "NaN"
	default:
		return "NaN"
	}
}

// jsonify serializes v as compact JSON. Values that cannot be serialized
// (channels, functions, cycles) fall back to their default string form.
func jsonify(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// collapseWhitespace trims s and replaces every run of whitespace characters
// (including non-breaking space) with a single ASCII space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
