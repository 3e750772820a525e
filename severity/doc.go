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

// Package severity provides parsing, normalization and validation for cant
// severity levels.
//
// A "severity" is the free-form classification tag attached to an error
// kind, such as "debug", "info", "warn", "error" or "fatal". Severities are
// meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in sink registries.
//
// The conventional five levels are provided as constants, but any value in
// canonical form is accepted: severities classify, they do not enumerate.
//
// The empty severity ("") means "not provided" and is valid to store in
// error kinds — a kind without a level simply logs level: null.
package severity
