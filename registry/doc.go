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

// Package registry bulk-registers named error kinds and routes them to
// severity-specific sinks.
//
// A Registry is an explicit value with caller-controlled lifetime — there
// is no ambient process-wide state. It maps severity levels to validated
// sinks; Build then finalizes a name→Template mapping into a name→Kind
// mapping, overriding each template's sinks with the registry entry for its
// level when one exists.
//
// Load and LoadWithEnv build the same thing from a YAML declaration file
// (optionally overridden by environment variables), so applications can
// declare their error vocabulary next to the rest of their configuration.
package registry
