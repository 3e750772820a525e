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

// Package sink validates and normalizes the output destinations cant error
// kinds log to.
//
// A sink configuration value may be:
//
//   - an io.Writer (files, terminals, duplex network connections, buffers);
//   - a string, interpreted as a filesystem path and opened for appending;
//   - a slice of either ([]io.Writer, []string, or mixed []any).
//
// Resolve normalizes any of those into a flat []io.Writer. Anything else
// fails with *InvalidTypeError carrying the offending value and its observed
// type — surfaced immediately to the configuring caller, never swallowed.
package sink
