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

// Package cant builds structured, formatted errors following the
// "Can't X because Y" convention.
//
// The entry point is the Template builder. A Template accumulates the
// configuration of one error kind — a name, a "can't" format template,
// a "because" format template (or a marker saying "derive the because-clause
// from a nested cause"), an optional HTTP status, an optional severity level
// and a set of log sinks — and Finalize freezes that configuration into an
// immutable, reusable Kind:
//
//	ErrOpen := cant.NewTemplate().
//	    SetName("OpenError").
//	    SetCant("open file %s").
//	    SetBecause("the disk is %s").
//	    SetStatus(500).
//	    SetLevel(severity.Error).
//	    Finalize()
//
//	err := ErrOpen.New("/etc/passwd", "full")
//	// err.Error() == `Can't open file /etc/passwd because the disk is full`
//
// Kinds constructed with SetBecauseCause take a prior error as their final
// relevant argument and inherit its because-fragment, severity and status,
// so because-clauses chain transitively without restating subsumed "can't"
// text. Construction never fails: missing arguments become empty strings and
// extra trailing arguments are ignored.
//
// Instances can be thrown around as ordinary error values, inspected, or
// written to the kind's sinks as one-line JSON records via Log.
package cant
