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

package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"dirpx.dev/cant"
)

// Meta carries extra context that the HTTP layer can add on top of a cant
// instance. All fields are optional and typically come from request context,
// headers, or router-level logic.
type Meta struct {
	Correlation string
	TraceID     string
	SpanID      string
}

// view is the JSON body shape written to clients.
type view struct {
	Name        string `json:"name"`
	Message     string `json:"message"`
	Level       string `json:"level,omitempty"`
	Status      int    `json:"status"`
	Correlation string `json:"correlation,omitempty"`
	TraceID     string `json:"trace_id,omitempty"`
	SpanID      string `json:"span_id,omitempty"`
}

// Writer is a thin adapter that knows how to turn a *cant.Instance into an
// HTTP response using the status the instance carries.
type Writer struct {
	// Fallback is the status used when the instance carries none.
	// Zero means http.StatusInternalServerError.
	Fallback int
}

// Write serializes the instance as a JSON error body and writes it to the
// response writer. The HTTP status comes from the instance itself (which
// may have inherited it from a chained cause), falling back to Fallback.
//
// A Meta without a correlation token gets a fresh one, so every error
// response is individually addressable in support conversations.
//
// No automatic redaction or filtering is performed here: whatever is
// present in the instance and Meta is exposed as-is. Higher-level handlers
// should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, inst *cant.Instance, meta Meta) {
	if inst == nil {
		return
	}

	st := inst.Status()
	if st == 0 {
		st = w.Fallback
	}
	if st == 0 {
		st = http.StatusInternalServerError
	}

	if meta.Correlation == "" {
		meta.Correlation = uuid.NewString()
	}

	v := view{
		Name:        inst.Name(),
		Message:     inst.Error(),
		Level:       inst.Level().String(),
		Status:      st,
		Correlation: meta.Correlation,
		TraceID:     meta.TraceID,
		SpanID:      meta.SpanID,
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Correlation-Id", meta.Correlation)
	rw.WriteHeader(st)

	b, _ := json.Marshal(v)
	_, _ = rw.Write(b)
}
