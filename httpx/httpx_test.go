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
	"net/http/httptest"
	"testing"

	"dirpx.dev/cant"
	"dirpx.dev/cant/severity"
)

func TestWriter_Write(t *testing.T) {
	k := cant.NewTemplate().
		SetName("OpenError").
		SetCant("open file %s").
		SetBecause("the disk is %s").
		SetStatus(http.StatusInsufficientStorage).
		SetLevel(severity.Error).
		Finalize()

	rec := httptest.NewRecorder()
	Writer{}.Write(rec, k.New("/tmp/x", "full"), Meta{
		Correlation: "corr-1",
		TraceID:     "trace-1",
	})

	if rec.Code != http.StatusInsufficientStorage {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInsufficientStorage)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	if got := rec.Header().Get("X-Correlation-Id"); got != "corr-1" {
		t.Fatalf("correlation header = %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["name"] != "OpenError" {
		t.Fatalf("name = %v", body["name"])
	}
	if body["message"] != "Can't open file /tmp/x because the disk is full" {
		t.Fatalf("message = %v", body["message"])
	}
	if body["level"] != "error" {
		t.Fatalf("level = %v", body["level"])
	}
	if body["status"] != float64(http.StatusInsufficientStorage) {
		t.Fatalf("status = %v", body["status"])
	}
	if body["trace_id"] != "trace-1" {
		t.Fatalf("trace_id = %v", body["trace_id"])
	}
}

func TestWriter_DefaultsStatusAndCorrelation(t *testing.T) {
	k := cant.NewTemplate().SetCant("do it").SetBecause("reasons").Finalize()

	rec := httptest.NewRecorder()
	Writer{}.Write(rec, k.New(), Meta{})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if rec.Header().Get("X-Correlation-Id") == "" {
		t.Fatal("missing correlation must be filled in")
	}
}

func TestWriter_FallbackStatus(t *testing.T) {
	k := cant.NewTemplate().SetCant("do it").SetBecause("reasons").Finalize()

	rec := httptest.NewRecorder()
	Writer{Fallback: http.StatusBadGateway}.Write(rec, k.New(), Meta{})

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestWriter_NilInstance(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, nil, Meta{})

	if rec.Body.Len() != 0 {
		t.Fatal("nil instance must write nothing")
	}
}
