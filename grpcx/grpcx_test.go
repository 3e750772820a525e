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

package grpcx

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/cant"
	"dirpx.dev/cant/severity"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		http int
		want codes.Code
	}{
		{"unset", 0, codes.Unknown},
		{"bad request", http.StatusBadRequest, codes.InvalidArgument},
		{"unauthorized", http.StatusUnauthorized, codes.Unauthenticated},
		{"not found", http.StatusNotFound, codes.NotFound},
		{"conflict", http.StatusConflict, codes.Aborted},
		{"too many requests", http.StatusTooManyRequests, codes.ResourceExhausted},
		{"unavailable", http.StatusServiceUnavailable, codes.Unavailable},
		{"other 4xx", http.StatusTeapot, codes.FailedPrecondition},
		{"other 5xx", http.StatusInternalServerError, codes.Internal},
		{"success range", http.StatusOK, codes.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.http); got != tt.want {
				t.Fatalf("Code(%d) = %v, want %v", tt.http, got, tt.want)
			}
		})
	}
}

func invoke(t *testing.T, handlerErr error) error {
	t.Helper()
	interceptor := UnaryServerInterceptor()
	_, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/svc/Method"},
		func(context.Context, any) (any, error) { return nil, handlerErr },
	)
	return err
}

func TestUnaryServerInterceptor_MapsInstances(t *testing.T) {
	k := cant.NewTemplate().
		SetName("LookupError").
		SetCant("find user %s").
		SetBecause("the index is %s").
		SetStatus(http.StatusNotFound).
		SetLevel(severity.Warn).
		Finalize()

	err := invoke(t, k.New("alice", "stale"))
	if err == nil {
		t.Fatal("interceptor must return an error")
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("not a grpc status: %v", err)
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("code = %v, want %v", st.Code(), codes.NotFound)
	}
	if st.Message() != "Can't find user alice because the index is stale" {
		t.Fatalf("message = %q", st.Message())
	}

	detail, ok := ExtractDetails(err)
	if !ok {
		t.Fatal("classification detail missing")
	}
	fields := detail.AsMap()
	if fields["name"] != "LookupError" {
		t.Fatalf("detail name = %v", fields["name"])
	}
	if fields["level"] != "warn" {
		t.Fatalf("detail level = %v", fields["level"])
	}
	if fields["http_status"] != float64(http.StatusNotFound) {
		t.Fatalf("detail http_status = %v", fields["http_status"])
	}
}

func TestUnaryServerInterceptor_PassesForeignErrors(t *testing.T) {
	foreign := errors.New("plain failure")

	err := invoke(t, foreign)
	if !errors.Is(err, foreign) {
		t.Fatalf("foreign error must pass through unchanged, got %v", err)
	}
	if _, ok := ExtractDetails(err); ok {
		t.Fatal("foreign errors must not grow details")
	}
}

func TestUnaryServerInterceptor_PassesSuccess(t *testing.T) {
	interceptor := UnaryServerInterceptor()
	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/svc/Method"},
		func(context.Context, any) (any, error) { return "ok", nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("resp = %v", resp)
	}
}

func TestExtractDetails_NilAndForeign(t *testing.T) {
	if _, ok := ExtractDetails(nil); ok {
		t.Fatal("nil error must report false")
	}
	if _, ok := ExtractDetails(gstatus.Error(codes.Internal, "bare")); ok {
		t.Fatal("status without details must report false")
	}
}
