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
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/cant"
)

// Code maps a cant instance's HTTP status onto a gRPC status code.
//
// Well-known statuses map onto their conventional counterparts; other 4xx
// fall back to FailedPrecondition, other 5xx (and anything unclassifiable)
// to Internal. A zero status — an instance that never carried one — maps to
// Unknown.
func Code(httpStatus int) codes.Code {
	switch httpStatus {
	case 0:
		return codes.Unknown
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusRequestTimeout:
		return codes.DeadlineExceeded
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	}
	switch {
	case httpStatus >= 200 && httpStatus < 300:
		return codes.OK
	case httpStatus >= 400 && httpStatus < 500:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *cant.Instance errors into gRPC statuses.
//
// The status code is derived from the instance's HTTP status via Code, the
// status message is the composed "Can't X because Y" text, and the
// instance's classification (name, level, HTTP status) is attached as a
// structpb detail so clients can recover it with ExtractDetails.
//
// Errors not produced by cant are returned untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		inst, ok := err.(*cant.Instance)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		base := gstatus.New(Code(inst.Status()), inst.Error())

		detail, derr := structpb.NewStruct(map[string]any{
			"name":        inst.Name(),
			"level":       inst.Level().String(),
			"http_status": inst.Status(),
		})
		if derr == nil {
			if with, werr := base.WithDetails(detail); werr == nil {
				return nil, with.Err()
			}
		}

		// Detail attachment failed — the bare status still carries code and
		// message.
		return nil, base.Err()
	}
}

// ExtractDetails pulls the attached classification struct out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractDetails(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
