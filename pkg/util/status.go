// Package util provides small cross-cutting helpers shared by the
// other packages in this repository.
package util

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusWrap attaches additional context to an error, preserving its
// gRPC status code if it has one (defaulting to codes.Unknown
// otherwise).
func StatusWrap(err error, message string) error {
	if err == nil {
		return nil
	}
	s, ok := status.FromError(err)
	if !ok {
		return status.Error(codes.Unknown, fmt.Sprintf("%s: %s", message, err))
	}
	return status.Error(s.Code(), fmt.Sprintf("%s: %s", message, s.Message()))
}

// StatusWrapWithCode attaches additional context to an error while
// forcing it to carry the given gRPC status code, discarding whatever
// code the original error may have carried. Used to translate
// low-level backing-store failures into the codes.Unavailable the RPC
// surface is expected to report.
func StatusWrapWithCode(err error, code codes.Code, message string) error {
	if err == nil {
		return nil
	}
	if s, ok := status.FromError(err); ok {
		return status.Error(code, fmt.Sprintf("%s: %s", message, s.Message()))
	}
	return status.Error(code, fmt.Sprintf("%s: %s", message, err))
}
