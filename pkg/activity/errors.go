package activity

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errInvalidContextID reports that one of the context ids passed to a
// count operation failed the identifier grammar. The whole call
// fails; no partial results are returned.
func errInvalidContextID(contextID string) error {
	return status.Errorf(codes.InvalidArgument, "invalid context id %q", contextID)
}
