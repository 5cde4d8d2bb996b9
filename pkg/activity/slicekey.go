package activity

import "fmt"

// sliceKey encodes (context_id, slice_index + offset) as a
// backing-store key. It does not validate contextID; that is the
// Validator's responsibility upstream.
func sliceKey(contextID string, slice SliceIndex, offset int) string {
	return fmt.Sprintf("%s/%d", contextID, int64(slice)+int64(offset))
}

// cacheKey encodes the result-cache key for a context.
func cacheKey(contextID string) string {
	return contextID + "/cached"
}
