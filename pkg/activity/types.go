package activity

import "encoding/json"

// Info is the reported, possibly-fuzzed distinct-visitor count for a
// context.
type Info struct {
	Count    uint64 `json:"count"`
	IsFuzzed bool   `json:"is_fuzzed"`
}

// MarshalJSON is implemented explicitly (even though the default
// struct-tag encoding already produces it) to pin down the
// byte-for-byte wire contract: exactly two keys, in lexicographic
// order ("count" before "is_fuzzed"), no whitespace. Field declaration
// order above already yields that output; this method exists so the
// contract survives future field reordering.
func (i Info) MarshalJSON() ([]byte, error) {
	type wire struct {
		Count    uint64 `json:"count"`
		IsFuzzed bool   `json:"is_fuzzed"`
	}
	return json.Marshal(wire(i))
}

// UnmarshalJSON decodes the cache payload format produced by
// MarshalJSON.
func (i *Info) UnmarshalJSON(data []byte) error {
	var wire struct {
		Count    uint64 `json:"count"`
		IsFuzzed bool   `json:"is_fuzzed"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	i.Count = wire.Count
	i.IsFuzzed = wire.IsFuzzed
	return nil
}
