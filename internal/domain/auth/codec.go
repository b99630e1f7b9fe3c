package auth

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorruptSession marks a persisted session value that cannot be turned back into an Identity.
var ErrCorruptSession = errors.New("corrupt session value")

// LoadResult is the outcome of reading a session slot.
// A zero LoadResult is Absent.
type LoadResult struct {
	identity Identity
	present  bool
}

// Present wraps a decoded identity.
func Present(id Identity) LoadResult { return LoadResult{identity: id, present: true} }

// Absent is the result for an empty or healed slot.
func Absent() LoadResult { return LoadResult{} }

// Identity returns the stored identity and whether one was present.
func (r LoadResult) Identity() (Identity, bool) { return r.identity, r.present }

// IsPresent reports whether the slot held a valid identity.
func (r LoadResult) IsPresent() bool { return r.present }

// EncodeIdentity serializes an identity into its persisted form.
func EncodeIdentity(id Identity) ([]byte, error) {
	b, err := json.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("marshal identity: %w", err)
	}
	return b, nil
}

// DecodeIdentity parses a persisted value. Malformed JSON and partial identities
// both fail with ErrCorruptSession.
func DecodeIdentity(data []byte) (Identity, error) {
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}
	if err := id.Validate(); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}
	return id, nil
}
