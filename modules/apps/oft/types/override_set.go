package types

import (
	"gopkg.in/yaml.v3"

	errorsmod "cosmossdk.io/errors"

	"github.com/oft-labs/oft-policy/internal/collections"
)

// OverrideSet is a bounded, unordered set of rate limit override keys.
//
// len(entries) is the only count kept; it never exceeds capacity and entries
// never contains duplicates. Every method either succeeds with the invariant
// intact or fails leaving the set unchanged.
type OverrideSet[K comparable] struct {
	entries  []K
	capacity uint8
}

// NewOverrideSet returns an empty set holding at most capacity keys.
func NewOverrideSet[K comparable](capacity uint8) OverrideSet[K] {
	return OverrideSet[K]{
		entries:  make([]K, 0, capacity),
		capacity: capacity,
	}
}

// Contains reports whether key is in the set.
func (s *OverrideSet[K]) Contains(key K) bool {
	return collections.Contains(key, s.entries)
}

// Add inserts key. Fails with ErrOverrideListFull when the set is at capacity
// and with ErrAlreadyInOverrideList when key is already present.
func (s *OverrideSet[K]) Add(key K) error {
	if len(s.entries) >= int(s.capacity) {
		return errorsmod.Wrapf(ErrOverrideListFull, "capacity %d", s.capacity)
	}
	if s.Contains(key) {
		return errorsmod.Wrapf(ErrAlreadyInOverrideList, "%v", key)
	}

	s.entries = append(s.entries, key)
	return nil
}

// Remove deletes key by swapping the last entry into its slot. Order carries no
// meaning, so removal is O(1) after the lookup.
// Fails with ErrNotInOverrideList when key is absent.
func (s *OverrideSet[K]) Remove(key K) error {
	i := collections.IndexOf(key, s.entries)
	if i < 0 {
		return errorsmod.Wrapf(ErrNotInOverrideList, "%v", key)
	}

	s.entries = collections.SwapRemove(s.entries, i)
	return nil
}

// Apply performs action on key.
func (s *OverrideSet[K]) Apply(action OverrideAction, key K) error {
	switch action {
	case OverrideActionAdd:
		return s.Add(key)
	case OverrideActionRemove:
		return s.Remove(key)
	default:
		return action.Validate()
	}
}

// Len returns the number of keys in the set.
func (s *OverrideSet[K]) Len() int {
	return len(s.entries)
}

// Capacity returns the maximum number of keys the set can hold.
func (s *OverrideSet[K]) Capacity() uint8 {
	return s.capacity
}

// Entries returns a copy of the keys in unspecified order.
func (s *OverrideSet[K]) Entries() []K {
	entries := make([]K, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Clone returns a deep copy of the set.
func (s *OverrideSet[K]) Clone() OverrideSet[K] {
	entries := make([]K, len(s.entries), s.capacity)
	copy(entries, s.entries)
	return OverrideSet[K]{
		entries:  entries,
		capacity: s.capacity,
	}
}

// Validate checks the capacity and uniqueness invariants. Used on decoded state.
func (s *OverrideSet[K]) Validate() error {
	if len(s.entries) > int(s.capacity) {
		return errorsmod.Wrapf(ErrOverrideListFull, "%d entries exceed capacity %d", len(s.entries), s.capacity)
	}

	for i, key := range s.entries {
		if collections.Contains(key, s.entries[i+1:]) {
			return errorsmod.Wrapf(ErrAlreadyInOverrideList, "duplicate entry %v", key)
		}
	}

	return nil
}

type overrideSetWire[K comparable] struct {
	Entries  []K   `cbor:"1,keyasint"`
	Capacity uint8 `cbor:"2,keyasint"`
}

// MarshalCBOR implements cbor.Marshaler.
func (s OverrideSet[K]) MarshalCBOR() ([]byte, error) {
	entries := s.entries
	if entries == nil {
		entries = []K{}
	}
	return Marshal(overrideSetWire[K]{Entries: entries, Capacity: s.capacity})
}

// UnmarshalCBOR implements cbor.Unmarshaler. Decoded sets must satisfy Validate.
func (s *OverrideSet[K]) UnmarshalCBOR(data []byte) error {
	var wire overrideSetWire[K]
	if err := Unmarshal(data, &wire); err != nil {
		return err
	}

	decoded := OverrideSet[K]{
		entries:  wire.Entries,
		capacity: wire.Capacity,
	}
	if decoded.entries == nil {
		decoded.entries = make([]K, 0, decoded.capacity)
	}
	if err := decoded.Validate(); err != nil {
		return err
	}

	*s = decoded
	return nil
}

type overrideSetYAML[K comparable] struct {
	Entries  []K   `yaml:"entries"`
	Capacity uint8 `yaml:"capacity"`
}

// MarshalYAML implements yaml.Marshaler.
func (s OverrideSet[K]) MarshalYAML() (any, error) {
	return overrideSetYAML[K]{Entries: s.Entries(), Capacity: s.capacity}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Decoded sets must satisfy Validate.
func (s *OverrideSet[K]) UnmarshalYAML(value *yaml.Node) error {
	var wire overrideSetYAML[K]
	if err := value.Decode(&wire); err != nil {
		return err
	}

	decoded := OverrideSet[K]{
		entries:  append(make([]K, 0, wire.Capacity), wire.Entries...),
		capacity: wire.Capacity,
	}
	if err := decoded.Validate(); err != nil {
		return err
	}

	*s = decoded
	return nil
}
