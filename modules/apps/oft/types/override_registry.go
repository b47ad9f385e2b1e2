package types

import (
	errorsmod "cosmossdk.io/errors"
)

// OverrideRegistry holds the principal-keyed and transfer-id-keyed rate limit
// override lists of one OFT store.
type OverrideRegistry struct {
	Principals  OverrideSet[PrincipalID] `cbor:"1,keyasint" yaml:"principals"`
	TransferIDs OverrideSet[TransferID]  `cbor:"2,keyasint" yaml:"transfer_ids"`
}

// NewOverrideRegistry returns a registry with two empty lists of the given capacities.
func NewOverrideRegistry(maxOverrides, maxOverrideTransferIDs uint8) OverrideRegistry {
	return OverrideRegistry{
		Principals:  NewOverrideSet[PrincipalID](maxOverrides),
		TransferIDs: NewOverrideSet[TransferID](maxOverrideTransferIDs),
	}
}

// IsPrincipalOverridden reports whether transfers from p bypass the rate limiter.
func (r *OverrideRegistry) IsPrincipalOverridden(p PrincipalID) bool {
	return r.Principals.Contains(p)
}

// IsTransferIDOverridden reports whether the transfer t bypasses the rate limiter.
func (r *OverrideRegistry) IsTransferIDOverridden(t TransferID) bool {
	return r.TransferIDs.Contains(t)
}

// ApplyPrincipalBatch applies actions[i] to addresses[i] in order. The batch is
// all-or-nothing: on the first failure the principal list is left as it was.
// One event is returned per applied mutation, in request order.
func (r *OverrideRegistry) ApplyPrincipalBatch(actions []OverrideAction, addresses []PrincipalID) ([]Event, error) {
	return applyBatch(&r.Principals, actions, addresses, func(action OverrideAction, address PrincipalID) Event {
		return EventRateLimitOverrideUpdated{Address: address, Action: action}
	})
}

// ApplyTransferIDBatch is the transfer-id keyed twin of ApplyPrincipalBatch.
func (r *OverrideRegistry) ApplyTransferIDBatch(actions []OverrideAction, transferIDs []TransferID) ([]Event, error) {
	return applyBatch(&r.TransferIDs, actions, transferIDs, func(action OverrideAction, transferID TransferID) Event {
		return EventRateLimitOverrideTransferIDUpdated{TransferID: transferID, Action: action}
	})
}

// Validate checks both lists.
func (r *OverrideRegistry) Validate() error {
	if err := r.Principals.Validate(); err != nil {
		return errorsmod.Wrap(err, "principal overrides")
	}
	if err := r.TransferIDs.Validate(); err != nil {
		return errorsmod.Wrap(err, "transfer id overrides")
	}
	return nil
}

// applyBatch stages every mutation on a clone of set and commits the clone only
// once all of them succeeded.
func applyBatch[K comparable](set *OverrideSet[K], actions []OverrideAction, keys []K, newEvent func(OverrideAction, K) Event) ([]Event, error) {
	if len(actions) != len(keys) {
		return nil, errorsmod.Wrapf(ErrOverrideParamsLengthMismatch, "%d actions, %d keys", len(actions), len(keys))
	}

	staged := set.Clone()
	events := make([]Event, 0, len(actions))
	for i, action := range actions {
		if err := staged.Apply(action, keys[i]); err != nil {
			return nil, errorsmod.Wrapf(err, "override %d of %d", i+1, len(actions))
		}
		events = append(events, newEvent(action, keys[i]))
	}

	*set = staged
	return events, nil
}
