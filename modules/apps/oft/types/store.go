package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
)

// OFTType distinguishes a token minted and burned by the OFT program (Native)
// from an existing token held in escrow (Adapter).
type OFTType uint8

const (
	OFTTypeNative OFTType = iota
	OFTTypeAdapter
)

// ParseOFTType parses "native" or "adapter", case insensitive.
func ParseOFTType(s string) (OFTType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native":
		return OFTTypeNative, nil
	case "adapter":
		return OFTTypeAdapter, nil
	default:
		return 0, errorsmod.Wrapf(ErrInvalidOFTType, "%q", s)
	}
}

func (t OFTType) String() string {
	switch t {
	case OFTTypeNative:
		return "native"
	case OFTTypeAdapter:
		return "adapter"
	default:
		return "unknown"
	}
}

func (t OFTType) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

func (t *OFTType) UnmarshalText(text []byte) error {
	parsed, err := ParseOFTType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t OFTType) Validate() error {
	if t != OFTTypeNative && t != OFTTypeAdapter {
		return errorsmod.Wrapf(ErrInvalidOFTType, "tag %d", uint8(t))
	}
	return nil
}

// InitStoreParams are the creation-time parameters of an OFT store.
type InitStoreParams struct {
	OFTType         OFTType
	LD2SDRate       uint64
	TokenMint       PrincipalID
	TokenEscrow     PrincipalID
	EndpointProgram PrincipalID
	Admin           PrincipalID
	DefaultFeeBps   uint16
	Pauser          *PrincipalID
	Unpauser        *PrincipalID

	MaxRateLimitOverrides           uint8
	MaxRateLimitOverrideTransferIDs uint8
}

// OFTStore is the record owning the override registry and the amount
// conversion rate of one token. The rate and the list capacities are fixed at
// creation. Exclusive access to a record for the duration of a request is
// guaranteed by the caller; OFTStore does no locking.
type OFTStore struct {
	OFTType         OFTType          `cbor:"1,keyasint" yaml:"oft_type"`
	LD2SDRate       uint64           `cbor:"2,keyasint" yaml:"ld2sd_rate"`
	TokenMint       PrincipalID      `cbor:"3,keyasint" yaml:"token_mint"`
	TokenEscrow     PrincipalID      `cbor:"4,keyasint" yaml:"token_escrow"`
	EndpointProgram PrincipalID      `cbor:"5,keyasint" yaml:"endpoint_program"`
	TVLLD           uint64           `cbor:"6,keyasint" yaml:"tvl_ld"`
	Admin           PrincipalID      `cbor:"7,keyasint" yaml:"admin"`
	DefaultFeeBps   uint16           `cbor:"8,keyasint" yaml:"default_fee_bps"`
	Paused          bool             `cbor:"9,keyasint" yaml:"paused"`
	Pauser          *PrincipalID     `cbor:"10,keyasint,omitempty" yaml:"pauser,omitempty"`
	Unpauser        *PrincipalID     `cbor:"11,keyasint,omitempty" yaml:"unpauser,omitempty"`
	Registry        OverrideRegistry `cbor:"12,keyasint" yaml:"registry"`
}

// TransferAmounts is the outcome of a debit view.
type TransferAmounts struct {
	AmountSentLD     uint64
	AmountReceivedLD uint64
	FeeLD            uint64
}

// NewOFTStore validates params and returns a store with empty override lists.
func NewOFTStore(params InitStoreParams) (*OFTStore, error) {
	if _, err := NewAmountConverter(params.LD2SDRate); err != nil {
		return nil, err
	}
	if params.MaxRateLimitOverrides == 0 || params.MaxRateLimitOverrideTransferIDs == 0 {
		return nil, errorsmod.Wrapf(ErrInvalidCapacity, "principal capacity %d, transfer id capacity %d",
			params.MaxRateLimitOverrides, params.MaxRateLimitOverrideTransferIDs)
	}

	store := &OFTStore{
		OFTType:         params.OFTType,
		LD2SDRate:       params.LD2SDRate,
		TokenMint:       params.TokenMint,
		TokenEscrow:     params.TokenEscrow,
		EndpointProgram: params.EndpointProgram,
		Admin:           params.Admin,
		DefaultFeeBps:   params.DefaultFeeBps,
		Pauser:          params.Pauser,
		Unpauser:        params.Unpauser,
		Registry:        NewOverrideRegistry(params.MaxRateLimitOverrides, params.MaxRateLimitOverrideTransferIDs),
	}

	if err := store.Validate(); err != nil {
		return nil, err
	}
	return store, nil
}

// Validate checks every invariant of the record.
func (s *OFTStore) Validate() error {
	if err := s.OFTType.Validate(); err != nil {
		return err
	}
	if s.LD2SDRate == 0 {
		return ErrInvalidConversionRate
	}
	if s.Admin.Empty() {
		return errorsmod.Wrap(coreerrors.ErrInvalidAddress, "admin cannot be empty")
	}
	if s.TokenEscrow.Empty() {
		return errorsmod.Wrap(coreerrors.ErrInvalidAddress, "token escrow cannot be empty")
	}
	if s.DefaultFeeBps > MaxFeeBps {
		return errorsmod.Wrapf(ErrInvalidFeeBps, "%d exceeds %d", s.DefaultFeeBps, MaxFeeBps)
	}
	if s.OFTType == OFTTypeNative && s.TVLLD != 0 {
		return errorsmod.Wrapf(coreerrors.ErrLogic, "native oft store has tvl %d", s.TVLLD)
	}
	if s.Registry.Principals.Capacity() == 0 || s.Registry.TransferIDs.Capacity() == 0 {
		return errorsmod.Wrapf(ErrInvalidCapacity, "principal capacity %d, transfer id capacity %d",
			s.Registry.Principals.Capacity(), s.Registry.TransferIDs.Capacity())
	}
	return s.Registry.Validate()
}

// Converter returns the amount converter for the store's fixed rate.
func (s *OFTStore) Converter() AmountConverter {
	return AmountConverter{rate: s.LD2SDRate}
}

// Authorize fails with ErrUnauthorized unless caller is the store admin.
func (s *OFTStore) Authorize(caller PrincipalID) error {
	if caller != s.Admin {
		return errorsmod.Wrapf(coreerrors.ErrUnauthorized, "expected admin %s, got %s", s.Admin, caller)
	}
	return nil
}

// ManagePrincipalOverrides authorizes caller and applies a principal override batch.
func (s *OFTStore) ManagePrincipalOverrides(caller PrincipalID, actions []OverrideAction, addresses []PrincipalID) ([]Event, error) {
	if err := s.Authorize(caller); err != nil {
		return nil, err
	}
	return s.Registry.ApplyPrincipalBatch(actions, addresses)
}

// ManageTransferIDOverrides authorizes caller and applies a transfer id override batch.
func (s *OFTStore) ManageTransferIDOverrides(caller PrincipalID, actions []OverrideAction, transferIDs []TransferID) ([]Event, error) {
	if err := s.Authorize(caller); err != nil {
		return nil, err
	}
	return s.Registry.ApplyTransferIDBatch(actions, transferIDs)
}

// SetPaused pauses (caller must be the pauser) or unpauses (caller must be the
// unpauser) the store.
func (s *OFTStore) SetPaused(caller PrincipalID, paused bool) (Event, error) {
	role, name := s.Unpauser, "unpauser"
	if paused {
		role, name = s.Pauser, "pauser"
	}
	if role == nil || *role != caller {
		return nil, errorsmod.Wrapf(coreerrors.ErrUnauthorized, "%s is not the %s", caller, name)
	}
	if s.Paused == paused {
		return nil, errorsmod.Wrapf(ErrInvalidPauseState, "paused=%t", paused)
	}

	s.Paused = paused
	return EventPauseUpdated{Paused: paused}, nil
}

// CheckRateLimitOverride reports whether a transfer bypasses the rate limiter,
// returning the trigger event when it does. A sender override takes precedence
// over a transfer id override; at most one event is returned.
func (s *OFTStore) CheckRateLimitOverride(sender PrincipalID, transferID TransferID, amountLD uint64) (bool, Event) {
	switch {
	case s.Registry.IsPrincipalOverridden(sender):
		return true, EventRateLimitOverrideTriggered{Address: sender, AmountLD: amountLD}
	case s.Registry.IsTransferIDOverridden(transferID):
		return true, EventRateLimitOverrideTransferIDTriggered{TransferID: transferID, AmountLD: amountLD}
	default:
		return false, nil
	}
}

// DebitView computes the amounts of an outbound transfer of amountLD. Dust is
// removed before and after the fee so that no dust ever leaves the sender.
func (s *OFTStore) DebitView(amountLD, minAmountLD uint64) (TransferAmounts, error) {
	if s.Paused {
		return TransferAmounts{}, ErrPaused
	}

	converter := s.Converter()
	sent := converter.RemoveDust(amountLD)
	fee := sdkmath.NewIntFromUint64(sent).
		MulRaw(int64(s.DefaultFeeBps)).
		QuoRaw(int64(MaxFeeBps)).
		Uint64()
	received := converter.RemoveDust(sent - fee)

	if received < minAmountLD {
		return TransferAmounts{}, errorsmod.Wrapf(ErrSlippageExceeded, "received %d, minimum %d", received, minAmountLD)
	}

	return TransferAmounts{
		AmountSentLD:     sent,
		AmountReceivedLD: received,
		FeeLD:            sent - received,
	}, nil
}

// CreditView converts an inbound shared decimal amount to local decimals.
func (s *OFTStore) CreditView(amountSD uint64) (uint64, error) {
	if s.Paused {
		return 0, ErrPaused
	}
	return s.Converter().ToLocal(amountSD)
}
