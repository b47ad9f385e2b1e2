package types

import (
	"encoding/hex"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/mr-tron/base58"
)

// IdentifierLength is the byte length of principal and transfer identifiers.
const IdentifierLength = 32

// PrincipalID identifies an account eligible for a rate limit override.
// Its text form is base58.
type PrincipalID [IdentifierLength]byte

// TransferID identifies a single in-flight cross-network transfer (the message guid).
// Its text form is lowercase hex.
type TransferID [IdentifierLength]byte

// ParsePrincipalID decodes a base58 principal identifier.
func ParsePrincipalID(s string) (PrincipalID, error) {
	var p PrincipalID

	bz, err := base58.Decode(strings.TrimSpace(s))
	if err != nil {
		return p, errorsmod.Wrapf(ErrInvalidPrincipal, "%q: %s", s, err)
	}
	if len(bz) != IdentifierLength {
		return p, errorsmod.Wrapf(ErrInvalidPrincipal, "%q: expected %d bytes, got %d", s, IdentifierLength, len(bz))
	}

	copy(p[:], bz)
	return p, nil
}

func (p PrincipalID) String() string {
	return base58.Encode(p[:])
}

// Empty reports whether p is the all-zero identifier.
func (p PrincipalID) Empty() bool {
	return p == PrincipalID{}
}

func (p PrincipalID) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PrincipalID) UnmarshalText(text []byte) error {
	parsed, err := ParsePrincipalID(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseTransferID decodes a hex transfer identifier. A leading 0x is accepted.
func ParseTransferID(s string) (TransferID, error) {
	var t TransferID

	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	bz, err := hex.DecodeString(trimmed)
	if err != nil {
		return t, errorsmod.Wrapf(ErrInvalidTransferID, "%q: %s", s, err)
	}
	if len(bz) != IdentifierLength {
		return t, errorsmod.Wrapf(ErrInvalidTransferID, "%q: expected %d bytes, got %d", s, IdentifierLength, len(bz))
	}

	copy(t[:], bz)
	return t, nil
}

func (t TransferID) String() string {
	return hex.EncodeToString(t[:])
}

// Empty reports whether t is the all-zero identifier.
func (t TransferID) Empty() bool {
	return t == TransferID{}
}

func (t TransferID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TransferID) UnmarshalText(text []byte) error {
	parsed, err := ParseTransferID(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
