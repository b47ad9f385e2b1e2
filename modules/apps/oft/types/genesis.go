package types

import (
	errorsmod "cosmossdk.io/errors"
)

// GenesisState holds every OFT store record.
type GenesisState struct {
	Stores []OFTStore `cbor:"1,keyasint" yaml:"stores"`
}

// DefaultGenesis returns a genesis state without any store.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Stores: []OFTStore{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[PrincipalID]struct{}, len(gs.Stores))
	for i := range gs.Stores {
		store := &gs.Stores[i]

		if _, found := seen[store.TokenEscrow]; found {
			return errorsmod.Wrapf(ErrOFTStoreAlreadyExists, "duplicate escrow %s", store.TokenEscrow)
		}
		seen[store.TokenEscrow] = struct{}{}

		if err := store.Validate(); err != nil {
			return errorsmod.Wrapf(err, "oft store %s", store.TokenEscrow)
		}
	}

	return nil
}
