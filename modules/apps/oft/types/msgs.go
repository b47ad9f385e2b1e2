package types

import (
	errorsmod "cosmossdk.io/errors"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
)

const (
	TypeMsgInitOFTStore                      = "InitOFTStore"
	TypeMsgManageRateLimitOverride           = "ManageRateLimitOverride"
	TypeMsgManageRateLimitOverrideTransferID = "ManageRateLimitOverrideTransferID"
	TypeMsgSetPause                          = "SetPause"
)

// ----------------------------------------------
//               MsgInitOFTStore
// ----------------------------------------------

// MsgInitOFTStore creates the OFT store owned by Params.TokenEscrow.
type MsgInitOFTStore struct {
	Signer PrincipalID
	Params InitStoreParams
}

type MsgInitOFTStoreResponse struct {
	Events []Event
}

func NewMsgInitOFTStore(signer PrincipalID, params InitStoreParams) *MsgInitOFTStore {
	return &MsgInitOFTStore{Signer: signer, Params: params}
}

func (MsgInitOFTStore) Type() string {
	return TypeMsgInitOFTStore
}

func (msg *MsgInitOFTStore) ValidateBasic() error {
	if msg.Signer.Empty() {
		return errorsmod.Wrap(coreerrors.ErrInvalidAddress, "signer cannot be empty")
	}

	_, err := NewOFTStore(msg.Params)
	return err
}

// ----------------------------------------------
//          MsgManageRateLimitOverride
// ----------------------------------------------

// MsgManageRateLimitOverride applies Actions[i] to Addresses[i] on the principal
// override list of the store owned by Escrow.
type MsgManageRateLimitOverride struct {
	Admin     PrincipalID
	Escrow    PrincipalID
	Addresses []PrincipalID
	Actions   []OverrideAction
}

type MsgManageRateLimitOverrideResponse struct {
	Events []Event
}

func NewMsgManageRateLimitOverride(admin, escrow PrincipalID, actions []OverrideAction, addresses []PrincipalID) *MsgManageRateLimitOverride {
	return &MsgManageRateLimitOverride{
		Admin:     admin,
		Escrow:    escrow,
		Addresses: addresses,
		Actions:   actions,
	}
}

func (MsgManageRateLimitOverride) Type() string {
	return TypeMsgManageRateLimitOverride
}

func (msg *MsgManageRateLimitOverride) ValidateBasic() error {
	return validateOverrideBatch(msg.Admin, msg.Escrow, msg.Actions, len(msg.Addresses))
}

// ----------------------------------------------
//      MsgManageRateLimitOverrideTransferID
// ----------------------------------------------

// MsgManageRateLimitOverrideTransferID applies Actions[i] to TransferIDs[i] on
// the transfer id override list of the store owned by Escrow.
type MsgManageRateLimitOverrideTransferID struct {
	Admin       PrincipalID
	Escrow      PrincipalID
	TransferIDs []TransferID
	Actions     []OverrideAction
}

type MsgManageRateLimitOverrideTransferIDResponse struct {
	Events []Event
}

func NewMsgManageRateLimitOverrideTransferID(admin, escrow PrincipalID, actions []OverrideAction, transferIDs []TransferID) *MsgManageRateLimitOverrideTransferID {
	return &MsgManageRateLimitOverrideTransferID{
		Admin:       admin,
		Escrow:      escrow,
		TransferIDs: transferIDs,
		Actions:     actions,
	}
}

func (MsgManageRateLimitOverrideTransferID) Type() string {
	return TypeMsgManageRateLimitOverrideTransferID
}

func (msg *MsgManageRateLimitOverrideTransferID) ValidateBasic() error {
	return validateOverrideBatch(msg.Admin, msg.Escrow, msg.Actions, len(msg.TransferIDs))
}

// ----------------------------------------------
//                 MsgSetPause
// ----------------------------------------------

type MsgSetPause struct {
	Signer PrincipalID
	Escrow PrincipalID
	Paused bool
}

type MsgSetPauseResponse struct {
	Events []Event
}

func NewMsgSetPause(signer, escrow PrincipalID, paused bool) *MsgSetPause {
	return &MsgSetPause{Signer: signer, Escrow: escrow, Paused: paused}
}

func (MsgSetPause) Type() string {
	return TypeMsgSetPause
}

func (msg *MsgSetPause) ValidateBasic() error {
	if msg.Signer.Empty() {
		return errorsmod.Wrap(coreerrors.ErrInvalidAddress, "signer cannot be empty")
	}
	if msg.Escrow.Empty() {
		return errorsmod.Wrap(coreerrors.ErrInvalidAddress, "escrow cannot be empty")
	}
	return nil
}

func validateOverrideBatch(admin, escrow PrincipalID, actions []OverrideAction, numKeys int) error {
	if admin.Empty() {
		return errorsmod.Wrap(coreerrors.ErrInvalidAddress, "admin cannot be empty")
	}
	if escrow.Empty() {
		return errorsmod.Wrap(coreerrors.ErrInvalidAddress, "escrow cannot be empty")
	}
	if len(actions) != numKeys {
		return errorsmod.Wrapf(ErrOverrideParamsLengthMismatch, "%d actions, %d keys", len(actions), numKeys)
	}
	for _, action := range actions {
		if err := action.Validate(); err != nil {
			return err
		}
	}
	return nil
}
