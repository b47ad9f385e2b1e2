package keeper_test

import (
	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
	oftesting "github.com/oft-labs/oft-policy/testing"
)

func (s *KeeperTestSuite) TestMsgServer_InitOFTStore() {
	res, err := s.msgServer.InitOFTStore(s.ctx, types.NewMsgInitOFTStore(s.authority, s.params))
	s.Require().NoError(err)
	s.Require().Len(res.Events, 1)

	// Creating the same store again fails
	_, err = s.msgServer.InitOFTStore(s.ctx, types.NewMsgInitOFTStore(s.authority, s.params))
	s.Require().ErrorIs(err, types.ErrOFTStoreAlreadyExists)

	// Verify that signer == authority required
	_, err = s.msgServer.InitOFTStore(s.ctx, types.NewMsgInitOFTStore(s.admin, oftesting.NewInitStoreParams(s.admin, oftesting.GeneratePrincipal())))
	s.Require().ErrorIs(err, coreerrors.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestMsgServer_ManageRateLimitOverride() {
	s.initStore()
	addresses := oftesting.GeneratePrincipals(3)

	msg := types.NewMsgManageRateLimitOverride(s.admin, s.escrow, oftesting.Repeat(types.OverrideActionAdd, 3), addresses)
	res, err := s.msgServer.ManageRateLimitOverride(s.ctx, msg)
	s.Require().NoError(err)

	parsedAddresses, parsedActions := oftesting.ParseOverrideUpdates(res.Events)
	s.Require().Equal(addresses, parsedAddresses)
	s.Require().Equal(msg.Actions, parsedActions)

	// The message server does not run ValidateBasic, so an unauthorized caller
	// with a malformed batch reports unauthorized
	badMsg := types.NewMsgManageRateLimitOverride(oftesting.GeneratePrincipal(), s.escrow, oftesting.Repeat(types.OverrideActionRemove, 1), addresses)
	s.Require().ErrorIs(badMsg.ValidateBasic(), types.ErrOverrideParamsLengthMismatch)
	_, err = s.msgServer.ManageRateLimitOverride(s.ctx, badMsg)
	s.Require().ErrorIs(err, coreerrors.ErrUnauthorized)

	// Removing one address twice fails on the second removal and persists nothing
	msg = types.NewMsgManageRateLimitOverride(s.admin, s.escrow, oftesting.Repeat(types.OverrideActionRemove, 2), []types.PrincipalID{addresses[0], addresses[0]})
	_, err = s.msgServer.ManageRateLimitOverride(s.ctx, msg)
	s.Require().ErrorIs(err, types.ErrNotInOverrideList)

	store, _ := s.keeper.GetOFTStore(s.ctx, s.escrow)
	s.Require().Equal(addresses, store.Registry.Principals.Entries())
}

func (s *KeeperTestSuite) TestMsgServer_ManageRateLimitOverrideTransferID() {
	s.initStore()
	transferIDs := oftesting.GenerateTransferIDs(2)

	res, err := s.msgServer.ManageRateLimitOverrideTransferID(s.ctx, types.NewMsgManageRateLimitOverrideTransferID(s.admin, s.escrow, oftesting.Repeat(types.OverrideActionAdd, 2), transferIDs))
	s.Require().NoError(err)
	oftesting.AssertEvents(&s.Suite, []types.Event{
		types.EventRateLimitOverrideTransferIDUpdated{TransferID: transferIDs[0], Action: types.OverrideActionAdd},
		types.EventRateLimitOverrideTransferIDUpdated{TransferID: transferIDs[1], Action: types.OverrideActionAdd},
	}, res.Events)

	_, err = s.msgServer.ManageRateLimitOverrideTransferID(s.ctx, types.NewMsgManageRateLimitOverrideTransferID(s.admin, oftesting.GeneratePrincipal(), nil, nil))
	s.Require().ErrorIs(err, types.ErrOFTStoreNotFound)
}

func (s *KeeperTestSuite) TestMsgServer_SetPause() {
	s.initStore()

	res, err := s.msgServer.SetPause(s.ctx, types.NewMsgSetPause(*s.params.Pauser, s.escrow, true))
	s.Require().NoError(err)
	s.Require().Equal([]types.Event{types.EventPauseUpdated{Paused: true}}, res.Events)

	_, err = s.msgServer.SetPause(s.ctx, types.NewMsgSetPause(*s.params.Pauser, s.escrow, true))
	s.Require().ErrorIs(err, types.ErrInvalidPauseState)

	_, err = s.msgServer.SetPause(s.ctx, types.NewMsgSetPause(*s.params.Unpauser, s.escrow, false))
	s.Require().NoError(err)
}
