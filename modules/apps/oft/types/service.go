package types

import "context"

// MsgServer is the server API for OFT policy messages.
type MsgServer interface {
	InitOFTStore(context.Context, *MsgInitOFTStore) (*MsgInitOFTStoreResponse, error)
	ManageRateLimitOverride(context.Context, *MsgManageRateLimitOverride) (*MsgManageRateLimitOverrideResponse, error)
	ManageRateLimitOverrideTransferID(context.Context, *MsgManageRateLimitOverrideTransferID) (*MsgManageRateLimitOverrideTransferIDResponse, error)
	SetPause(context.Context, *MsgSetPause) (*MsgSetPauseResponse, error)
}

// QueryServer is the server API for OFT policy queries.
type QueryServer interface {
	OFTStore(context.Context, *QueryOFTStoreRequest) (*QueryOFTStoreResponse, error)
	AllOFTStores(context.Context, *QueryAllOFTStoresRequest) (*QueryAllOFTStoresResponse, error)
	RateLimitOverrides(context.Context, *QueryRateLimitOverridesRequest) (*QueryRateLimitOverridesResponse, error)
	IsRateLimitOverride(context.Context, *QueryIsRateLimitOverrideRequest) (*QueryIsRateLimitOverrideResponse, error)
	ConvertAmount(context.Context, *QueryConvertAmountRequest) (*QueryConvertAmountResponse, error)
	DebitView(context.Context, *QueryDebitViewRequest) (*QueryDebitViewResponse, error)
	CreditView(context.Context, *QueryCreditViewRequest) (*QueryCreditViewResponse, error)
}
