package types

type QueryOFTStoreRequest struct {
	Escrow string
}

type QueryOFTStoreResponse struct {
	Store OFTStore `yaml:"store"`
}

type QueryAllOFTStoresRequest struct{}

type QueryAllOFTStoresResponse struct {
	Stores []OFTStore `yaml:"stores"`
}

type QueryRateLimitOverridesRequest struct {
	Escrow string
}

type QueryRateLimitOverridesResponse struct {
	Addresses                       []PrincipalID `yaml:"addresses"`
	TransferIDs                     []TransferID  `yaml:"transfer_ids"`
	MaxRateLimitOverrides           uint8         `yaml:"max_rate_limit_overrides"`
	MaxRateLimitOverrideTransferIDs uint8         `yaml:"max_rate_limit_override_transfer_ids"`
}

// QueryIsRateLimitOverrideRequest asks about exactly one of Address or TransferID.
type QueryIsRateLimitOverrideRequest struct {
	Escrow     string
	Address    string
	TransferID string
}

type QueryIsRateLimitOverrideResponse struct {
	Overridden bool `yaml:"overridden"`
}

type QueryConvertAmountRequest struct {
	Escrow   string
	AmountLD uint64
}

type QueryConvertAmountResponse struct {
	AmountSD       uint64 `yaml:"amount_sd"`
	AmountLDNoDust uint64 `yaml:"amount_ld_no_dust"`
	DustLD         uint64 `yaml:"dust_ld"`
}

type QueryDebitViewRequest struct {
	Escrow      string
	AmountLD    uint64
	MinAmountLD uint64
}

type QueryDebitViewResponse struct {
	AmountSentLD     uint64 `yaml:"amount_sent_ld"`
	AmountReceivedLD uint64 `yaml:"amount_received_ld"`
	FeeLD            uint64 `yaml:"fee_ld"`
}

type QueryCreditViewRequest struct {
	Escrow   string
	AmountSD uint64
}

type QueryCreditViewResponse struct {
	AmountReceivedLD uint64 `yaml:"amount_received_ld"`
}
