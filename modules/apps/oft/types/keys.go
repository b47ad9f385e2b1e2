package types

const (
	// ModuleName defines the OFT policy module name
	ModuleName = "oft"

	// StoreKey is the store key string for the OFT policy module
	StoreKey = ModuleName

	// DefaultMaxRateLimitOverrides is the principal override list capacity used when none is given.
	DefaultMaxRateLimitOverrides uint8 = 16

	// DefaultMaxRateLimitOverrideTransferIDs is the transfer-id override list capacity used when none is given.
	DefaultMaxRateLimitOverrideTransferIDs uint8 = 8

	// MaxFeeBps is the denominator of fee basis points.
	MaxFeeBps uint16 = 10_000
)

func bytes(p string) []byte {
	return []byte(p)
}

var OFTStoreKeyPrefix = bytes("oft-store")

// OFTStoreKey returns the store key of the OFT store record owned by the given escrow.
// Escrow identifiers are fixed length so keys never collide across prefixes.
func OFTStoreKey(escrow PrincipalID) []byte {
	return escrow[:]
}
