package types

// Canonical token tags as the bridge API understands them.
// LTO is the native chain token, the others are wrapped representations.
type TokenType string

const TOKEN_LTO TokenType = "LTO"         // native mainnet token
const TOKEN_LTO20 TokenType = "LTO20"     // ERC20-wrapped token on Ethereum
const TOKEN_BINANCE TokenType = "BINANCE" // BEP20-wrapped token on BSC

// Older wallet vocabulary describing the same token kinds under
// different names. Only ever seen at the edges, never on the wire.
type LegacyTokenType string

const LEGACY_MAINNET LegacyTokenType = "mainnet"
const LEGACY_ERC20 LegacyTokenType = "erc20"
const LEGACY_BEP20 LegacyTokenType = "bep20"

// NormalizeTokenType maps a tag from either vocabulary onto the canonical one.
// The mapping is total: anything that is not a known legacy tag is assumed to
// be canonical already and passes through unchanged, so variants this client
// does not know about still reach the service as-is.
func NormalizeTokenType(tag string) TokenType {
	switch LegacyTokenType(tag) {
	case LEGACY_MAINNET:
		return TOKEN_LTO
	case LEGACY_ERC20:
		return TOKEN_LTO20
	case LEGACY_BEP20:
		return TOKEN_BINANCE
	}
	return TokenType(tag)
}

// The two address cache namespaces. They are never cross-looked-up.
type Namespace string

const NAMESPACE_DEPOSIT Namespace = "deposit"
const NAMESPACE_WITHDRAW Namespace = "withdraw"

// DepositKey builds the deposit cache key. Colon-separated; the format must
// stay stable because previously persisted stores depend on it. Token tags
// are expected to be canonical already.
func DepositKey(address string, from, to TokenType) string {
	return address + ":" + string(from) + ":" + string(to)
}

// WithdrawKey builds the withdraw cache key. Plain concatenation, same
// stability requirement as DepositKey.
func WithdrawKey(address string, to TokenType) string {
	return address + string(to)
}
