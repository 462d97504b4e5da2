package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID is the numeric identifier of a supported blockchain network
type ChainID int64

const (
	ChainEthereumMainnet ChainID = 1
	ChainEthereumSepolia ChainID = 11155111
)

// DefaultChainID is the chain assumed when a mint payload omits one
const DefaultChainID = ChainEthereumMainnet

// IsValidChainID checks if a chain ID belongs to the known network set
func IsValidChainID(chainID ChainID) bool {
	return chainID == ChainEthereumMainnet || chainID == ChainEthereumSepolia
}

// EventName identifies the mint event type a record belongs to
type EventName string

const (
	EventNameMinted EventName = "minted"
)

// DefaultEventName is the event assumed when a mint payload omits one
const DefaultEventName = EventNameMinted

// Valid checks if the event name is part of the allowed enumeration
func (e EventName) Valid() bool {
	return e == EventNameMinted
}

var (
	txHashRegex    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	contentIDRegex = regexp.MustCompile(`^Qm[1-9A-HJ-NP-Za-km-z]{44}$`)
)

// IsEthereumAddress checks if a string is a 0x-prefixed 20-byte hex address
func IsEthereumAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// IsTransactionHash checks if a string is a valid 32-byte transaction hash
func IsTransactionHash(s string) bool {
	return txHashRegex.MatchString(s)
}

// IsContentID checks if a string is a valid CIDv0 content identifier
func IsContentID(s string) bool {
	return contentIDRegex.MatchString(s)
}

// IsMetadataLocator checks if a string is an ipfs:// URI wrapping a valid content ID
func IsMetadataLocator(s string) bool {
	cid, ok := strings.CutPrefix(s, IPFS_URI_SCHEME)
	return ok && IsContentID(cid)
}

// NormalizeAddress lowercases an address. Addresses and hashes are compared
// case-insensitively, so the lowercase form is the canonical stored form.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

// NormalizeHash lowercases a transaction hash
func NormalizeHash(hash string) string {
	return strings.ToLower(hash)
}

// GatewayURL resolves a content ID through the IPFS HTTP gateway
func GatewayURL(contentID string) string {
	return IPFS_GATEWAY_BASE + contentID
}

// IsGatewayURL checks if an image URL is the gateway resolution of the given content ID
func IsGatewayURL(imageURL string, contentID string) bool {
	return imageURL == GatewayURL(contentID)
}

// ExplorerTxURL returns the block-explorer URL for a transaction on the given chain.
// Unknown chains fall back to the mainnet explorer.
func ExplorerTxURL(chainID ChainID, txHash string) string {
	switch chainID {
	case ChainEthereumSepolia:
		return ETHERSCAN_SEPOLIA_TX_BASE + txHash
	default:
		return ETHERSCAN_MAINNET_TX_BASE + txHash
	}
}

// DaysSinceMint returns the whole days elapsed between mintedAt and now.
// Future timestamps clamp to zero.
func DaysSinceMint(mintedAt time.Time, now time.Time) int {
	elapsed := now.Sub(mintedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}

// String implements fmt.Stringer for ChainID
func (c ChainID) String() string {
	return fmt.Sprintf("%d", int64(c))
}
