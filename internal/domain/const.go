package domain

const (
	// Gateway constants
	IPFS_GATEWAY_BASE = "https://ipfs.io/ipfs/"
	IPFS_URI_SCHEME   = "ipfs://"

	// Block explorer constants
	ETHERSCAN_MAINNET_TX_BASE = "https://etherscan.io/tx/"
	ETHERSCAN_SEPOLIA_TX_BASE = "https://sepolia.etherscan.io/tx/"
)
