package schema

import (
	"time"
)

// MintStatus represents the lifecycle state of a mint record
type MintStatus string

const (
	// MintStatusPending marks a mint claim that has not been confirmed yet
	MintStatusPending MintStatus = "pending"
	// MintStatusConfirmed marks a confirmed mint; only confirmed records are served to readers
	MintStatusConfirmed MintStatus = "confirmed"
	// MintStatusFailed marks a mint claim that failed on chain
	MintStatusFailed MintStatus = "failed"
)

// Valid checks if the status is part of the allowed enumeration
func (s MintStatus) Valid() bool {
	return s == MintStatusPending || s == MintStatusConfirmed || s == MintStatusFailed
}

// MintRecord represents the mint_records table - one normalized record per claimed NFT mint.
// TransactionHash is the identity key: the unique index makes concurrent writes of the
// same hash resolve to exactly one stored row.
type MintRecord struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnerAddress is the minting wallet, stored lowercased (0x + 40 hex chars)
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;index:idx_mint_records_owner_status_created,priority:1"`
	// ContentID is the CIDv0 content identifier of the minted asset
	ContentID string `gorm:"column:content_id;not null;type:text"`
	// MetadataLocator is the ipfs:// URI of the token metadata
	MetadataLocator string `gorm:"column:metadata_locator;not null;type:text"`
	// TokenID is the token identifier within the contract (opaque, no format constraint)
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// ContractAddress is the minting contract, stored lowercased
	ContractAddress string `gorm:"column:contract_address;not null;type:text"`
	// TransactionHash is the globally unique mint transaction hash, stored lowercased
	TransactionHash string `gorm:"column:transaction_hash;not null;uniqueIndex:idx_mint_records_tx_hash;type:text"`
	// EventName is the mint event this record belongs to
	EventName string `gorm:"column:event_name;not null;type:text;index:idx_mint_records_event_created,priority:1"`
	// MintedAt is the caller-claimed mint timestamp
	MintedAt time.Time `gorm:"column:minted_at;not null"`
	// NetworkChainID identifies the blockchain network the mint happened on
	NetworkChainID int64 `gorm:"column:network_chain_id;not null;default:1;index:idx_mint_records_chain"`
	// ImageURL is the gateway resolution of ContentID, computed once at write time
	ImageURL string `gorm:"column:image_url;type:text"`
	// Status is the record lifecycle state; readers only ever see confirmed records
	Status MintStatus `gorm:"column:status;not null;default:confirmed;type:text;index:idx_mint_records_owner_status_created,priority:2"`
	// UserAgent is write-only analytics, never returned to readers
	UserAgent *string `gorm:"column:user_agent;type:text"`
	// CallerIP is write-only analytics, never returned to readers
	CallerIP *string `gorm:"column:caller_ip;type:text"`
	// CreatedAt is assigned by the store on insert
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();index:idx_mint_records_owner_status_created,priority:3,sort:desc;index:idx_mint_records_event_created,priority:2"`
	// UpdatedAt is assigned by the store on every write
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the MintRecord model
func (MintRecord) TableName() string {
	return "mint_records"
}
