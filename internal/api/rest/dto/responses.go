package dto

import (
	"time"

	"github.com/mintproof/mint-registry/internal/domain"
	"github.com/mintproof/mint-registry/internal/store"
	"github.com/mintproof/mint-registry/internal/store/schema"
)

// MintView is the reader-facing shape of a mint record: the stored fields
// plus the values derived from them at read time. Write-only analytics
// fields never appear here.
type MintView struct {
	OwnerAddress    string    `json:"owner_address"`
	ContentID       string    `json:"content_id"`
	MetadataLocator string    `json:"metadata_locator"`
	TokenID         string    `json:"token_id"`
	ContractAddress string    `json:"contract_address"`
	TransactionHash string    `json:"transaction_hash"`
	EventName       string    `json:"event_name"`
	MintedAt        time.Time `json:"minted_at"`
	NetworkChainID  int64     `json:"network_chain_id"`
	ImageURL        string    `json:"image_url,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Derived fields, computed from stored fields and never persisted
	GatewayURL    string `json:"gateway_url"`
	ExplorerURL   string `json:"explorer_url"`
	DaysSinceMint int    `json:"days_since_mint"`
}

// MapMintToView enriches a stored record with its derived fields.
// now is passed in so the day computation stays deterministic under test.
func MapMintToView(record *schema.MintRecord, now time.Time) MintView {
	return MintView{
		OwnerAddress:    record.OwnerAddress,
		ContentID:       record.ContentID,
		MetadataLocator: record.MetadataLocator,
		TokenID:         record.TokenID,
		ContractAddress: record.ContractAddress,
		TransactionHash: record.TransactionHash,
		EventName:       record.EventName,
		MintedAt:        record.MintedAt,
		NetworkChainID:  record.NetworkChainID,
		ImageURL:        record.ImageURL,
		Status:          string(record.Status),
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
		GatewayURL:      domain.GatewayURL(record.ContentID),
		ExplorerURL:     domain.ExplorerTxURL(domain.ChainID(record.NetworkChainID), record.TransactionHash),
		DaysSinceMint:   domain.DaysSinceMint(record.MintedAt, now),
	}
}

// SaveMintMeta carries the caller's updated confirmed-mint tally
type SaveMintMeta struct {
	TotalMints      int64 `json:"total_mints"`
	IsFirstMint     bool  `json:"is_first_mint"`
	AlreadyRecorded bool  `json:"already_recorded"`
}

// SaveMintResponse represents the response for recording a mint
type SaveMintResponse struct {
	Success bool         `json:"success"`
	Data    MintView     `json:"data"`
	Meta    SaveMintMeta `json:"meta"`
}

// Pagination holds page metadata for list responses
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
	PageSize    int   `json:"page_size"`
}

// ListSummary holds the first and latest mint timestamps across the
// returned page (not the owner's whole history)
type ListSummary struct {
	FirstMintAt  *time.Time `json:"first_mint_at,omitempty"`
	LatestMintAt *time.Time `json:"latest_mint_at,omitempty"`
}

// ListMintsResponse represents the paginated list response for an owner
type ListMintsResponse struct {
	Success    bool        `json:"success"`
	Data       []MintView  `json:"data"`
	Pagination Pagination  `json:"pagination"`
	Summary    ListSummary `json:"summary"`
}

// EventTotals sums the per-event statistics into a grand total
type EventTotals struct {
	TotalMints       int64 `json:"total_mints"`
	TotalUniqueUsers int64 `json:"total_unique_users"`
}

// EventStatsResponse represents the aggregate statistics response
type EventStatsResponse struct {
	Success bool              `json:"success"`
	Data    []store.EventStat `json:"data"`
	Totals  EventTotals       `json:"totals"`
}

// HealthResponse reports liveness and store connectivity
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database bool   `json:"database"`
}
