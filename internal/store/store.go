package store

import (
	"context"
	"time"

	"github.com/mintproof/mint-registry/internal/store/schema"
)

// EventStat holds the aggregate statistics for a single mint event,
// computed over confirmed records only
type EventStat struct {
	EventName        string    `json:"event_name"`
	TotalMints       int64     `json:"total_mints"`
	UniqueOwnerCount int64     `json:"unique_owner_count"`
	FirstMint        time.Time `json:"first_mint"`
	LastMint         time.Time `json:"last_mint"`
}

// Store defines the interface for mint record persistence
type Store interface {
	// InsertMint durably stores a mint record. The write is atomic with respect
	// to the transaction-hash uniqueness constraint: concurrent inserts of the
	// same hash yield exactly one success and one domain.DuplicateKeyError.
	InsertMint(ctx context.Context, record *schema.MintRecord) (*schema.MintRecord, error)
	// GetMintByTransactionHash retrieves a mint record by its transaction hash.
	// Returns nil, nil when no record exists.
	GetMintByTransactionHash(ctx context.Context, txHash string) (*schema.MintRecord, error)
	// CountConfirmedByOwner counts the confirmed mint records of an owner
	CountConfirmedByOwner(ctx context.Context, ownerAddress string) (int64, error)
	// ListConfirmedByOwner retrieves one page of an owner's confirmed mint
	// records ordered by created_at descending, along with the total count.
	// Write-only analytics columns are excluded from the result.
	ListConfirmedByOwner(ctx context.Context, ownerAddress string, page int, pageSize int) ([]*schema.MintRecord, int64, error)
	// EventStatistics aggregates confirmed mint records grouped by event name
	EventStatistics(ctx context.Context) ([]EventStat, error)
	// UpdateMintStatus transitions the status of the record identified by txHash
	UpdateMintStatus(ctx context.Context, txHash string, status schema.MintStatus) (*schema.MintRecord, error)
	// Ping checks store connectivity
	Ping(ctx context.Context) error
}
