package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mintproof/mint-registry/internal/api/rest/dto"
	"github.com/mintproof/mint-registry/internal/domain"
	"github.com/mintproof/mint-registry/internal/store"
	"github.com/mintproof/mint-registry/internal/store/schema"
)

// ServiceName identifies this API in health responses
const ServiceName = "mint-registry-api"

// Executor is the interface for the API business logic between the REST
// handlers and the store
type Executor interface {
	// SaveMint validates a mint payload and records it with idempotent-write
	// semantics: a duplicate transaction hash returns the existing record
	// shaped as a success instead of an error.
	SaveMint(ctx context.Context, req *dto.SaveMintRequest, userAgent string, callerIP string) (*dto.SaveMintResponse, error)

	// ListMintsByOwner retrieves one page of an owner's confirmed mints,
	// newest first, enriched with derived fields and pagination metadata.
	// The owner address must already be format-checked by the caller.
	ListMintsByOwner(ctx context.Context, ownerAddress string, page int, pageSize int) (*dto.ListMintsResponse, error)

	// GetEventStatistics aggregates confirmed mints per event plus grand totals
	GetEventStatistics(ctx context.Context) (*dto.EventStatsResponse, error)

	// Health reports store connectivity
	Health(ctx context.Context) *dto.HealthResponse
}

type executor struct {
	store store.Store
	now   func() time.Time
}

// NewExecutor creates a new API executor backed by the given store
func NewExecutor(s store.Store) Executor {
	return &executor{store: s, now: time.Now}
}

func (e *executor) SaveMint(ctx context.Context, req *dto.SaveMintRequest, userAgent string, callerIP string) (*dto.SaveMintResponse, error) {
	if merr := req.MissingFields(); merr != nil {
		return nil, merr
	}
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	now := e.now()
	record := req.ToRecord(now, userAgent, callerIP)

	stored, alreadyRecorded, err := e.insertOrGetExisting(ctx, record)
	if err != nil {
		return nil, err
	}

	count, err := e.store.CountConfirmedByOwner(ctx, stored.OwnerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to count mints for owner: %w", err)
	}

	return &dto.SaveMintResponse{
		Success: true,
		Data:    dto.MapMintToView(stored, now),
		Meta: dto.SaveMintMeta{
			TotalMints:      count,
			IsFirstMint:     count == 1,
			AlreadyRecorded: alreadyRecorded,
		},
	}, nil
}

// insertOrGetExisting is the explicit idempotent-write policy: an insert that
// loses the uniqueness race fetches and returns the pre-existing record.
func (e *executor) insertOrGetExisting(ctx context.Context, record *schema.MintRecord) (*schema.MintRecord, bool, error) {
	stored, err := e.store.InsertMint(ctx, record)
	if err == nil {
		return stored, false, nil
	}

	var dup *domain.DuplicateKeyError
	if !errors.As(err, &dup) {
		return nil, false, err
	}

	existing, err := e.store.GetMintByTransactionHash(ctx, record.TransactionHash)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		// The conflicting record vanished between insert and lookup.
		return nil, false, dup
	}

	return existing, true, nil
}

func (e *executor) ListMintsByOwner(ctx context.Context, ownerAddress string, page int, pageSize int) (*dto.ListMintsResponse, error) {
	records, total, err := e.store.ListConfirmedByOwner(ctx, ownerAddress, page, pageSize)
	if err != nil {
		return nil, err
	}

	now := e.now()
	views := make([]dto.MintView, len(records))
	for i, record := range records {
		views[i] = dto.MapMintToView(record, now)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	var summary dto.ListSummary
	for _, record := range records {
		mintedAt := record.MintedAt
		if summary.FirstMintAt == nil || mintedAt.Before(*summary.FirstMintAt) {
			first := mintedAt
			summary.FirstMintAt = &first
		}
		if summary.LatestMintAt == nil || mintedAt.After(*summary.LatestMintAt) {
			latest := mintedAt
			summary.LatestMintAt = &latest
		}
	}

	return &dto.ListMintsResponse{
		Success: true,
		Data:    views,
		Pagination: dto.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  total,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
			PageSize:    pageSize,
		},
		Summary: summary,
	}, nil
}

func (e *executor) GetEventStatistics(ctx context.Context) (*dto.EventStatsResponse, error) {
	stats, err := e.store.EventStatistics(ctx)
	if err != nil {
		return nil, err
	}

	var totals dto.EventTotals
	for _, stat := range stats {
		totals.TotalMints += stat.TotalMints
		totals.TotalUniqueUsers += stat.UniqueOwnerCount
	}

	if stats == nil {
		stats = []store.EventStat{}
	}

	return &dto.EventStatsResponse{
		Success: true,
		Data:    stats,
		Totals:  totals,
	}, nil
}

func (e *executor) Health(ctx context.Context) *dto.HealthResponse {
	err := e.store.Ping(ctx)
	status := "ok"
	if err != nil {
		status = "degraded"
	}

	return &dto.HealthResponse{
		Status:   status,
		Service:  ServiceName,
		Database: err == nil,
	}
}
