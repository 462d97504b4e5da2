package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mintproof/mint-registry/internal/domain"
	"github.com/mintproof/mint-registry/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance.
// The *gorm.DB must be opened with TranslateError enabled so that unique
// violations surface as gorm.ErrDuplicatedKey.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// InsertMint durably stores a mint record.
// Addresses and the transaction hash are lowercased before the write so the
// uniqueness constraint compares the canonical form.
func (s *pgStore) InsertMint(ctx context.Context, record *schema.MintRecord) (*schema.MintRecord, error) {
	record.OwnerAddress = domain.NormalizeAddress(record.OwnerAddress)
	record.ContractAddress = domain.NormalizeAddress(record.ContractAddress)
	record.TransactionHash = domain.NormalizeHash(record.TransactionHash)

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &domain.DuplicateKeyError{Field: "transactionHash", Value: record.TransactionHash}
		}
		return nil, fmt.Errorf("failed to insert mint record: %w", err)
	}

	return record, nil
}

// GetMintByTransactionHash retrieves a mint record by its transaction hash
func (s *pgStore) GetMintByTransactionHash(ctx context.Context, txHash string) (*schema.MintRecord, error) {
	var record schema.MintRecord
	err := s.db.WithContext(ctx).
		Where("transaction_hash = ?", domain.NormalizeHash(txHash)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mint record: %w", err)
	}

	return &record, nil
}

// CountConfirmedByOwner counts the confirmed mint records of an owner
func (s *pgStore) CountConfirmedByOwner(ctx context.Context, ownerAddress string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.MintRecord{}).
		Where("owner_address = ? AND status = ?", domain.NormalizeAddress(ownerAddress), schema.MintStatusConfirmed).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count mint records: %w", err)
	}

	return count, nil
}

// ListConfirmedByOwner retrieves one page of an owner's confirmed mint records,
// most recent first, excluding the write-only analytics columns
func (s *pgStore) ListConfirmedByOwner(ctx context.Context, ownerAddress string, page int, pageSize int) ([]*schema.MintRecord, int64, error) {
	owner := domain.NormalizeAddress(ownerAddress)

	var total int64
	err := s.db.WithContext(ctx).
		Model(&schema.MintRecord{}).
		Where("owner_address = ? AND status = ?", owner, schema.MintStatusConfirmed).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count mint records: %w", err)
	}

	var records []*schema.MintRecord
	err = s.db.WithContext(ctx).
		Omit("user_agent", "caller_ip").
		Where("owner_address = ? AND status = ?", owner, schema.MintStatusConfirmed).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mint records: %w", err)
	}

	return records, total, nil
}

// EventStatistics aggregates confirmed mint records grouped by event name
func (s *pgStore) EventStatistics(ctx context.Context) ([]EventStat, error) {
	var stats []EventStat
	err := s.db.WithContext(ctx).
		Model(&schema.MintRecord{}).
		Select("event_name, COUNT(*) AS total_mints, COUNT(DISTINCT owner_address) AS unique_owner_count, MIN(minted_at) AS first_mint, MAX(minted_at) AS last_mint").
		Where("status = ?", schema.MintStatusConfirmed).
		Group("event_name").
		Order("total_mints DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate event statistics: %w", err)
	}

	return stats, nil
}

// UpdateMintStatus transitions the status of the record identified by txHash
func (s *pgStore) UpdateMintStatus(ctx context.Context, txHash string, status schema.MintStatus) (*schema.MintRecord, error) {
	hash := domain.NormalizeHash(txHash)

	result := s.db.WithContext(ctx).
		Model(&schema.MintRecord{}).
		Where("transaction_hash = ?", hash).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update mint status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrMintNotFound
	}

	return s.GetMintByTransactionHash(ctx, hash)
}

// Ping checks store connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
