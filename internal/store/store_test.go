package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintproof/mint-registry/internal/domain"
	"github.com/mintproof/mint-registry/internal/store/schema"
)

const (
	testContentID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	testContract  = "0x7a3CdB2364f92369a602CAE81167d0679087e6a3"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestMint creates a confirmed mint record ready for insertion
func buildTestMint(owner, txHash string) *schema.MintRecord {
	return &schema.MintRecord{
		OwnerAddress:    owner,
		ContentID:       testContentID,
		MetadataLocator: "ipfs://" + testContentID,
		TokenID:         "1",
		ContractAddress: testContract,
		TransactionHash: txHash,
		EventName:       "minted",
		MintedAt:        time.Now().UTC().Truncate(time.Millisecond),
		NetworkChainID:  1,
		ImageURL:        domain.GatewayURL(testContentID),
		Status:          schema.MintStatusConfirmed,
	}
}

// testTxHash produces a distinct well-formed transaction hash per index
func testTxHash(n int) string {
	return fmt.Sprintf("0x%064x", n+1)
}

// =============================================================================
// Test: InsertMint / GetMintByTransactionHash
// =============================================================================

func testInsertAndGetMint(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("insert lowercases identity fields and roundtrips", func(t *testing.T) {
		owner := "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
		txHash := "0x6C3E006B0E4311C3A4E3E7C5F2C4C96A3D36BCFD5A0D3A3871FFE61CA2A71E4B"

		record := buildTestMint(owner, txHash)
		ua := "test-agent/1.0"
		ip := "203.0.113.9"
		record.UserAgent = &ua
		record.CallerIP = &ip

		stored, err := store.InsertMint(ctx, record)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotZero(t, stored.ID)
		assert.Equal(t, strings.ToLower(owner), stored.OwnerAddress)
		assert.Equal(t, strings.ToLower(testContract), stored.ContractAddress)
		assert.Equal(t, strings.ToLower(txHash), stored.TransactionHash)

		// Lookup normalizes the hash itself, so the original casing must hit
		fetched, err := store.GetMintByTransactionHash(ctx, txHash)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, stored.ID, fetched.ID)
		assert.Equal(t, strings.ToLower(owner), fetched.OwnerAddress)
		assert.Equal(t, "minted", fetched.EventName)
		assert.Equal(t, schema.MintStatusConfirmed, fetched.Status)
		assert.Equal(t, int64(1), fetched.NetworkChainID)
		require.NotNil(t, fetched.UserAgent)
		assert.Equal(t, ua, *fetched.UserAgent)
	})

	t.Run("unknown hash returns nil without error", func(t *testing.T) {
		fetched, err := store.GetMintByTransactionHash(ctx, testTxHash(9999))
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})
}

// =============================================================================
// Test: duplicate transaction hash
// =============================================================================

func testDuplicateTransactionHash(t *testing.T, store Store) {
	ctx := context.Background()

	owner := "0x396343362be2a4da1ce0c1c210945346fb82aa49"
	txHash := testTxHash(0)

	_, err := store.InsertMint(ctx, buildTestMint(owner, txHash))
	require.NoError(t, err)

	// The same hash in different casing must collide on the canonical form.
	// The unique violation aborts the surrounding test transaction, so this
	// stays the last statement of the test.
	dupRecord := buildTestMint("0x7a3cdb2364f92369a602cae81167d0679087e6a3", "0x"+strings.ToUpper(txHash[2:]))

	_, err = store.InsertMint(ctx, dupRecord)
	require.Error(t, err)

	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "transactionHash", dup.Field)
	assert.Equal(t, txHash, dup.Value)
}

// =============================================================================
// Test: CountConfirmedByOwner
// =============================================================================

func testCountConfirmedByOwner(t *testing.T, store Store) {
	ctx := context.Background()

	owner := "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
	other := "0x7a3cdb2364f92369a602cae81167d0679087e6a3"

	for i := range 3 {
		_, err := store.InsertMint(ctx, buildTestMint(owner, testTxHash(i)))
		require.NoError(t, err)
	}

	pending := buildTestMint(owner, testTxHash(3))
	pending.Status = schema.MintStatusPending
	_, err := store.InsertMint(ctx, pending)
	require.NoError(t, err)

	failed := buildTestMint(owner, testTxHash(4))
	failed.Status = schema.MintStatusFailed
	_, err = store.InsertMint(ctx, failed)
	require.NoError(t, err)

	_, err = store.InsertMint(ctx, buildTestMint(other, testTxHash(5)))
	require.NoError(t, err)

	// Only the confirmed records of the requested owner count, and the
	// mixed-case address must resolve to the same rows.
	count, err := store.CountConfirmedByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = store.CountConfirmedByOwner(ctx, strings.ToLower(owner))
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = store.CountConfirmedByOwner(ctx, "0x0000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// =============================================================================
// Test: ListConfirmedByOwner
// =============================================================================

func testListConfirmedByOwner(t *testing.T, store Store) {
	ctx := context.Background()

	owner := "0x396343362be2a4da1ce0c1c210945346fb82aa49"
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)

	for i := range 15 {
		record := buildTestMint(owner, testTxHash(i))
		record.TokenID = fmt.Sprintf("%d", i)
		record.MintedAt = base.Add(time.Duration(i) * time.Minute)
		record.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := store.InsertMint(ctx, record)
		require.NoError(t, err)
	}

	pending := buildTestMint(owner, testTxHash(15))
	pending.Status = schema.MintStatusPending
	_, err := store.InsertMint(ctx, pending)
	require.NoError(t, err)

	t.Run("first page is the newest records", func(t *testing.T) {
		records, total, err := store.ListConfirmedByOwner(ctx, owner, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		require.Len(t, records, 10)
		assert.Equal(t, "14", records[0].TokenID)
		assert.Equal(t, "5", records[9].TokenID)

		// Analytics columns are omitted from list reads
		assert.Nil(t, records[0].UserAgent)
		assert.Nil(t, records[0].CallerIP)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		records, total, err := store.ListConfirmedByOwner(ctx, owner, 2, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		require.Len(t, records, 5)
		assert.Equal(t, "4", records[0].TokenID)
		assert.Equal(t, "0", records[4].TokenID)
	})

	t.Run("page past the end is empty with the true total", func(t *testing.T) {
		records, total, err := store.ListConfirmedByOwner(ctx, owner, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Len(t, records, 0)
	})

	t.Run("mixed-case owner address matches", func(t *testing.T) {
		records, total, err := store.ListConfirmedByOwner(ctx, "0x396343362BE2A4DA1CE0C1C210945346FB82AA49", 1, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total)
		assert.Len(t, records, 5)
	})

	t.Run("owner with no mints", func(t *testing.T) {
		records, total, err := store.ListConfirmedByOwner(ctx, "0x0000000000000000000000000000000000000001", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Len(t, records, 0)
	})
}

// =============================================================================
// Test: EventStatistics
// =============================================================================

func testEventStatistics(t *testing.T, store Store) {
	ctx := context.Background()

	owner1 := "0x396343362be2a4da1ce0c1c210945346fb82aa49"
	owner2 := "0x7a3cdb2364f92369a602cae81167d0679087e6a3"

	base := time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Millisecond)

	// Three confirmed "minted" across two owners, one confirmed "claimed",
	// one pending that must not count.
	for i, owner := range []string{owner1, owner1, owner2} {
		record := buildTestMint(owner, testTxHash(i))
		record.MintedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := store.InsertMint(ctx, record)
		require.NoError(t, err)
	}

	claimed := buildTestMint(owner1, testTxHash(3))
	claimed.EventName = "claimed"
	claimed.MintedAt = base.Add(10 * time.Hour)
	_, err := store.InsertMint(ctx, claimed)
	require.NoError(t, err)

	pending := buildTestMint(owner2, testTxHash(4))
	pending.Status = schema.MintStatusPending
	_, err = store.InsertMint(ctx, pending)
	require.NoError(t, err)

	stats, err := store.EventStatistics(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by total mints, highest first
	assert.Equal(t, "minted", stats[0].EventName)
	assert.Equal(t, int64(3), stats[0].TotalMints)
	assert.Equal(t, int64(2), stats[0].UniqueOwnerCount)
	assert.WithinDuration(t, base, stats[0].FirstMint, time.Second)
	assert.WithinDuration(t, base.Add(2*time.Hour), stats[0].LastMint, time.Second)

	assert.Equal(t, "claimed", stats[1].EventName)
	assert.Equal(t, int64(1), stats[1].TotalMints)
	assert.Equal(t, int64(1), stats[1].UniqueOwnerCount)
}

// =============================================================================
// Test: UpdateMintStatus
// =============================================================================

func testUpdateMintStatus(t *testing.T, store Store) {
	ctx := context.Background()

	owner := "0x396343362be2a4da1ce0c1c210945346fb82aa49"
	txHash := testTxHash(0)

	pending := buildTestMint(owner, txHash)
	pending.Status = schema.MintStatusPending
	_, err := store.InsertMint(ctx, pending)
	require.NoError(t, err)

	t.Run("transition pending to confirmed", func(t *testing.T) {
		updated, err := store.UpdateMintStatus(ctx, txHash, schema.MintStatusConfirmed)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, schema.MintStatusConfirmed, updated.Status)

		count, err := store.CountConfirmedByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("mixed-case hash resolves the same record", func(t *testing.T) {
		updated, err := store.UpdateMintStatus(ctx, "0x"+strings.ToUpper(txHash[2:]), schema.MintStatusFailed)
		require.NoError(t, err)
		assert.Equal(t, schema.MintStatusFailed, updated.Status)
	})

	t.Run("unknown hash", func(t *testing.T) {
		_, err := store.UpdateMintStatus(ctx, testTxHash(9999), schema.MintStatusConfirmed)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMintNotFound)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs every store test against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"InsertAndGetMint", testInsertAndGetMint},
		{"DuplicateTransactionHash", testDuplicateTransactionHash},
		{"CountConfirmedByOwner", testCountConfirmedByOwner},
		{"ListConfirmedByOwner", testListConfirmedByOwner},
		{"EventStatistics", testEventStatistics},
		{"UpdateMintStatus", testUpdateMintStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
