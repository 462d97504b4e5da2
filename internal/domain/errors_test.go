package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	assert.False(t, verr.HasErrors())

	verr.Add("owner_address", "must be a 0x-prefixed 20-byte hex address")
	verr.Add("content_id", "must be a Qm-prefixed CIDv0 content identifier")

	require.True(t, verr.HasErrors())
	assert.Equal(t, []string{"owner_address", "content_id"}, verr.Fields())
	assert.Contains(t, verr.Error(), "owner_address")
	assert.Contains(t, verr.Error(), "content_id")
}

func TestMissingFieldsError(t *testing.T) {
	merr := &MissingFieldsError{Fields: []string{"token_id", "transaction_hash"}}
	assert.Equal(t, "missing required fields: token_id, transaction_hash", merr.Error())
}

func TestDuplicateKeyError(t *testing.T) {
	dup := &DuplicateKeyError{Field: "transactionHash", Value: "0xabc"}
	assert.Contains(t, dup.Error(), "transactionHash")
	assert.Contains(t, dup.Error(), "0xabc")

	// errors.As must unwrap through fmt wrapping
	wrapped := fmt.Errorf("insert failed: %w", dup)
	var target *DuplicateKeyError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "transactionHash", target.Field)
}
