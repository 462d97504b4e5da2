package dto

import (
	"time"

	"github.com/mintproof/mint-registry/internal/domain"
	"github.com/mintproof/mint-registry/internal/store/schema"
)

// SaveMintRequest represents the request body for recording a mint
type SaveMintRequest struct {
	OwnerAddress    string     `json:"owner_address"`
	ContentID       string     `json:"content_id"`
	MetadataLocator string     `json:"metadata_locator"`
	TokenID         string     `json:"token_id"`
	ContractAddress string     `json:"contract_address"`
	TransactionHash string     `json:"transaction_hash"`
	EventName       string     `json:"event_name,omitempty"`
	MintedAt        *time.Time `json:"minted_at,omitempty"`
	NetworkChainID  *int64     `json:"network_chain_id,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
}

// MissingFields returns an error naming every absent required field, or nil
// when all required fields are present
func (r *SaveMintRequest) MissingFields() *domain.MissingFieldsError {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"owner_address", r.OwnerAddress},
		{"content_id", r.ContentID},
		{"metadata_locator", r.MetadataLocator},
		{"token_id", r.TokenID},
		{"contract_address", r.ContractAddress},
		{"transaction_hash", r.TransactionHash},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return &domain.MissingFieldsError{Fields: missing}
	}
	return nil
}

// Validate checks every field against its format constraint and returns an
// error enumerating all failures, not just the first. It assumes required
// fields are present (see MissingFields).
func (r *SaveMintRequest) Validate() *domain.ValidationError {
	verr := &domain.ValidationError{}

	if !domain.IsEthereumAddress(r.OwnerAddress) {
		verr.Add("owner_address", "must be a 0x-prefixed 20-byte hex address")
	}
	if !domain.IsContentID(r.ContentID) {
		verr.Add("content_id", "must be a Qm-prefixed CIDv0 content identifier")
	}
	if !domain.IsMetadataLocator(r.MetadataLocator) {
		verr.Add("metadata_locator", "must be an ipfs:// URI wrapping a valid content identifier")
	}
	if !domain.IsEthereumAddress(r.ContractAddress) {
		verr.Add("contract_address", "must be a 0x-prefixed 20-byte hex address")
	}
	if !domain.IsTransactionHash(r.TransactionHash) {
		verr.Add("transaction_hash", "must be a 0x-prefixed 32-byte hex hash")
	}
	if r.EventName != "" && !domain.EventName(r.EventName).Valid() {
		verr.Add("event_name", "unknown event name")
	}
	if r.NetworkChainID != nil && !domain.IsValidChainID(domain.ChainID(*r.NetworkChainID)) {
		verr.Add("network_chain_id", "unknown chain identifier")
	}
	if r.ImageURL != "" && !domain.IsGatewayURL(r.ImageURL, r.ContentID) {
		verr.Add("image_url", "must be the gateway URL of content_id")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ToRecord builds the normalized mint record for a validated request.
// Defaults applied here: event name, minted-at timestamp, network chain,
// and the image URL computed once from the content ID.
func (r *SaveMintRequest) ToRecord(now time.Time, userAgent string, callerIP string) *schema.MintRecord {
	eventName := r.EventName
	if eventName == "" {
		eventName = string(domain.DefaultEventName)
	}

	mintedAt := now
	if r.MintedAt != nil {
		mintedAt = *r.MintedAt
	}

	chainID := int64(domain.DefaultChainID)
	if r.NetworkChainID != nil {
		chainID = *r.NetworkChainID
	}

	imageURL := r.ImageURL
	if imageURL == "" {
		imageURL = domain.GatewayURL(r.ContentID)
	}

	record := &schema.MintRecord{
		OwnerAddress:    domain.NormalizeAddress(r.OwnerAddress),
		ContentID:       r.ContentID,
		MetadataLocator: r.MetadataLocator,
		TokenID:         r.TokenID,
		ContractAddress: domain.NormalizeAddress(r.ContractAddress),
		TransactionHash: domain.NormalizeHash(r.TransactionHash),
		EventName:       eventName,
		MintedAt:        mintedAt,
		NetworkChainID:  chainID,
		ImageURL:        imageURL,
		Status:          schema.MintStatusConfirmed,
	}
	if userAgent != "" {
		record.UserAgent = &userAgent
	}
	if callerIP != "" {
		record.CallerIP = &callerIP
	}

	return record
}
