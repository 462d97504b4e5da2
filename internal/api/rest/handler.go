package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mintproof/mint-registry/internal/api/executor"
	"github.com/mintproof/mint-registry/internal/api/rest/dto"
	"github.com/mintproof/mint-registry/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// SaveMint records a claimed NFT mint
	// POST /api/nfts
	SaveMint(c *gin.Context)

	// ListMintsByOwner retrieves a paginated list of an owner's confirmed mints
	// GET /api/nfts/:wallet_address?page=<page>&limit=<limit>
	ListMintsByOwner(c *gin.Context)

	// GetEventStats retrieves aggregate mint statistics grouped by event
	// GET /api/nfts/stats/event
	GetEventStats(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /api/health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// SaveMint records a claimed NFT mint. A payload whose transaction hash was
// already recorded is answered with the existing record and a 200 instead of
// an error; a fresh insert answers 201.
func (h *handler) SaveMint(c *gin.Context) {
	var req dto.SaveMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", fmt.Sprintf("%v", err))
		return
	}

	resp, err := h.executor.SaveMint(c.Request.Context(), &req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		var merr *domain.MissingFieldsError
		if errors.As(err, &merr) {
			respondMissingFields(c, merr)
			return
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			respondValidationError(c, verr)
			return
		}
		respondInternalError(c, h.debug, err, "Failed to save mint record")
		return
	}

	status := http.StatusCreated
	if resp.Meta.AlreadyRecorded {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// ListMintsByOwner retrieves a paginated list of an owner's confirmed mints.
// The address format is checked before any store access.
func (h *handler) ListMintsByOwner(c *gin.Context) {
	walletAddress := c.Param("wallet_address")
	if !domain.IsEthereumAddress(walletAddress) {
		respondInvalidFormat(c, "wallet_address", "Invalid wallet address format")
		return
	}

	queryParams, err := ParseListMintsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", fmt.Sprintf("%v", err))
		return
	}

	resp, err := h.executor.ListMintsByOwner(c.Request.Context(), walletAddress, queryParams.Page, queryParams.Limit)
	if err != nil {
		respondInternalError(c, h.debug, err, "Failed to list mint records")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEventStats retrieves aggregate mint statistics grouped by event
func (h *handler) GetEventStats(c *gin.Context) {
	resp, err := h.executor.GetEventStatistics(c.Request.Context())
	if err != nil {
		respondInternalError(c, h.debug, err, "Failed to aggregate event statistics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API including store connectivity
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.Health(c.Request.Context()))
}
