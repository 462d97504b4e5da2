package rest

import (
	"github.com/gin-gonic/gin"
)

const (
	DEFAULT_PAGE      = 1
	DEFAULT_PAGE_SIZE = 10
	MAX_PAGE_SIZE     = 100
)

// ListMintsQueryParams holds query parameters for GET /api/nfts/:wallet_address
type ListMintsQueryParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// ParseListMintsQuery parses and clamps the pagination query parameters
func ParseListMintsQuery(c *gin.Context) (*ListMintsQueryParams, error) {
	var params ListMintsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Page < 1 {
		params.Page = DEFAULT_PAGE
	}
	if params.Limit < 1 {
		params.Limit = DEFAULT_PAGE_SIZE
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}
