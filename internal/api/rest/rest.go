package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	api := router.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", handler.HealthCheck)

		// Mint record endpoints
		api.POST("/nfts", handler.SaveMint)
		api.GET("/nfts/stats/event", handler.GetEventStats)
		api.GET("/nfts/:wallet_address", handler.ListMintsByOwner)
	}
}
