package server

import (
	"net/http"

	"carpet-auction-house/internal/metrics"
	handler "carpet-auction-house/services/marketplace/handler"
	"carpet-auction-house/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.MarketplaceServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery()) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.MaxMultipartMemory = handler.MaxImageBytes

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"ok": true}, "healthy")
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	marketplaceHandler := handler.NewMarketplaceHandler(service)

	router.GET("/wallet", marketplaceHandler.WalletStatusHandler)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", marketplaceHandler.ListAuctionsHandler)
		auctions.POST("", marketplaceHandler.PublishHandler)
		auctions.GET("/:auction_id", marketplaceHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", marketplaceHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/claim-funds", marketplaceHandler.ClaimFundsHandler)
		auctions.POST("/:auction_id/claim-nft", marketplaceHandler.ClaimNFTHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:account/dashboard", marketplaceHandler.DashboardHandler)
	}

	return router
}
