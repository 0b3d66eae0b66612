package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"carpet-auction-house/internal/auctionerrors"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction id"
	case errors.Is(err, auctionerrors.ErrInvalidListing), errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid listing details"
	case errors.Is(err, auctionerrors.ErrNoWallet):
		return http.StatusUnauthorized, "wallet not connected"
	case errors.Is(err, auctionerrors.ErrUserRejected):
		return http.StatusForbidden, "request rejected in wallet"
	case errors.Is(err, auctionerrors.ErrNetworkMismatch):
		return http.StatusConflict, "wallet is on the wrong network"
	case errors.Is(err, auctionerrors.ErrTxReverted):
		return http.StatusUnprocessableEntity, "transaction reverted"
	case errors.Is(err, auctionerrors.ErrNoContract):
		return http.StatusServiceUnavailable, "contract not configured"
	case errors.Is(err, auctionerrors.ErrNoStorageProvider):
		return http.StatusServiceUnavailable, "no storage provider configured"
	case errors.Is(err, auctionerrors.ErrUploadFailed), errors.Is(err, auctionerrors.ErrMissingCredential):
		return http.StatusBadGateway, "storage upload failed"
	case errors.Is(err, auctionerrors.ErrFetchFailed):
		return http.StatusBadGateway, "failed to fetch IPFS JSON"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseAuctionID reads the :auction_id path parameter
func ParseAuctionID(c *gin.Context) (model.AuctionID, error) {
	raw := c.Param("auction_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("helpers: %w - %q is not a positive integer", auctionerrors.ErrInvalidAuction, raw)
	}
	return model.AuctionID(id), nil
}

// ValidAccount reports whether s is a 0x-prefixed 20 byte hex address
func ValidAccount(s string) bool {
	return len(s) == 42 && common.IsHexAddress(s)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
