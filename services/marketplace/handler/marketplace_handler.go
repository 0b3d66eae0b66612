package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"carpet-auction-house/internal/chain"
	"carpet-auction-house/internal/marketplace"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/services/marketplace/helpers"
	"carpet-auction-house/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=marketplace_handler.go -destination=mock_marketplace_handler.go -package=handler

// MaxImageBytes caps the size of an uploaded listing image
const MaxImageBytes = 10 << 20

type MarketplaceServiceInterface interface {
	ListAuctions(ctx context.Context, search string) model.AuctionList
	AuctionDetails(ctx context.Context, id model.AuctionID) (model.AuctionView, error)
	PlaceBid(ctx context.Context, id model.AuctionID, amount string) (chain.Receipt, error)
	Publish(ctx context.Context, req marketplace.PublishRequest) (marketplace.PublishResult, error)
	ClaimFunds(ctx context.Context, id model.AuctionID) (chain.Receipt, error)
	ClaimNFT(ctx context.Context, id model.AuctionID) (chain.Receipt, error)
	Dashboard(ctx context.Context, account string) model.Dashboard
	WalletStatus(ctx context.Context) model.WalletStatus
}

type MarketplaceHandler struct {
	service MarketplaceServiceInterface
}

func NewMarketplaceHandler(service MarketplaceServiceInterface) *MarketplaceHandler {
	return &MarketplaceHandler{service: service}
}

// fail writes the mapped error response and logs at warn for client errors, error otherwise
func fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request failed", fields)
}

// ListAuctionsHandler handles GET /auctions?q=
func (h *MarketplaceHandler) ListAuctionsHandler(c *gin.Context) {
	search := c.Query("q")
	list := h.service.ListAuctions(c.Request.Context(), search)

	resp := make([]helpers.AuctionListingResponse, 0, len(list.Auctions))
	for _, a := range list.Auctions {
		end := ""
		if !a.EndTime.IsZero() {
			end = a.EndTime.UTC().Format(time.RFC3339)
		}
		resp = append(resp, helpers.AuctionListingResponse{
			ID:         uint64(a.ID),
			Title:      a.Title,
			HighestBid: a.HighestBid,
			EndTime:    end,
			Image:      a.Image,
		})
	}

	c.Header("X-Data-Source", string(list.Source))
	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"search": search,
		"count":  len(resp),
		"source": list.Source,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *MarketplaceHandler) GetAuctionHandler(c *gin.Context) {
	id, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "GetAuctionHandler", err, map[string]any{"auction_id": c.Param("auction_id")})
		return
	}

	view, err := h.service.AuctionDetails(c.Request.Context(), id)
	if err != nil {
		fail(c, "GetAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}
	if view.Bids == nil {
		view.Bids = []model.BidRecord{}
	}

	c.Header("X-Data-Source", string(view.Source))
	utils.JSONResponse(c, http.StatusOK, view, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": id,
		"bids":       len(view.Bids),
		"source":     view.Source,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *MarketplaceHandler) PlaceBidHandler(c *gin.Context) {
	id, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, "PlaceBidHandler", err, map[string]any{"auction_id": c.Param("auction_id")})
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	receipt, err := h.service.PlaceBid(c.Request.Context(), id, req.Amount)
	if err != nil {
		fail(c, "PlaceBidHandler", err, map[string]any{"auction_id": id, "amount": req.Amount})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, receiptResponse(id, receipt), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": id,
		"amount":     req.Amount,
		"tx_hash":    receipt.TxHash,
	})
}

// ClaimFundsHandler handles POST /auctions/:auction_id/claim-funds
func (h *MarketplaceHandler) ClaimFundsHandler(c *gin.Context) {
	h.claim(c, "ClaimFundsHandler", "funds claimed successfully", h.service.ClaimFunds)
}

// ClaimNFTHandler handles POST /auctions/:auction_id/claim-nft
func (h *MarketplaceHandler) ClaimNFTHandler(c *gin.Context) {
	h.claim(c, "ClaimNFTHandler", "nft claimed successfully", h.service.ClaimNFT)
}

func (h *MarketplaceHandler) claim(c *gin.Context, handlerName, message string, call func(context.Context, model.AuctionID) (chain.Receipt, error)) {
	id, err := helpers.ParseAuctionID(c)
	if err != nil {
		fail(c, handlerName, err, map[string]any{"auction_id": c.Param("auction_id")})
		return
	}

	receipt, err := call(c.Request.Context(), id)
	if err != nil {
		fail(c, handlerName, err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, receiptResponse(id, receipt), message)
	helpers.LogSuccess(handlerName, message, map[string]any{"auction_id": id, "tx_hash": receipt.TxHash})
}

// PublishHandler handles POST /auctions as multipart/form-data
func (h *MarketplaceHandler) PublishHandler(c *gin.Context) {
	var form helpers.PublishForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.HandleBindError(c, "PublishHandler", err)
		return
	}
	image, err := readImage(form)
	if err != nil {
		helpers.HandleBindError(c, "PublishHandler", err)
		return
	}

	res, err := h.service.Publish(c.Request.Context(), marketplace.PublishRequest{
		Name:          form.Name,
		Description:   form.Description,
		Price:         form.Price,
		DurationHours: form.DurationHours,
		Filename:      form.Image.Filename,
		Image:         image,
	})
	if err != nil {
		fail(c, "PublishHandler", err, map[string]any{"name": form.Name})
		return
	}

	resp := helpers.PublishResponse{
		ImageCID:    res.ImageCID,
		ImageURL:    res.ImageURL,
		MetadataCID: res.MetadataCID,
		MetadataURL: res.MetadataURL,
		TxHash:      res.Receipt.TxHash,
		Block:       res.Receipt.BlockNumber,
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "carpet published successfully")
	helpers.LogSuccess("PublishHandler", "carpet published successfully", map[string]any{
		"name":         form.Name,
		"metadata_cid": res.MetadataCID,
		"tx_hash":      res.Receipt.TxHash,
	})
}

func readImage(form helpers.PublishForm) ([]byte, error) {
	if form.Image.Size > MaxImageBytes {
		return nil, fmt.Errorf("image is %d bytes, limit is %d", form.Image.Size, MaxImageBytes)
	}
	f, err := form.Image.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("image is empty")
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}
	return data, nil
}

// DashboardHandler handles GET /users/:account/dashboard
func (h *MarketplaceHandler) DashboardHandler(c *gin.Context) {
	account := c.Param("account")
	if !helpers.ValidAccount(account) {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid account: %q", account), "invalid account address")
		utils.Warn("DashboardHandler: invalid account", map[string]any{"account": account})
		return
	}

	dash := h.service.Dashboard(c.Request.Context(), account)
	if dash.Seller == nil {
		dash.Seller = []model.SellerSummary{}
	}
	if dash.Buyer == nil {
		dash.Buyer = []model.BuyerSummary{}
	}

	c.Header("X-Data-Source", string(dash.Source))
	utils.JSONResponse(c, http.StatusOK, dash, "dashboard retrieved successfully")
	helpers.LogSuccess("DashboardHandler", "dashboard retrieved successfully", map[string]any{
		"account":      account,
		"seller_count": len(dash.Seller),
		"buyer_count":  len(dash.Buyer),
		"source":       dash.Source,
	})
}

// WalletStatusHandler handles GET /wallet
func (h *MarketplaceHandler) WalletStatusHandler(c *gin.Context) {
	st := h.service.WalletStatus(c.Request.Context())
	utils.JSONResponse(c, http.StatusOK, st, "wallet status retrieved successfully")
}

func receiptResponse(id model.AuctionID, r chain.Receipt) helpers.ReceiptResponse {
	return helpers.ReceiptResponse{AuctionID: uint64(id), TxHash: r.TxHash, Block: r.BlockNumber}
}
