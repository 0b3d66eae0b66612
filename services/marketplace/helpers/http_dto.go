package helpers

import "mime/multipart"

// Request/Response DTOs
type PlaceBidRequest struct {
	// Amount is a decimal ether string, e.g. "1.25"
	Amount string `json:"amount" binding:"required"`
}

// PublishForm is the multipart form of POST /auctions
type PublishForm struct {
	Name          string                `form:"name" binding:"required"`
	Description   string                `form:"description" binding:"required"`
	Price         string                `form:"price" binding:"required"`
	DurationHours string                `form:"duration" binding:"required"`
	Image         *multipart.FileHeader `form:"image" binding:"required"`
}

type ReceiptResponse struct {
	AuctionID uint64 `json:"auction_id,omitempty"`
	TxHash    string `json:"tx_hash"`
	Block     uint64 `json:"block_number"`
}

type PublishResponse struct {
	ImageCID    string `json:"image_cid"`
	ImageURL    string `json:"image_url"`
	MetadataCID string `json:"metadata_cid"`
	MetadataURL string `json:"metadata_url"`
	TxHash      string `json:"tx_hash"`
	Block       uint64 `json:"block_number"`
}

type AuctionListingResponse struct {
	ID         uint64 `json:"id"`
	Title      string `json:"title"`
	HighestBid string `json:"highest_bid"`
	EndTime    string `json:"end_time"`
	Image      string `json:"image"`
}
