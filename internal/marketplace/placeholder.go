package marketplace

import (
	"time"

	model "carpet-auction-house/internal/models"
)

// PlaceholderImage is shown when an auction has no resolvable image
const PlaceholderImage = "https://via.placeholder.com/800x600"

// placeholderAuctions ends one, two and three days after now
func placeholderAuctions(now time.Time) []model.AuctionListing {
	day := 24 * time.Hour
	return []model.AuctionListing{
		{ID: 1, Title: "Kashmiri Silk Carpet", HighestBid: "1.5 ETH", EndTime: now.Add(day), Image: "Qm..."},
		{ID: 2, Title: "Antique Persian Rug", HighestBid: "2.3 ETH", EndTime: now.Add(2 * day)},
		{ID: 3, Title: "Modern Geometric Carpet", HighestBid: "0.8 ETH", EndTime: now.Add(3 * day), Image: "Qm..."},
	}
}

func mockAuction(id model.AuctionID, now time.Time) model.AuctionDetails {
	return model.AuctionDetails{
		ID:            id,
		Title:         "Kashmiri Silk Carpet",
		Description:   "A beautiful hand-woven carpet made with the finest silk threads, featuring traditional Kashmiri patterns.",
		Seller:        "0x1234567890123456789012345678901234567890",
		HighestBid:    "1.5 ETH",
		HighestBidder: "0x0987654321098765432109876543210987654321",
		EndTime:       now.Add(24 * time.Hour),
		Active:        true,
		Image:         PlaceholderImage,
	}
}

func mockBidHistory() []model.BidRecord {
	return []model.BidRecord{
		{Bidder: "0xABC...DEF", Amount: "1.2 ETH"},
		{Bidder: "0xGHI...JKL", Amount: "1.0 ETH"},
		{Bidder: "0xMNO...PQR", Amount: "0.8 ETH"},
	}
}
