// Package marketabi holds the ABI of the carpet marketplace contract.
package marketabi

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Event names
const (
	EventAuctionCreated = "AuctionCreated"
	EventBidPlaced      = "BidPlaced"
	EventAuctionEnded   = "AuctionEnded"
)

// Method names
const (
	MethodGetAllAuctions = "getAllAuctions"
	MethodGetAuctionByID = "getAuctionById"
	MethodCreateAuction  = "createAuction"
	MethodPlaceBid       = "placeBid"
	MethodClaimFunds     = "claimFunds"
	MethodClaimNFT       = "claimNFT"
)

// JSON is the contract interface used by the service
const JSON = `[
  {"type":"function","name":"getAllAuctions","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"tuple[]","components":[
     {"name":"id","type":"uint256"},
     {"name":"title","type":"string"},
     {"name":"highestBid","type":"uint256"},
     {"name":"endTime","type":"uint256"},
     {"name":"image","type":"string"}]}]},
  {"type":"function","name":"getAuctionById","stateMutability":"view",
   "inputs":[{"name":"auctionId","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple","components":[
     {"name":"id","type":"uint256"},
     {"name":"title","type":"string"},
     {"name":"description","type":"string"},
     {"name":"seller","type":"address"},
     {"name":"highestBid","type":"uint256"},
     {"name":"highestBidder","type":"address"},
     {"name":"endTime","type":"uint256"},
     {"name":"active","type":"bool"}]}]},
  {"type":"function","name":"createAuction","stateMutability":"nonpayable",
   "inputs":[{"name":"metadataURI","type":"string"},{"name":"startPrice","type":"uint256"},{"name":"duration","type":"uint256"}],
   "outputs":[]},
  {"type":"function","name":"placeBid","stateMutability":"nonpayable",
   "inputs":[{"name":"auctionId","type":"uint256"},{"name":"bidAmount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"claimFunds","stateMutability":"nonpayable",
   "inputs":[{"name":"auctionId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"claimNFT","stateMutability":"nonpayable",
   "inputs":[{"name":"auctionId","type":"uint256"}],"outputs":[]},
  {"type":"event","name":"AuctionCreated","anonymous":false,"inputs":[
     {"name":"auctionId","type":"uint256","indexed":true},
     {"name":"seller","type":"address","indexed":true},
     {"name":"metadataURI","type":"string","indexed":false}]},
  {"type":"event","name":"BidPlaced","anonymous":false,"inputs":[
     {"name":"auctionId","type":"uint256","indexed":true},
     {"name":"bidder","type":"address","indexed":true},
     {"name":"amount","type":"uint256","indexed":false}]},
  {"type":"event","name":"AuctionEnded","anonymous":false,"inputs":[
     {"name":"auctionId","type":"uint256","indexed":true},
     {"name":"winner","type":"address","indexed":false},
     {"name":"amount","type":"uint256","indexed":false}]}
]`

var (
	parseOnce sync.Once
	parsed    abi.ABI
	parseErr  error
)

// Parsed returns the decoded ABI, parsing it on first use
func Parsed() (abi.ABI, error) {
	parseOnce.Do(func() {
		parsed, parseErr = abi.JSON(strings.NewReader(JSON))
	})
	return parsed, parseErr
}
