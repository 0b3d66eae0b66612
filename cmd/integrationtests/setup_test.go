package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/chain"
	"carpet-auction-house/internal/eventlog"
	"carpet-auction-house/internal/httpretry"
	"carpet-auction-house/internal/ipfs"
	"carpet-auction-house/internal/marketplace"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/internal/reconcile"
	"carpet-auction-house/internal/server"
	"carpet-auction-house/internal/storage"
	"carpet-auction-house/internal/units"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// well-known development key, never funded on a public network
const (
	sellerKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	sellerAccount = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testChainID   = 31337
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ipfsNode is an httptest server acting as both the upload API and the gateway
type ipfsNode struct {
	srv *httptest.Server

	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func newIPFSNode(t *testing.T) *ipfsNode {
	t.Helper()
	n := &ipfsNode{objects: map[string][]byte{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.fail || r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		cid := fmt.Sprintf("bafytest%d", len(n.objects)+1)
		n.objects[cid] = body
		_ = json.NewEncoder(w).Encode(map[string]string{"cid": cid})
	})
	mux.HandleFunc("/ipfs/", func(w http.ResponseWriter, r *http.Request) {
		cid := strings.TrimPrefix(r.URL.Path, "/ipfs/")
		n.mu.Lock()
		data, ok := n.objects[cid]
		n.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	})
	n.srv = httptest.NewServer(mux)
	t.Cleanup(n.srv.Close)
	return n
}

func (n *ipfsNode) setFail(fail bool) {
	n.mu.Lock()
	n.fail = fail
	n.mu.Unlock()
}

func (n *ipfsNode) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.objects)
}

type ledgerAuction struct {
	seller        string
	metadataURL   string
	title         string
	description   string
	image         string
	start         *big.Int
	highest       *big.Int
	highestBidder string
	end           time.Time
	settled       bool
	nftClaimed    bool
}

// ledger is an in-process stand-in for the marketplace contract. Every write appends
// the matching event to the shared memory log.
type ledger struct {
	events *eventlog.MemoryLog
	reader *ipfs.Reader
	clock  clockwork.Clock

	mu        sync.Mutex
	auctions  map[model.AuctionID]*ledgerAuction
	block     uint64
	failReads bool
}

func newLedger(events *eventlog.MemoryLog, reader *ipfs.Reader, clock clockwork.Clock) *ledger {
	return &ledger{events: events, reader: reader, clock: clock, auctions: map[model.AuctionID]*ledgerAuction{}}
}

func (l *ledger) setFailReads(fail bool) {
	l.mu.Lock()
	l.failReads = fail
	l.mu.Unlock()
}

func (l *ledger) receipt() chain.Receipt {
	l.block++
	return chain.Receipt{TxHash: fmt.Sprintf("0x%064x", l.block), BlockNumber: l.block}
}

func (l *ledger) AllAuctions(ctx context.Context) ([]model.AuctionListing, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failReads {
		return nil, errors.New("rpc unavailable")
	}
	out := make([]model.AuctionListing, 0, len(l.auctions))
	for id := model.AuctionID(1); int(id) <= len(l.auctions); id++ {
		a := l.auctions[id]
		out = append(out, model.AuctionListing{
			ID: id, Title: a.title, HighestBid: units.DisplayEther(a.highest), EndTime: a.end, Image: a.image,
		})
	}
	return out, nil
}

func (l *ledger) AuctionByID(ctx context.Context, id model.AuctionID) (model.AuctionDetails, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failReads {
		return model.AuctionDetails{}, errors.New("rpc unavailable")
	}
	a, ok := l.auctions[id]
	if !ok {
		return model.AuctionDetails{}, fmt.Errorf("auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return model.AuctionDetails{
		ID:            id,
		Title:         a.title,
		Description:   a.description,
		Seller:        a.seller,
		HighestBid:    units.DisplayEther(a.highest),
		HighestBidder: a.highestBidder,
		EndTime:       a.end,
		Active:        l.clock.Now().Before(a.end),
	}, nil
}

func (l *ledger) CreateAuction(ctx context.Context, opts *bind.TransactOpts, metadataURL string, startPrice *big.Int, duration time.Duration) (chain.Receipt, error) {
	meta, err := l.reader.Metadata(ctx, metadataURL)
	if err != nil {
		return chain.Receipt{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	seller := opts.From.Hex()
	id := l.events.CreateAuction(seller, metadataURL)
	l.auctions[id] = &ledgerAuction{
		seller:      seller,
		metadataURL: metadataURL,
		title:       meta.Name,
		description: meta.Description,
		image:       meta.Image,
		start:       new(big.Int).Set(startPrice),
		highest:     new(big.Int),
		end:         l.clock.Now().Add(duration),
	}
	return l.receipt(), nil
}

func (l *ledger) PlaceBid(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID, amount *big.Int) (chain.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.auctions[id]
	if !ok || !l.clock.Now().Before(a.end) || amount.Cmp(a.start) < 0 || amount.Cmp(a.highest) <= 0 {
		return chain.Receipt{}, auctionerrors.ErrTxReverted
	}
	bidder := opts.From.Hex()
	if err := l.events.PlaceBid(id, bidder, amount); err != nil {
		return chain.Receipt{}, err
	}
	a.highest, a.highestBidder = new(big.Int).Set(amount), bidder
	return l.receipt(), nil
}

// settle ends an expired auction once
func (l *ledger) settle(id model.AuctionID) (*ledgerAuction, error) {
	a, ok := l.auctions[id]
	if !ok || l.clock.Now().Before(a.end) {
		return nil, auctionerrors.ErrTxReverted
	}
	if !a.settled {
		if err := l.events.EndAuction(id, a.highestBidder, a.highest); err != nil {
			return nil, err
		}
		a.settled = true
	}
	return a, nil
}

func (l *ledger) ClaimFunds(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID) (chain.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.settle(id)
	if err != nil {
		return chain.Receipt{}, err
	}
	if !model.SameAddress(a.seller, opts.From.Hex()) {
		return chain.Receipt{}, auctionerrors.ErrTxReverted
	}
	return l.receipt(), nil
}

func (l *ledger) ClaimNFT(ctx context.Context, opts *bind.TransactOpts, id model.AuctionID) (chain.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.settle(id)
	if err != nil {
		return chain.Receipt{}, err
	}
	if a.nftClaimed || !model.SameAddress(a.highestBidder, opts.From.Hex()) {
		return chain.Receipt{}, auctionerrors.ErrTxReverted
	}
	a.nftClaimed = true
	return l.receipt(), nil
}

var _ chain.Contract = (*ledger)(nil)

type fixedChainID struct {
	id int64
}

func (f fixedChainID) ChainID(ctx context.Context) (*big.Int, error) {
	return big.NewInt(f.id), nil
}

// testEnv is a fully wired marketplace behind the real router
type testEnv struct {
	router *gin.Engine
	node   *ipfsNode
	ledger *ledger
	events *eventlog.MemoryLog
	clock  clockwork.FakeClock
}

// SetupTestEnv wires the service against the in-process ledger, memory log and ipfs node.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	node := newIPFSNode(t)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	fast := httpretry.Options{Retries: 1, Backoff: time.Millisecond, Timeout: 2 * time.Second}
	single := fast
	single.Retries = 0

	gateways := ipfs.NewGateways(node.srv.URL + "/ipfs/")
	reader := ipfs.NewReader(gateways, httpretry.New("ipfs", single))
	events := eventlog.NewMemoryLog()
	led := newLedger(events, reader, clock)

	wallet, err := chain.NewKeyedWallet(sellerKey, fixedChainID{id: testChainID})
	if err != nil {
		t.Fatalf("failed to load wallet: %v", err)
	}
	titles, err := reconcile.NewTitleResolver(reader, 16)
	if err != nil {
		t.Fatalf("failed to create title resolver: %v", err)
	}

	uploads := httpretry.New("storage", fast)
	publisher := storage.NewPublisher(storage.NewChain(
		storage.NewWeb3Storage(node.srv.URL+"/upload", "test-token", uploads),
	), gateways)

	svc := marketplace.NewService(marketplace.Deps{
		Contract:  led,
		Wallet:    wallet,
		Events:    events,
		Publisher: publisher,
		Dashboard: reconcile.NewEngine(events, titles, reconcile.WithWorkers(2)),
		Metadata:  reader,
		Gateways:  gateways,
		ChainID:   testChainID,
		Clock:     clock,
	})
	return &testEnv{router: server.SetupRouter(svc), node: node, ledger: led, events: events, clock: clock}
}

// SetupDemoRouter initializes the router without a contract or wallet.
func SetupDemoRouter() *gin.Engine {
	svc := marketplace.NewService(marketplace.Deps{})
	return server.SetupRouter(svc)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return serve(t, router, req)
}

// PublishCarpet posts a multipart listing
func PublishCarpet(t *testing.T, router *gin.Engine, name, price, hours string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := [][2]string{{"name", name}, {"description", "Hand knotted in Srinagar"}, {"price", price}, {"duration", hours}}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	part, err := mw.CreateFormFile("image", "carpet.jpg")
	if err != nil {
		t.Fatalf("failed to create file part: %v", err)
	}
	_, _ = part.Write([]byte("\xff\xd8\xff carpet image"))
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auctions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return serve(t, router, req)
}

func serve(t *testing.T, router *gin.Engine, req *http.Request) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
