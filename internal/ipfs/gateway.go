// Package ipfs resolves content addresses through public HTTP gateways.
package ipfs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"carpet-auction-house/internal/auctionerrors"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/utils"
)

const scheme = "ipfs://"

// DefaultGateways are tried in order when none are configured
var DefaultGateways = []string{
	"https://ipfs.io/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
}

// Getter issues a single GET. *httpretry.Client satisfies it.
type Getter interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Gateways is an ordered list of gateway base URLs ending in "/"
type Gateways []string

// NewGateways normalizes the given bases. An empty list means DefaultGateways.
func NewGateways(bases ...string) Gateways {
	out := make(Gateways, 0, len(bases))
	for _, b := range bases {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		if !strings.HasSuffix(b, "/") {
			b += "/"
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		out = append(out, DefaultGateways...)
	}
	return out
}

// CID extracts the content address from ref. ref may be a bare cid, an ipfs:// URI or
// a gateway URL of the form https://host/ipfs/<cid>. ok is false for plain HTTP URLs
// that carry no cid.
func CID(ref string) (cid string, ok bool) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return "", false
	case strings.HasPrefix(ref, scheme):
		return strings.TrimPrefix(ref, scheme), true
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		i := strings.Index(ref, "/ipfs/")
		if i < 0 {
			return "", false
		}
		return ref[i+len("/ipfs/"):], true
	default:
		return ref, true
	}
}

// URLs returns one candidate per gateway for ref. A plain HTTP URL is returned as its
// only candidate; an empty ref yields nil.
func (g Gateways) URLs(ref string) []string {
	cid, ok := CID(ref)
	if !ok {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return nil
		}
		return []string{ref}
	}
	urls := make([]string, 0, len(g))
	for _, base := range g {
		urls = append(urls, base+cid)
	}
	return urls
}

// FirstURL is the first candidate of URLs, or "" when there is none
func (g Gateways) FirstURL(ref string) string {
	urls := g.URLs(ref)
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// Reader fetches JSON documents over the gateways
type Reader struct {
	gateways Gateways
	client   Getter
}

// NewReader creates a reader. The client should not retry: the reader moves to the
// next gateway instead.
func NewReader(gateways Gateways, client Getter) *Reader {
	if len(gateways) == 0 {
		gateways = NewGateways()
	}
	return &Reader{gateways: gateways, client: client}
}

// Gateways returns the configured gateway list
func (r *Reader) Gateways() Gateways {
	return r.gateways
}

// FetchJSON decodes the document at ref into out. Each candidate URL gets one attempt in
// order; the first 2xx response that decodes into out's type wins. Every attempt decodes
// into a fresh value, so out holds exactly one gateway's document and is untouched on
// failure. out must be a non-nil pointer.
func (r *Reader) FetchJSON(ctx context.Context, ref string, out any) error {
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Pointer || dst.IsNil() {
		return fmt.Errorf("ipfs: decode target must be a non-nil pointer, got %T", out)
	}
	urls := r.gateways.URLs(ref)
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("ipfs: %w", err)
		}
		raw, err := r.fetch(ctx, u)
		if err != nil {
			utils.Debug("ipfs: gateway attempt failed", map[string]any{"url": u, "error": err.Error()})
			continue
		}
		fresh := reflect.New(dst.Elem().Type())
		if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
			utils.Debug("ipfs: gateway returned unexpected document", map[string]any{"url": u, "error": err.Error()})
			continue
		}
		dst.Elem().Set(fresh.Elem())
		return nil
	}
	return fmt.Errorf("ipfs: %s after %d gateway(s): %w", ref, len(urls), auctionerrors.ErrFetchFailed)
}

func (r *Reader) fetch(ctx context.Context, url string) (json.RawMessage, error) {
	resp, err := r.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Metadata fetches an auction metadata document
func (r *Reader) Metadata(ctx context.Context, ref string) (model.Metadata, error) {
	var md model.Metadata
	if err := r.FetchJSON(ctx, ref, &md); err != nil {
		return model.Metadata{}, err
	}
	return md, nil
}
