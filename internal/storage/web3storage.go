package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"carpet-auction-house/internal/auctionerrors"
)

// DefaultWeb3StorageURL is the upload endpoint of web3.storage
const DefaultWeb3StorageURL = "https://api.web3.storage/upload"

// Web3Storage uploads raw bodies to web3.storage
type Web3Storage struct {
	endpoint string
	token    string
	client   Doer
}

// NewWeb3Storage creates the provider; an empty endpoint uses DefaultWeb3StorageURL
func NewWeb3Storage(endpoint, token string, client Doer) *Web3Storage {
	if endpoint == "" {
		endpoint = DefaultWeb3StorageURL
	}
	return &Web3Storage{endpoint: endpoint, token: strings.TrimSpace(token), client: client}
}

func (w *Web3Storage) Name() string { return "Web3.Storage" }

func (w *Web3Storage) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	return w.upload(ctx, StageFile, data, "")
}

func (w *Web3Storage) UploadJSON(ctx context.Context, v any) (string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%s: encode document: %w", w.Name(), err)
	}
	return w.upload(ctx, StageJSON, body, "application/json")
}

func (w *Web3Storage) upload(ctx context.Context, stage string, body []byte, contentType string) (string, error) {
	if w.token == "" {
		return "", fmt.Errorf("%s: token not set: %w", w.Name(), auctionerrors.ErrMissingCredential)
	}
	header := bearer(w.token)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	var out struct {
		CID string `json:"cid"`
	}
	if err := post(ctx, w.client, w.Name(), stage, w.endpoint, body, header, &out); err != nil {
		return "", err
	}
	if out.CID == "" {
		return "", fmt.Errorf("%s %s upload: response has no cid", w.Name(), stage)
	}
	return out.CID, nil
}

var _ Provider = (*Web3Storage)(nil)
