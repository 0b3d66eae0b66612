package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"carpet-auction-house/internal/auctionerrors"
)

// DefaultPinataURL is the base of the Pinata pinning API
const DefaultPinataURL = "https://api.pinata.cloud"

// Pinata pins files and JSON documents through the Pinata API
type Pinata struct {
	base   string
	jwt    string
	client Doer
}

// NewPinata creates the provider; an empty base uses DefaultPinataURL
func NewPinata(base, jwt string, client Doer) *Pinata {
	if base == "" {
		base = DefaultPinataURL
	}
	return &Pinata{base: strings.TrimRight(base, "/"), jwt: strings.TrimSpace(jwt), client: client}
}

func (p *Pinata) Name() string { return "Pinata" }

// UploadFile sends data as the multipart field "file"
func (p *Pinata) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	if p.jwt == "" {
		return "", fmt.Errorf("%s: JWT not set: %w", p.Name(), auctionerrors.ErrMissingCredential)
	}
	if filename == "" {
		filename = "upload"
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%s: build form: %w", p.Name(), err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%s: build form: %w", p.Name(), err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("%s: build form: %w", p.Name(), err)
	}

	header := bearer(p.jwt)
	header.Set("Content-Type", form.FormDataContentType())
	return p.pin(ctx, StageFile, p.base+"/pinning/pinFileToIPFS", buf.Bytes(), header)
}

func (p *Pinata) UploadJSON(ctx context.Context, v any) (string, error) {
	if p.jwt == "" {
		return "", fmt.Errorf("%s: JWT not set: %w", p.Name(), auctionerrors.ErrMissingCredential)
	}
	body, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%s: encode document: %w", p.Name(), err)
	}
	header := bearer(p.jwt)
	header.Set("Content-Type", "application/json")
	return p.pin(ctx, StageJSON, p.base+"/pinning/pinJSONToIPFS", body, header)
}

func (p *Pinata) pin(ctx context.Context, stage, url string, body []byte, header http.Header) (string, error) {
	var out struct {
		IpfsHash string `json:"IpfsHash"`
	}
	if err := post(ctx, p.client, p.Name(), stage, url, body, header, &out); err != nil {
		return "", err
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("%s %s upload: response has no IpfsHash", p.Name(), stage)
	}
	return out.IpfsHash, nil
}

var _ Provider = (*Pinata)(nil)
