package storage

import (
	"context"
	"fmt"
	"strings"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/ipfs"
	model "carpet-auction-house/internal/models"
	"carpet-auction-house/utils"
)

// Asset is the image of a listing
type Asset struct {
	Filename string
	Data     []byte
}

// Document is the descriptive part of the metadata document
type Document struct {
	Name        string
	Description string
}

// Published references both uploaded objects
type Published struct {
	ImageCID    string `json:"image_cid"`
	ImageURL    string `json:"image_url"`
	MetadataCID string `json:"metadata_cid"`
	MetadataURL string `json:"metadata_url"`
}

// Publisher uploads an asset and then the metadata document referencing it
type Publisher struct {
	provider Provider
	gateways ipfs.Gateways
}

// NewPublisher creates a publisher; URLs are built from the first gateway
func NewPublisher(provider Provider, gateways ipfs.Gateways) *Publisher {
	if len(gateways) == 0 {
		gateways = ipfs.NewGateways()
	}
	return &Publisher{provider: provider, gateways: gateways}
}

// Publish runs the upload steps in order. The metadata step only starts once the
// asset address is known, since the document embeds it.
func (p *Publisher) Publish(ctx context.Context, asset Asset, doc Document) (Published, error) {
	if len(asset.Data) == 0 {
		return Published{}, fmt.Errorf("storage: publish: empty asset: %w", auctionerrors.ErrInvalidListing)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return Published{}, fmt.Errorf("storage: publish: missing name: %w", auctionerrors.ErrInvalidListing)
	}

	imageCID, err := p.provider.UploadFile(ctx, asset.Filename, asset.Data)
	if err != nil {
		return Published{}, fmt.Errorf("storage: publish image: %w", err)
	}
	imageURL := p.gateways.FirstURL(imageCID)

	meta := model.Metadata{Name: doc.Name, Description: doc.Description, Image: imageURL}
	metaCID, err := p.provider.UploadJSON(ctx, meta)
	if err != nil {
		return Published{}, fmt.Errorf("storage: publish metadata: %w", err)
	}

	out := Published{
		ImageCID:    imageCID,
		ImageURL:    imageURL,
		MetadataCID: metaCID,
		MetadataURL: p.gateways.FirstURL(metaCID),
	}
	utils.Info("storage: listing published", map[string]any{
		"image_cid":    out.ImageCID,
		"metadata_cid": out.MetadataCID,
	})
	return out, nil
}
