package storage

import (
	"context"
	"errors"
	"testing"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/ipfs"
	model "carpet-auction-house/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func namedMock(ctrl *gomock.Controller, name string) *MockProvider {
	m := NewMockProvider(ctrl)
	m.EXPECT().Name().Return(name).AnyTimes()
	return m
}

func TestChain_UploadFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	data := []byte("img")

	tests := []struct {
		name      string
		setup     func(primary, secondary *MockProvider)
		wantCID   string
		wantErrIs []error
	}{
		{
			name: "primary_succeeds",
			setup: func(primary, secondary *MockProvider) {
				primary.EXPECT().UploadFile(ctx, "a.png", data).Return("bafy1", nil)
			},
			wantCID: "bafy1",
		},
		{
			name: "falls_back_to_secondary",
			setup: func(primary, secondary *MockProvider) {
				primary.EXPECT().UploadFile(ctx, "a.png", data).Return("", errors.New("boom"))
				secondary.EXPECT().UploadFile(ctx, "a.png", data).Return("Qm2", nil)
			},
			wantCID: "Qm2",
		},
		{
			name: "all_fail_reports_last_error",
			setup: func(primary, secondary *MockProvider) {
				primary.EXPECT().UploadFile(ctx, "a.png", data).Return("", errors.New("boom"))
				secondary.EXPECT().UploadFile(ctx, "a.png", data).Return("", auctionerrors.ErrMissingCredential)
			},
			wantErrIs: []error{auctionerrors.ErrUploadFailed, auctionerrors.ErrMissingCredential},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			primary, secondary := namedMock(ctrl, "primary"), namedMock(ctrl, "secondary")
			tc.setup(primary, secondary)

			cid, err := NewChain(primary, secondary).UploadFile(ctx, "a.png", data)
			if len(tc.wantErrIs) > 0 {
				for _, target := range tc.wantErrIs {
					require.ErrorIs(t, err, target)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantCID, cid)
		})
	}
}

func TestChain_NoProviders(t *testing.T) {
	t.Parallel()
	c := NewChain(nil)
	require.Zero(t, c.Len())
	_, err := c.UploadJSON(context.Background(), map[string]string{})
	require.ErrorIs(t, err, auctionerrors.ErrNoStorageProvider)
	require.Contains(t, err.Error(), "Set WEB3_STORAGE_TOKEN or PINATA_JWT")
}

func TestChain_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := namedMock(ctrl, "primary")
	_, err := NewChain(primary).UploadFile(ctx, "a", []byte("x"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	p := NewMockProvider(ctrl)
	gomock.InOrder(
		p.EXPECT().UploadFile(ctx, "rug.png", []byte("img")).Return("bafyimg", nil),
		p.EXPECT().UploadJSON(ctx, model.Metadata{
			Name:        "Kashmiri Silk Carpet",
			Description: "Hand knotted",
			Image:       "https://ipfs.io/ipfs/bafyimg",
		}).Return("bafymeta", nil),
	)

	out, err := NewPublisher(p, ipfs.NewGateways()).Publish(ctx,
		Asset{Filename: "rug.png", Data: []byte("img")},
		Document{Name: "Kashmiri Silk Carpet", Description: "Hand knotted"})
	require.NoError(t, err)
	require.Equal(t, Published{
		ImageCID:    "bafyimg",
		ImageURL:    "https://ipfs.io/ipfs/bafyimg",
		MetadataCID: "bafymeta",
		MetadataURL: "https://ipfs.io/ipfs/bafymeta",
	}, out)
}

func TestPublisher_Publish_StopsAfterImageFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewMockProvider(ctrl)
	p.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any()).Return("", auctionerrors.ErrUploadFailed)

	_, err := NewPublisher(p, nil).Publish(context.Background(), Asset{Data: []byte("img")}, Document{Name: "Rug"})
	require.ErrorIs(t, err, auctionerrors.ErrUploadFailed)
}

func TestPublisher_Publish_Validation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	pub := NewPublisher(NewMockProvider(ctrl), nil)

	_, err := pub.Publish(context.Background(), Asset{}, Document{Name: "Rug"})
	require.ErrorIs(t, err, auctionerrors.ErrInvalidListing)
	_, err = pub.Publish(context.Background(), Asset{Data: []byte("x")}, Document{Name: " "})
	require.ErrorIs(t, err, auctionerrors.ErrInvalidListing)
}
