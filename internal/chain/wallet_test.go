package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"carpet-auction-house/internal/auctionerrors"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// well-known development key; its address is fixed
const (
	devKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestNewKeyedWallet(t *testing.T) {
	t.Parallel()

	t.Run("derives_address", func(t *testing.T) {
		t.Parallel()
		w, err := NewKeyedWallet(devKey, nil)
		require.NoError(t, err)
		acct, ok := w.CurrentAccount()
		require.True(t, ok)
		require.Equal(t, devAddress, acct)

		got, err := w.RequestConnection(context.Background())
		require.NoError(t, err)
		require.Equal(t, devAddress, got)
	})

	t.Run("empty_key", func(t *testing.T) {
		t.Parallel()
		_, err := NewKeyedWallet("  ", nil)
		require.ErrorIs(t, err, auctionerrors.ErrNoWallet)
	})

	t.Run("garbage_key", func(t *testing.T) {
		t.Parallel()
		_, err := NewKeyedWallet("not-hex", nil)
		require.Error(t, err)
	})
}

func TestKeyedWallet_EnsureNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		want      uint64
		nodeID    int64
		nodeBig   *big.Int
		nodeErr   error
		expectRPC bool
		check     func(t *testing.T, err error)
	}{
		{
			name: "zero_never_enforces",
			want: 0,
			check: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "matching_chain", want: 11155111, nodeID: 11155111, expectRPC: true,
			check: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "mismatch", want: 1, nodeID: 11155111, expectRPC: true,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, auctionerrors.ErrNetworkMismatch)
				var mm *auctionerrors.NetworkMismatchError
				require.ErrorAs(t, err, &mm)
				require.Equal(t, uint64(1), mm.Want)
				require.Equal(t, "11155111", mm.Got.String())
			},
		},
		{
			name: "node_id_beyond_uint64", want: 1, nodeBig: new(big.Int).Lsh(big.NewInt(1), 64), expectRPC: true,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, auctionerrors.ErrNetworkMismatch)
				var mm *auctionerrors.NetworkMismatchError
				require.ErrorAs(t, err, &mm)
				require.Equal(t, "18446744073709551616", mm.Got.String())
				require.ErrorContains(t, err, "connected to chain 18446744073709551616, want chain 1")
			},
		},
		{
			name: "node_error", want: 1, nodeErr: errors.New("dial tcp: refused"), expectRPC: true,
			check: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "refused")
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			node := NewMockChainIDReader(ctrl)
			if tc.expectRPC {
				id := big.NewInt(tc.nodeID)
				if tc.nodeBig != nil {
					id = tc.nodeBig
				}
				node.EXPECT().ChainID(gomock.Any()).Return(id, tc.nodeErr)
			}
			w, err := NewKeyedWallet(devKey, node)
			require.NoError(t, err)
			tc.check(t, w.EnsureNetwork(context.Background(), tc.want))
		})
	}
}

func TestKeyedWallet_TransactOpts_CachesChainID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	node := NewMockChainIDReader(ctrl)
	node.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(31337), nil).Times(1)

	w, err := NewKeyedWallet(devKey, node)
	require.NoError(t, err)

	ctx := context.Background()
	opts, err := w.TransactOpts(ctx)
	require.NoError(t, err)
	require.Equal(t, devAddress, opts.From.Hex())
	require.Equal(t, ctx, opts.Context)

	require.NoError(t, w.EnsureNetwork(ctx, 31337))
}

func TestKeyedWallet_TransactOpts_NoNode(t *testing.T) {
	t.Parallel()
	w, err := NewKeyedWallet(devKey, nil)
	require.NoError(t, err)
	_, err = w.TransactOpts(context.Background())
	require.ErrorIs(t, err, auctionerrors.ErrNoContract)
}
