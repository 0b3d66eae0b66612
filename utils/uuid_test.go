package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	existing := uuid.NewString()
	require.Equal(t, existing, RequestID(existing))

	for _, in := range []string{"", "not-a-uuid", "123"} {
		got := RequestID(in)
		require.NotEqual(t, in, got)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
	}
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("debug"))
	require.Error(t, SetLevel("loud"))
	require.NoError(t, SetLevel("info"))
}
