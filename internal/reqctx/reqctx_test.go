package reqctx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestContext_RoundTrip(t *testing.T) {
	ctx := WithRequestContext(context.Background(), 7)

	rc := GetRequestContext(ctx)
	require.Equal(t, 7, rc.Page)
	require.Len(t, rc.RequestID, 16)
}

func TestRequestContext_Missing(t *testing.T) {
	rc := GetRequestContext(context.Background())
	require.Equal(t, "unknown", rc.RequestID)
}

func TestNewRequestError_Unwraps(t *testing.T) {
	cause := errors.New("boom")
	ctx := WithRequestContext(context.Background(), 3)

	err := NewRequestError(ctx, cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "page=3")
}
