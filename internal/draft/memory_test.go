package draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := map[string]string{"productName": "Sambal Bawang Mbok Jum"}
	require.NoError(t, store.Save(ctx, "sesi-1", KeyProductData, in))

	var out map[string]string
	require.NoError(t, store.Load(ctx, "sesi-1", KeyProductData, &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()

	var out map[string]string
	err := store.Load(context.Background(), "sesi-1", KeySelectedProblem, &out)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestMemoryStoreSessionIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sesi-a", KeyProductData, "milik a"))

	var out string
	err := store.Load(ctx, "sesi-b", KeyProductData, &out)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sesi-1", KeyProductData, "lama"))
	require.NoError(t, store.Save(ctx, "sesi-1", KeyProductData, "baru"))

	var out string
	require.NoError(t, store.Load(ctx, "sesi-1", KeyProductData, &out))
	assert.Equal(t, "baru", out)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sesi-1", KeyPreviewResults, "cache"))
	require.NoError(t, store.Delete(ctx, "sesi-1", KeyPreviewResults))

	var out string
	assert.ErrorIs(t, store.Load(ctx, "sesi-1", KeyPreviewResults, &out), ErrMissingKey)

	// delete pada key yang sudah tidak ada tetap aman
	assert.NoError(t, store.Delete(ctx, "sesi-1", KeyPreviewResults))
}
