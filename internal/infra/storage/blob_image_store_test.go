package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_PutAndExists(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStore(bucket, "http://localhost:8080/storage")
	ctx := context.Background()

	err := store.Put(ctx, "produits/produit_1_abc.jpg", []byte("fake-jpeg"), "image/jpeg")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "produits/produit_1_abc.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(ctx, "produits/missing.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobImageStore_Delete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStore(bucket, "http://localhost:8080/storage")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "categories/categorie_1_abc.png", []byte("fake-png"), "image/png"))
	require.NoError(t, store.Delete(ctx, "categories/categorie_1_abc.png"))

	exists, err := store.Exists(ctx, "categories/categorie_1_abc.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing object is not an error.
	assert.NoError(t, store.Delete(ctx, "categories/categorie_1_abc.png"))
}

func TestBlobImageStore_PublicURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStore(bucket, "http://localhost:8080/storage/")

	assert.Equal(t,
		"http://localhost:8080/storage/produits/produit_1_abc.jpg",
		store.PublicURL("produits/produit_1_abc.jpg"),
	)
}
