// Package service defines interfaces for domain services.
package service

import "context"

// ImageStore abstracts the blob storage holding product and category images.
// Keys are relative object names like "produits/produit_1712_ab12cd.jpg".
type ImageStore interface {
	// Put writes an image under the given key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Delete removes the object at key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is present at key.
	Exists(ctx context.Context, key string) (bool, error)

	// PublicURL renders the browser-facing URL for a stored object.
	PublicURL(key string) string
}
