// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"time"

	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"
	"faranah/internal/domain/service"
	"faranah/internal/util"

	"github.com/pkg/errors"
)

// Object key prefixes of the image store, one folder per kind.
const (
	productImagePrefix  = "produits"
	categoryImagePrefix = "categories"

	// Stored file name bases, e.g. "produit_1712_ab12cd34.jpg".
	productImageBase  = "produit"
	categoryImageBase = "categorie"

	imageNameSuffixLen = 20
)

// imageKey renders the bucket object key of a stored image name.
func imageKey(prefix, name string) string {
	return prefix + "/" + name
}

// resolveImageURL renders the public URL of a stored image, falling back to
// the shared placeholder when the name is empty or the object is gone.
func resolveImageURL(ctx context.Context, store service.ImageStore, prefix, name string) string {
	if name == "" || name == entity.DefaultImageName {
		return store.PublicURL(entity.DefaultImageName)
	}

	exists, err := store.Exists(ctx, imageKey(prefix, name))
	if err != nil || !exists {
		return store.PublicURL(entity.DefaultImageName)
	}

	return store.PublicURL(imageKey(prefix, name))
}

// storeImageUpload decodes and persists an upload, returning the generated
// stored name.
func storeImageUpload(ctx context.Context, store service.ImageStore, prefix, base string, upload entity.ImageUpload) (string, error) {
	payload, err := upload.Decode()
	if err != nil {
		return "", domainerrors.ErrInvalidImage.WrapMessage(err.Error())
	}

	name := fmt.Sprintf("%s_%d_%s.%s", base, time.Now().Unix(), util.RandomString(imageNameSuffixLen), payload.Extension)
	contentType := "image/" + payload.MIMEType

	if err := store.Put(ctx, imageKey(prefix, name), payload.Bytes, contentType); err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	return name, nil
}

// deleteStoredImage removes a stored image. The shared placeholder is never
// deleted.
func deleteStoredImage(ctx context.Context, store service.ImageStore, prefix, name string) error {
	if name == "" || name == entity.DefaultImageName {
		return nil
	}

	return store.Delete(ctx, imageKey(prefix, name))
}
