// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

// Image validation errors, surfaced to clients as 422 responses.
var (
	// ErrImageFormat is returned when the payload is not a data:image/(jpeg|png|jpg);base64 URI.
	ErrImageFormat = errors.New("invalid image format")
	// ErrImageEncoding is returned when the base64 body cannot be decoded.
	ErrImageEncoding = errors.New("image payload is not valid base64")
	// ErrImageTooLarge is returned when the decoded payload exceeds MaxImageBytes.
	ErrImageTooLarge = errors.New("image exceeds the 5 MiB limit")
)

// MaxImageBytes caps decoded upload size. Exactly this many bytes is
// accepted; one more is rejected.
const MaxImageBytes = 5 * 1024 * 1024

// DefaultImageName is the shared placeholder object. It is served when a
// product or category has no image of its own and must never be deleted.
const DefaultImageName = "defaut.jpg"

// dataURIPattern matches the accepted inline image payload format.
var dataURIPattern = regexp.MustCompile(`^data:image/(jpeg|png|jpg);base64,(.+)$`)

// ImageUpload is an inline image submission: a client file name plus a
// base64 data URI. The zero value means "no image provided".
type ImageUpload struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// ImagePayload is a decoded, validated upload ready for the blob store.
type ImagePayload struct {
	Bytes     []byte // Raw decoded image bytes.
	Extension string // File extension taken from the submitted name, e.g. "jpg".
	MIMEType  string // Image subtype from the data URI, e.g. "png".
}

// IsEmpty reports whether no image was submitted.
func (u ImageUpload) IsEmpty() bool {
	return u.Name == "" || u.Data == ""
}

// Decode validates and decodes the data URI.
// It fails when the MIME prefix is not an accepted image type, the base64
// body does not decode, or the decoded payload exceeds MaxImageBytes.
func (u ImageUpload) Decode() (*ImagePayload, error) {
	matches := dataURIPattern.FindStringSubmatch(u.Data)
	if matches == nil {
		return nil, ErrImageFormat
	}

	raw, err := base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return nil, ErrImageEncoding
	}

	if len(raw) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(u.Name)), ".")
	if ext == "" {
		ext = matches[1]
	}

	return &ImagePayload{
		Bytes:     raw,
		Extension: ext,
		MIMEType:  matches[1],
	}, nil
}
