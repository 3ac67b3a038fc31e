package entity

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataURI(mime string, payload []byte) string {
	return "data:image/" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestImageUpload_Decode_Success(t *testing.T) {
	upload := ImageUpload{
		Name: "photo.png",
		Data: dataURI("png", []byte("png-bytes")),
	}

	payload, err := upload.Decode()
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), payload.Bytes)
	assert.Equal(t, "png", payload.Extension)
	assert.Equal(t, "png", payload.MIMEType)
}

func TestImageUpload_Decode_ExtensionFallsBackToMIME(t *testing.T) {
	upload := ImageUpload{
		Name: "photo",
		Data: dataURI("jpeg", []byte("jpeg-bytes")),
	}

	payload, err := upload.Decode()
	require.NoError(t, err)
	assert.Equal(t, "jpeg", payload.Extension)
}

func TestImageUpload_Decode_RejectsNonImageURI(t *testing.T) {
	upload := ImageUpload{
		Name: "doc.pdf",
		Data: "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("%PDF")),
	}

	_, err := upload.Decode()
	assert.ErrorIs(t, err, ErrImageFormat)
}

func TestImageUpload_Decode_RejectsBadBase64(t *testing.T) {
	upload := ImageUpload{
		Name: "photo.jpg",
		Data: "data:image/jpeg;base64,not*valid*base64",
	}

	_, err := upload.Decode()
	assert.ErrorIs(t, err, ErrImageEncoding)
}

func TestImageUpload_Decode_SizeBoundary(t *testing.T) {
	atLimit := ImageUpload{
		Name: "photo.jpg",
		Data: dataURI("jpeg", make([]byte, MaxImageBytes)),
	}
	payload, err := atLimit.Decode()
	require.NoError(t, err)
	assert.Len(t, payload.Bytes, MaxImageBytes)

	overLimit := ImageUpload{
		Name: "photo.jpg",
		Data: dataURI("jpeg", make([]byte, MaxImageBytes+1)),
	}
	_, err = overLimit.Decode()
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestImageUpload_IsEmpty(t *testing.T) {
	assert.True(t, ImageUpload{}.IsEmpty())
	assert.True(t, ImageUpload{Name: "photo.jpg"}.IsEmpty())
	assert.True(t, ImageUpload{Data: "data:image/jpeg;base64,AA=="}.IsEmpty())
	assert.False(t, ImageUpload{Name: "photo.jpg", Data: "data:image/jpeg;base64,AA=="}.IsEmpty())
}

func TestImageUpload_Decode_NameIsSanitized(t *testing.T) {
	upload := ImageUpload{
		Name: "../../etc/passwd.jpg",
		Data: dataURI("jpeg", []byte("jpeg-bytes")),
	}

	payload, err := upload.Decode()
	require.NoError(t, err)
	assert.Equal(t, "jpg", payload.Extension)
	assert.False(t, strings.Contains(payload.Extension, "/"))
}
