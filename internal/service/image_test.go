package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (f *fakeStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.key = key
	f.contentType = contentType
	f.body, _ = io.ReadAll(body)
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image_file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["image_file"][0]
}

func TestUploadRecipeImage(t *testing.T) {
	store := &fakeStore{}
	svc := NewImageService(store)

	url, err := svc.UploadRecipeImage(context.Background(), makeFileHeader(t, "dish.PNG", "imagedata"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(store.key, "recipes/"))
	assert.True(t, strings.HasSuffix(store.key, ".png"), "extension preserved lowercased: %s", store.key)
	assert.Equal(t, []byte("imagedata"), store.body)
	assert.Equal(t, "https://cdn.example.com/"+store.key, url)
}

func TestUploadRecipeImageDefaultsExtension(t *testing.T) {
	store := &fakeStore{}
	svc := NewImageService(store)

	_, err := svc.UploadRecipeImage(context.Background(), makeFileHeader(t, "photo", "imagedata"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(store.key, ".jpg"), "missing extension defaults to jpg: %s", store.key)
}

func TestUploadRecipeImageUniqueKeys(t *testing.T) {
	store := &fakeStore{}
	svc := NewImageService(store)

	url1, err := svc.UploadRecipeImage(context.Background(), makeFileHeader(t, "a.jpg", "x"))
	require.NoError(t, err)
	url2, err := svc.UploadRecipeImage(context.Background(), makeFileHeader(t, "a.jpg", "x"))
	require.NoError(t, err)
	assert.NotEqual(t, url1, url2)
}

func TestUploadRecipeImageStoreFailure(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	svc := NewImageService(store)

	_, err := svc.UploadRecipeImage(context.Background(), makeFileHeader(t, "a.jpg", "x"))
	assert.Error(t, err)
}
