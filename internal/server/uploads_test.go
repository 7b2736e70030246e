package server

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadImage_OK(t *testing.T) {
	env := newTestEnv(t)

	body, ct := multipartBody(t, nil, "image", "photo.png", "image/png",
		bytes.Repeat([]byte{0x89}, 1024))
	w := env.doMultipart(t, http.MethodPost, "/api/admin/products/upload-image",
		body, ct, env.adminToken(t))
	requireStatus(t, w, http.StatusOK)

	url := decodeBody(t, w)["url"].(string)
	require.True(t, strings.HasPrefix(url, "/api/uploads/"))

	// the file must actually be on disk under the configured dir
	name := strings.TrimPrefix(url, "/api/uploads/")
	_, err := os.Stat(filepath.Join(env.cfg.Uploads.ImageDir, name))
	require.NoError(t, err)
}

func TestUploadImage_TooLarge(t *testing.T) {
	env := newTestEnv(t)

	body, ct := multipartBody(t, nil, "image", "big.png", "image/png",
		make([]byte, 6<<20))
	w := env.doMultipart(t, http.MethodPost, "/api/admin/products/upload-image",
		body, ct, env.adminToken(t))
	requireStatus(t, w, http.StatusBadRequest)
}

func TestUploadImage_WrongType(t *testing.T) {
	env := newTestEnv(t)

	body, ct := multipartBody(t, nil, "image", "notes.txt", "text/plain",
		[]byte("hello"))
	w := env.doMultipart(t, http.MethodPost, "/api/admin/products/upload-image",
		body, ct, env.adminToken(t))
	requireStatus(t, w, http.StatusBadRequest)
	require.Equal(t, "Only image files are allowed", decodeBody(t, w)["message"])
}

func TestUploadArchive_OK(t *testing.T) {
	env := newTestEnv(t)

	body, ct := multipartBody(t, nil, "file", "package.zip", "application/zip",
		[]byte("PK\x03\x04fake"))
	w := env.doMultipart(t, http.MethodPost, "/api/admin/upload-download",
		body, ct, env.adminToken(t))
	requireStatus(t, w, http.StatusOK)

	url := decodeBody(t, w)["url"].(string)
	require.True(t, strings.HasPrefix(url, "/downloads/"))
}

func TestUploadArchive_TooLarge(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Uploads.MaxArchiveBytes = 1 << 10

	body, ct := multipartBody(t, nil, "file", "package.zip", "application/zip",
		make([]byte, 2<<10))
	w := env.doMultipart(t, http.MethodPost, "/api/admin/upload-download",
		body, ct, env.adminToken(t))
	requireStatus(t, w, http.StatusBadRequest)
}

// A body larger than the limit plus form headroom must be rejected from
// its declared length, before anything is written under the download dir.
func TestUploadArchive_OversizedBodyRejectedEarly(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Uploads.MaxArchiveBytes = 1 << 10

	body, ct := multipartBody(t, nil, "file", "package.zip", "application/zip",
		make([]byte, 2<<20))
	w := env.doMultipart(t, http.MethodPost, "/api/admin/upload-download",
		body, ct, env.adminToken(t))
	requireStatus(t, w, http.StatusBadRequest)
	require.Contains(t, decodeBody(t, w)["message"], "File too large")

	entries, err := os.ReadDir(env.cfg.Uploads.DownloadDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// A renamed binary must be rejected even with a .zip extension.
func TestUploadArchive_RenamedExecutable(t *testing.T) {
	env := newTestEnv(t)

	body, ct := multipartBody(t, nil, "file", "setup.zip", "application/x-msdownload",
		[]byte("MZ fake"))
	w := env.doMultipart(t, http.MethodPost, "/api/admin/upload-download",
		body, ct, env.adminToken(t))
	requireStatus(t, w, http.StatusBadRequest)
	require.Equal(t, "Only .zip files can be uploaded", decodeBody(t, w)["message"])
}

func TestUploadArchive_WrongExtension(t *testing.T) {
	env := newTestEnv(t)

	body, ct := multipartBody(t, nil, "file", "package.rar", "application/zip",
		[]byte("Rar!"))
	w := env.doMultipart(t, http.MethodPost, "/api/admin/upload-download",
		body, ct, env.adminToken(t))
	requireStatus(t, w, http.StatusBadRequest)
}
