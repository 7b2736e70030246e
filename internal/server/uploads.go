package server

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// badUpload marks uploads rejected for size or type, before any disk or
// database write.
type badUpload struct {
	msg string
}

func (e *badUpload) Error() string { return e.msg }

func respondUploadError(c *gin.Context, err error) {
	var bad *badUpload
	if errors.As(err, &bad) {
		respondError(c, http.StatusBadRequest, bad.msg, nil)
		return
	}
	respondError(c, http.StatusInternalServerError, "File upload failed", err.Error())
}

// bodySlack is the headroom left above the file size limit for the
// multipart framing and the non-file form fields.
const bodySlack = 1 << 20

// capBody rejects requests whose declared length already exceeds the
// limit, and caps the body reader so a chunked upload is cut off
// mid-stream instead of being spooled to disk first.
func (s *Server) capBody(c *gin.Context, limit int64, label string) {
	max := limit + bodySlack
	if c.Request.ContentLength > max {
		respondError(c, http.StatusBadRequest, fmt.Sprintf(
			"File too large. %s: %dMB", label, limit>>20), nil)
		c.Abort()
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
}

func (s *Server) limitImageBody(c *gin.Context) {
	s.capBody(c, s.cfg.Uploads.MaxImageBytes, "Maximum image size")
}

func (s *Server) limitArchiveBody(c *gin.Context) {
	s.capBody(c, s.cfg.Uploads.MaxArchiveBytes, "Maximum file size")
}

var imageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

var imageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var archiveMIMEs = map[string]bool{
	"application/zip":              true,
	"application/x-zip-compressed": true,
	"application/octet-stream":     true,
}

// uploadFilename builds a collision-resistant name preserving the
// original extension.
func uploadFilename(original string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(),
		uuid.NewString()[:8], strings.ToLower(filepath.Ext(original)))
}

// saveImage validates and persists a raster image, returning its public
// URL under the uploads path.
func (s *Server) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > s.cfg.Uploads.MaxImageBytes {
		return "", &badUpload{msg: fmt.Sprintf(
			"File too large. Maximum image size: %dMB", s.cfg.Uploads.MaxImageBytes>>20)}
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mime := file.Header.Get("Content-Type")
	if !imageExts[ext] || !imageMIMEs[mime] {
		return "", &badUpload{msg: "Only image files are allowed"}
	}

	name := uploadFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.Uploads.ImageDir, name)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return "/api/uploads/" + name, nil
}

// saveArchive validates and persists the downloadable zip package,
// returning its public URL under the downloads path. A .zip extension
// alone is not enough: a renamed binary with a non-zip MIME type is
// rejected.
func (s *Server) saveArchive(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > s.cfg.Uploads.MaxArchiveBytes {
		return "", &badUpload{msg: fmt.Sprintf(
			"File too large. Maximum file size: %dMB", s.cfg.Uploads.MaxArchiveBytes>>20)}
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mime := file.Header.Get("Content-Type")
	if ext != ".zip" || !archiveMIMEs[mime] {
		return "", &badUpload{msg: "Only .zip files can be uploaded"}
	}

	name := uploadFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.Uploads.DownloadDir, name)); err != nil {
		return "", fmt.Errorf("failed to save archive: %w", err)
	}
	return "/downloads/" + name, nil
}

func (s *Server) uploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image file provided", nil)
		return
	}

	url, err := s.saveImage(c, file)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) uploadArchive(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided. Please select a valid ZIP file.", nil)
		return
	}

	url, err := s.saveArchive(c, file)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
