package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var allowedImages = map[string][]string{
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
	".webp": {"image/webp"},
}

// UploadImage stores the multipart "image" file under the upload directory.
// Both the extension and the sniffed content type must be an allowed image.
func (h *Handler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("No image file provided"))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mimes, ok := allowedImages[ext]
	if !ok {
		return c.JSON(http.StatusBadRequest, errorBody("Images only"))
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Failed to read image"))
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil || !detected.Is(mimes[0]) {
		return c.JSON(http.StatusBadRequest, errorBody("Images only"))
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to read image"))
	}

	if err := os.MkdirAll(h.opts.UploadDir, 0o755); err != nil {
		h.log.Error().Err(err).Str("dir", h.opts.UploadDir).Msg("create upload dir")
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to store image"))
	}

	name := fmt.Sprintf("image-%s%s", uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(h.opts.UploadDir, name))
	if err != nil {
		h.log.Error().Err(err).Str("file", name).Msg("create upload file")
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to store image"))
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		h.log.Error().Err(err).Str("file", name).Msg("write upload file")
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to store image"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Image uploaded successfully",
		"image":   "/uploads/" + name,
	})
}
