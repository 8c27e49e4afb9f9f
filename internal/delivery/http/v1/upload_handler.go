package v1

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"sunnyside-backend/pkg/storage"
	"sunnyside-backend/pkg/utils"
)

var (
	allowedMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
		".gif":  true,
	}
)

type UploadHandler struct {
	storage       *storage.R2Storage
	maxUploadSize int64
}

func NewUploadHandler(s *storage.R2Storage, maxUploadSizeMB int64) *UploadHandler {
	return &UploadHandler{
		storage:       s,
		maxUploadSize: maxUploadSizeMB << 20, // Convert MB to bytes
	}
}

func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		utils.WriteError(w, http.StatusServiceUnavailable, "Image storage not configured")
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		log.Printf("Upload Error: ParseMultipartForm failed: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "File too large or invalid format")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Printf("Upload Error: FormFile failed: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "Invalid file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		log.Printf("Upload Error: Invalid MIME type: %s", contentType)
		utils.WriteError(w, http.StatusBadRequest, "Invalid file type. Allowed: JPEG, PNG, WebP, GIF")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		log.Printf("Upload Error: Invalid extension: %s", ext)
		utils.WriteError(w, http.StatusBadRequest, "Invalid file extension")
		return
	}

	// Resize + WebP conversion before storage
	processedData, newContentType, err := utils.ProcessImage(file, header.Filename)
	if err != nil {
		log.Printf("Image Processing Error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to process image")
		return
	}

	baseName := strings.TrimSuffix(header.Filename, ext)
	url, err := h.storage.UploadBuffer(r.Context(), processedData, newContentType, baseName)
	if err != nil {
		log.Printf("Storage Upload Error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"url": url,
	})
}
