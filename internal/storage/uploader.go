package storage

import (
	"context"
	"mime/multipart"

	"github.com/yrfilms/studio-backend/internal/httperr"
)

const MaxUploadSize = 10 << 20 // 10 MB

// allowedTypes maps accepted declared content types to the extension used
// for the stored object key.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type UploadResult struct {
	URL    string
	Key    string
	Thumb  string
	Width  int
	Height int
}

// Uploader relays image files to the external asset host.
type Uploader interface {
	// Store uploads the file under the given folder and returns the
	// public URL plus the deletion handle (object key).
	Store(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error)

	// Remove deletes a previously stored object. Callers treat failures
	// as best-effort: they log and move on.
	Remove(ctx context.Context, key string) error
}

// ValidateFile checks the declared content type and size before any bytes
// are sent to the asset host.
func ValidateFile(file *multipart.FileHeader) error {
	if file.Size > MaxUploadSize {
		return httperr.ErrBusiness("file_too_large")
	}
	if _, ok := allowedTypes[file.Header.Get("Content-Type")]; !ok {
		return httperr.ErrBusiness("invalid_file_type")
	}
	return nil
}
