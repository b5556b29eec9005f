package storage

import (
	"encoding/base64"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/thanhpk/randstr"
)

// Uploaded images live on local disk and are served back under /uploads.

func UploadsDir() string {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func InitializeUploads() {
	if err := os.MkdirAll(UploadsDir(), 0o755); err != nil {
		log.Panic("error creating uploads directory: " + err.Error())
	}
}

// SaveUpload writes a multipart file under the uploads dir with a random
// name and returns the public path.
func SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := randstr.Hex(16) + ext

	dst, err := os.Create(filepath.Join(UploadsDir(), name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// SaveBase64Image decodes a data-URL (or bare base64) image and stores it
// like SaveUpload.
func SaveBase64Image(base64ImageSrc string) (string, error) {
	payload := base64ImageSrc
	if i := strings.Index(base64ImageSrc, ","); i != -1 {
		payload = base64ImageSrc[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", err
	}

	name := randstr.Hex(16) + ".jpg"
	if err := os.WriteFile(filepath.Join(UploadsDir(), name), data, 0o644); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// DeleteUpload removes a stored file by its public path. Failures are
// logged, never surfaced; the database record is the source of truth.
func DeleteUpload(publicPath string) {
	name := strings.TrimPrefix(publicPath, "/uploads/")
	if name == "" || strings.Contains(name, "/") {
		return
	}
	if err := os.Remove(filepath.Join(UploadsDir(), name)); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to delete upload %s: %v", publicPath, err)
	}
}
