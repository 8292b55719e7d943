package utils

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"lms/config"

	"github.com/google/uuid"
)

// Upload subdirectories by asset type. URLs are built by appending the stored
// filename to the public mount point plus one of these.
const (
	ProfileDir   = "profiles"
	ThumbnailDir = "course_thumbnails"
	VideoDir     = "course_videos"
	DocumentDir  = "course_documents"
)

// SaveUploadedFile stores an uploaded file under the given asset subdirectory
// with a generated name and returns the stored filename.
func SaveUploadedFile(file *multipart.FileHeader, subDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.New().String() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

// DeleteUploadedFile removes a stored file. Best-effort: failures are logged
// and never surfaced, it is used on cleanup paths after a failed DB write.
func DeleteUploadedFile(subDir, filename string) {
	if filename == "" {
		return
	}
	path := filepath.Join(config.AppConfig.UploadDir, subDir, filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove uploaded file %s: %v", path, err)
	}
}

// FileURL builds the public URL for a stored filename
func FileURL(subDir, filename string) string {
	if filename == "" {
		return ""
	}
	return config.AppConfig.BaseURL + "/uploads/" + subDir + "/" + filename
}
