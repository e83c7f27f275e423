package usecase

import (
	"fmt"
	"mime/multipart"

	"streamtube/pkg/s3"

	"github.com/google/uuid"
)

// uploadToS3 streams a multipart upload under folder with a generated key
// and returns the public URL.
func uploadToS3(s3Client *s3.Client, folder string, file *multipart.FileHeader, fallbackContentType string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallbackContentType
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), getFileExtension(file.Filename))
	return s3Client.UploadFile(key, src, contentType)
}

func getFileExtension(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}
