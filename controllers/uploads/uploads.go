package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Storage locations, installed from config at startup.
var (
	uploadDir  = "./uploads"
	publicPath = "/uploads"
)

// Configure sets the upload directory and the public URL prefix images
// are served under.
func Configure(dir, public string) {
	if dir != "" {
		uploadDir = dir
	}
	if public != "" {
		publicPath = public
	}
}

// Dir returns the configured upload directory for static serving.
func Dir() string {
	return uploadDir
}

// PublicPath returns the URL prefix the upload directory is served under.
func PublicPath() string {
	return publicPath
}

// SaveImage stores an uploaded file under uploadDir/subdir and returns
// its public URL. Filenames get a uuid prefix to avoid collisions.
func SaveImage(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	saveDir := filepath.Join(uploadDir, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%s_%s%s", uuid.NewString(), base, ext)
	savePath := filepath.Join(saveDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", publicPath, subdir, filename), nil
}
