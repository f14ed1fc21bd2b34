package media

import (
	"context"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// genaiFileService adapts *genai.Client to the FileService interface.
type genaiFileService struct {
	client *genai.Client
}

func (s *genaiFileService) Upload(ctx context.Context, path string) (*genai.File, error) {
	return s.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: mimeForVideo(path),
	})
}

func (s *genaiFileService) Get(ctx context.Context, name string) (*genai.File, error) {
	return s.client.Files.Get(ctx, name, nil)
}

// mimeForVideo maps the supported upload extensions to their MIME types.
func mimeForVideo(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mov":
		return "video/quicktime"
	case ".avi":
		return "video/x-msvideo"
	default:
		return "video/mp4"
	}
}
