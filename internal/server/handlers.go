package server

import (
	_ "embed"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayush078/content-sumarizer/internal/dispatch"
	"github.com/ayush078/content-sumarizer/internal/summarizer"
)

//go:embed index.html
var indexHTML string

var allowedVideoExts = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

func (s *Server) handlePrompts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prompts": summarizer.Options()})
}

// handleSummarize runs one complete summarization action. Actions are
// serialized: a second request waits until the current one finishes.
func (s *Server) handleSummarize(c *gin.Context) {
	ctx := c.Request.Context()

	if err := s.actions.acquire(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Request cancelled while waiting for a free slot."})
		return
	}
	defer s.actions.release()

	kind, err := dispatch.ParseInputKind(c.PostForm("kind"))
	if err != nil {
		s.metrics.observe("unknown", "invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a content type to summarize."})
		return
	}

	req := dispatch.Request{
		Kind:        kind,
		Instruction: c.PostForm("instruction"),
	}

	switch kind {
	case dispatch.KindVideoFile:
		fileHeader, err := c.FormFile("video")
		if err != nil {
			s.metrics.observe(kind.String(), "invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Upload a video file to begin analysis."})
			return
		}
		if !allowedVideoExts[strings.ToLower(filepath.Ext(fileHeader.Filename))] {
			s.metrics.observe(kind.String(), "invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported video format. Use MP4, MOV or AVI."})
			return
		}

		tmpPath, err := s.saveUpload(c, fileHeader)
		if err != nil {
			s.metrics.observe(kind.String(), "error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save video file: %v", err)})
			return
		}
		// The temp file must be gone on every exit path of this action.
		defer func() {
			if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
				s.logger.Warn(ctx, "Failed to remove temp upload %s: %v", tmpPath, err)
			}
		}()
		req.FilePath = tmpPath

	case dispatch.KindYouTubeURL, dispatch.KindWebsiteURL:
		url := strings.TrimSpace(c.PostForm("url"))
		if url == "" {
			s.metrics.observe(kind.String(), "invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Enter a URL to summarize."})
			return
		}
		req.URL = url
	}

	summary, err := s.dispatcher.Summarize(ctx, req)
	if err != nil {
		s.renderError(c, kind, err)
		return
	}

	s.metrics.observe(kind.String(), "ok")
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

type exportRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary" binding:"required"`
}

// handleExport converts a summary the client already holds into a docx
// download. Nothing is persisted server-side.
func (s *Server) handleExport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide the summary text to export."})
		return
	}
	if req.Title == "" {
		req.Title = "Summary"
	}

	tmpPath := filepath.Join(s.tempDir, fmt.Sprintf("export-%d.docx", time.Now().UnixNano()))
	if err := summarizer.SummaryToDocx(req.Title, req.Summary, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to build document: %v", err)})
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			s.logger.Warn(c.Request.Context(), "Failed to remove export file %s: %v", tmpPath, err)
		}
	}()

	c.FileAttachment(tmpPath, "summary.docx")
}

// saveUpload writes the multipart upload into the temp dir under a unique
// name, keeping the original extension for MIME detection.
func (s *Server) saveUpload(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("upload-%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(fileHeader.Filename)))
	tmpPath := filepath.Join(s.tempDir, name)
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		return "", err
	}
	return tmpPath, nil
}

// renderError maps the dispatcher's error taxonomy onto HTTP statuses and
// user-visible banners.
func (s *Server) renderError(c *gin.Context, kind dispatch.InputKind, err error) {
	de, ok := dispatch.AsError(err)
	if !ok {
		s.metrics.observe(kind.String(), "error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("An unexpected error occurred: %v", err)})
		return
	}

	var status int
	var outcome string
	switch de.Category {
	case dispatch.CategoryInputInvalid:
		status, outcome = http.StatusBadRequest, "invalid"
	case dispatch.CategoryExtractionFailed:
		status, outcome = http.StatusUnprocessableEntity, "extraction_failed"
	case dispatch.CategoryRemoteMediaFailed:
		status, outcome = http.StatusBadGateway, "media_failed"
	default:
		status, outcome = http.StatusBadGateway, "remote_failed"
	}

	s.metrics.observe(kind.String(), outcome)
	c.JSON(status, gin.H{"error": de.Message})
}
