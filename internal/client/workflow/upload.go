package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/proofpost/internal/client/models"
)

// UploadFile reads the file fully into memory, closes it, and uploads the
// content. Streaming and partial reads are out of scope; the handle is
// released before the network call begins.
func (w *Workflow) UploadFile(ctx context.Context, s *Session, path string) (models.UploadedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("read file: %w", err)
	}
	return w.UploadContent(ctx, s, content, filepath.Base(path))
}

// UploadContent sends the payload through the gateway and records the
// returned handle in the session. On any failure the previously established
// UploadedUUID is left untouched so the user can retry just this step.
func (w *Workflow) UploadContent(ctx context.Context, s *Session, content []byte, fileName string) (models.UploadedFile, error) {
	uploaded, err := w.api.UploadContent(ctx, content, fileName)
	if err != nil {
		return models.UploadedFile{}, err
	}

	s.MarkUploaded(uploaded)
	w.logger.Info(ctx, "file uploaded",
		"file", uploaded.Name, "size", uploaded.SizeBytes, "uuid", uploaded.UUID)
	return uploaded, nil
}
