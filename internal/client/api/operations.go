package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/proofpost/internal/client/models"
)

const (
	uploadEndpoint     = "contents/uploads"
	stepGroupsEndpoint = "step_groups"

	// uploadFileField is the multipart field name the upload endpoint expects.
	uploadFileField = "upload_file"
)

// Client is the typed operation surface the workflow layer depends on.
// Gateway implements it; tests provide fakes.
type Client interface {
	ListItems(ctx context.Context, projectID string, limit int) ([]models.Item, error)
	CreateItem(ctx context.Context, projectID, name string) (models.Item, error)
	UploadContent(ctx context.Context, content []byte, fileName string) (models.UploadedFile, error)
	PostComment(ctx context.Context, itemID, uploadUUID, text string) (Payload, error)
	ListStepGroups(ctx context.Context) (Payload, error)
}

// ListItems fetches the first page of a project's items with server-side
// sorting, most recently modified first. Items beyond the page limit are not
// visible; this client implements no deeper pagination.
func (g *Gateway) ListItems(ctx context.Context, projectID string, limit int) ([]models.Item, error) {
	endpoint := fmt.Sprintf("projects/%s/items?sort=modified&order=desc&limit=%d", projectID, limit)
	payload, err := g.Do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	recs := payload.Records()
	items := make([]models.Item, 0, len(recs))
	for _, rec := range recs {
		items = append(items, models.ItemFromRecord(rec))
	}
	return items, nil
}

// CreateItem creates a new item named name in the project. Success is keyed
// on an "id" field in the response; its absence on an otherwise-success
// status is a *MissingFieldError.
func (g *Gateway) CreateItem(ctx context.Context, projectID, name string) (models.Item, error) {
	endpoint := fmt.Sprintf("projects/%s/items", projectID)
	payload, err := g.Do(ctx, http.MethodPost, endpoint, models.CreateItemBody{Name: name})
	if err != nil {
		return models.Item{}, err
	}
	if payload.Kind != KindRecord {
		return models.Item{}, &MissingFieldError{Field: "id"}
	}

	item := models.ItemFromRecord(payload.Record)
	if item.ID == "" {
		return models.Item{}, &MissingFieldError{Field: "id"}
	}
	if item.Name == "" {
		item.Name = name
	}
	return item, nil
}

// UploadContent sends the binary payload with its original file name to the
// upload endpoint. Success requires both a success status and a "uuid" field
// in the response; the handle is never synthesized locally. Non-canonical
// handles are accepted with a warning since the token is opaque to us.
func (g *Gateway) UploadContent(ctx context.Context, content []byte, fileName string) (models.UploadedFile, error) {
	payload, err := g.DoMultipart(ctx, uploadEndpoint, uploadFileField, fileName, content)
	if err != nil {
		return models.UploadedFile{}, err
	}

	var handle string
	if payload.Kind == KindRecord {
		if v, ok := payload.Record["uuid"].(string); ok {
			handle = v
		}
	}
	if handle == "" {
		return models.UploadedFile{}, &MissingFieldError{Field: "uuid"}
	}
	if _, err := uuid.Parse(handle); err != nil {
		g.logger.Warn(ctx, "upload handle is not a canonical uuid", "uuid", handle)
	}

	return models.UploadedFile{UUID: handle, Name: fileName, SizeBytes: int64(len(content))}, nil
}

// PostComment submits a comment referencing the item and the upload handle.
// Preconditions on the ids are the caller's responsibility; this is a plain
// wire call.
func (g *Gateway) PostComment(ctx context.Context, itemID, uploadUUID, text string) (Payload, error) {
	endpoint := fmt.Sprintf("items/%s/comments", itemID)
	body := models.CommentBody{
		CommentText:    text,
		AttachmentFile: models.AttachmentRef{UUID: uploadUUID},
		Content:        text,
	}
	return g.Do(ctx, http.MethodPost, endpoint, body)
}

// ListStepGroups is the ad-hoc passthrough used by the operations panel.
func (g *Gateway) ListStepGroups(ctx context.Context) (Payload, error) {
	return g.Do(ctx, http.MethodGet, stepGroupsEndpoint, nil)
}
