package workflow

import (
	"context"

	"github.com/dmitrijs2005/proofpost/internal/client/api"
	"github.com/dmitrijs2005/proofpost/internal/client/models"
	"github.com/dmitrijs2005/proofpost/internal/common"
)

// testItemName is the fixed name used by the ad-hoc operations panel.
const testItemName = "FFGSTESTAPI"

// PostComment posts text to the selected item with the pending upload handle
// attached. Both the item id and the handle must be present; violations are
// local precondition errors and never reach the wire. A successful post
// keeps the handle reusable unless the clear-after-post policy is on.
func (w *Workflow) PostComment(ctx context.Context, s *Session, text string) (api.Payload, error) {
	if s.SelectedItemID == "" {
		return api.Payload{}, common.ErrNoItemSelected
	}
	if s.UploadedUUID == "" {
		return api.Payload{}, common.ErrNoUploadUUID
	}

	payload, err := w.api.PostComment(ctx, s.SelectedItemID, s.UploadedUUID, text)
	if err != nil {
		return payload, err
	}

	s.MarkCommentPosted(w.clearUploadAfterPost)
	w.logger.Info(ctx, "comment posted", "item_id", s.SelectedItemID)
	return payload, nil
}

// ListStepGroups is the ad-hoc passthrough for the operations panel.
func (w *Workflow) ListStepGroups(ctx context.Context) (api.Payload, error) {
	return w.api.ListStepGroups(ctx)
}

// CreateTestItem creates the fixed smoke-test item in the current project.
func (w *Workflow) CreateTestItem(ctx context.Context, s *Session) (models.Item, error) {
	return w.CreateItem(ctx, s, testItemName)
}
