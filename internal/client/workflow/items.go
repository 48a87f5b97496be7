package workflow

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/proofpost/internal/client/api"
	"github.com/dmitrijs2005/proofpost/internal/client/models"
	"github.com/dmitrijs2005/proofpost/internal/common"
	"github.com/dmitrijs2005/proofpost/internal/logging"
)

// DefaultPageLimit is the item list page size requested from the service.
// Items beyond the first page are not visible to this client.
const DefaultPageLimit = 100

// Options carries the workflow policies that are configurable per session.
type Options struct {
	// PageLimit bounds the item list fetch; zero means DefaultPageLimit.
	PageLimit int
	// ClearUploadAfterPost resets the pending upload handle after a
	// successful comment post, forcing a fresh upload for the next comment.
	// Off by default: a session may reuse the same upload.
	ClearUploadAfterPost bool
}

// Workflow drives the orchestration steps against the remote service. It is
// the single writer of the Session passed to its methods.
type Workflow struct {
	api     api.Client
	locator *Locator
	logger  logging.Logger

	pageLimit            int
	clearUploadAfterPost bool
}

func New(client api.Client, locator *Locator, logger logging.Logger, opts Options) *Workflow {
	if opts.PageLimit <= 0 {
		opts.PageLimit = DefaultPageLimit
	}
	return &Workflow{
		api:                  client,
		locator:              locator,
		logger:               logger,
		pageLimit:            opts.PageLimit,
		clearUploadAfterPost: opts.ClearUploadAfterPost,
	}
}

// FetchItems reloads the item cache for the session's project, replacing the
// previous list wholesale. An empty project id is a no-op, not an error, and
// issues no remote call. An empty result is surfaced as a warning; the
// workflow can still proceed by creating an item.
func (w *Workflow) FetchItems(ctx context.Context, s *Session) ([]models.Item, error) {
	if s.ProjectID == "" {
		return nil, nil
	}

	items, err := w.api.ListItems(ctx, s.ProjectID, w.pageLimit)
	if err != nil {
		return nil, err
	}

	s.ReplaceItems(items)
	if len(items) == 0 {
		w.logger.Warn(ctx, "no items found", "project_id", s.ProjectID)
	}
	return items, nil
}

// CreateItem always issues a create call using jobID as the new item's name,
// even when an item with that name already exists; the service does not
// enforce name uniqueness and neither do we. Callers that want idempotency
// use EnsureItem. On success the new item is selected and the cache is
// flagged stale until the next fetch.
func (w *Workflow) CreateItem(ctx context.Context, s *Session, jobID string) (models.Item, error) {
	if s.ProjectID == "" {
		return models.Item{}, common.ErrNoProjectSelected
	}
	if jobID == "" {
		return models.Item{}, fmt.Errorf("job id is required")
	}

	item, err := w.api.CreateItem(ctx, s.ProjectID, jobID)
	if err != nil {
		return models.Item{}, err
	}

	s.MarkCreated(item)
	w.logger.Info(ctx, "item created", "item_id", item.ID, "name", item.Name)
	return item, nil
}

// EnsureItem is the opt-in check-then-create variant: it returns the cached
// item whose name equals jobID when one exists, creating only on a miss.
// With duplicate names the most recently modified match wins, since the
// cache keeps the server's ordering.
func (w *Workflow) EnsureItem(ctx context.Context, s *Session, jobID string) (models.Item, error) {
	for _, it := range s.Items {
		if it.Name == jobID {
			if err := s.SelectItem(it.ID); err != nil {
				return models.Item{}, err
			}
			return it, nil
		}
	}
	return w.CreateItem(ctx, s, jobID)
}
