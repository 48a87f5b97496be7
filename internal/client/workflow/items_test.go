package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/proofpost/internal/client/api"
	"github.com/dmitrijs2005/proofpost/internal/client/models"
	"github.com/dmitrijs2005/proofpost/internal/logging"
)

// fakeClient records gateway invocations so tests can assert that
// precondition violations never reach the wire.
type fakeClient struct {
	calls []string

	items   []models.Item
	listErr error

	created   models.Item
	createErr error

	uploaded  models.UploadedFile
	uploadErr error

	postPayload api.Payload
	postErr     error

	lastPostItemID string
	lastPostUUID   string
	lastPostText   string
}

func (f *fakeClient) ListItems(ctx context.Context, projectID string, limit int) ([]models.Item, error) {
	f.calls = append(f.calls, "list")
	return f.items, f.listErr
}

func (f *fakeClient) CreateItem(ctx context.Context, projectID, name string) (models.Item, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return models.Item{}, f.createErr
	}
	if f.created.ID != "" {
		return f.created, nil
	}
	return models.Item{ID: "new-id", Name: name}, nil
}

func (f *fakeClient) UploadContent(ctx context.Context, content []byte, fileName string) (models.UploadedFile, error) {
	f.calls = append(f.calls, "upload")
	if f.uploadErr != nil {
		return models.UploadedFile{}, f.uploadErr
	}
	if f.uploaded.UUID != "" {
		return f.uploaded, nil
	}
	return models.UploadedFile{UUID: "fake-uuid", Name: fileName, SizeBytes: int64(len(content))}, nil
}

func (f *fakeClient) PostComment(ctx context.Context, itemID, uploadUUID, text string) (api.Payload, error) {
	f.calls = append(f.calls, "post")
	f.lastPostItemID = itemID
	f.lastPostUUID = uploadUUID
	f.lastPostText = text
	return f.postPayload, f.postErr
}

func (f *fakeClient) ListStepGroups(ctx context.Context) (api.Payload, error) {
	f.calls = append(f.calls, "steps")
	return api.Payload{Kind: api.KindList}, nil
}

func newTestWorkflow(fake *fakeClient, opts Options) *Workflow {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(fake, &Locator{Dir: "testdata-nonexistent"}, logger, opts)
}

func TestFetchItems_EmptyProjectIsSilentNoOp(t *testing.T) {
	fake := &fakeClient{}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}

	items, err := w.FetchItems(context.Background(), s)
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.Empty(t, fake.calls, "no gateway call expected for empty project id")
}

func TestFetchItems_ReplacesCacheWholesale(t *testing.T) {
	fake := &fakeClient{items: []models.Item{
		{ID: "3", Name: "newest"},
		{ID: "2", Name: "older"},
	}}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")
	s.Items = []models.Item{{ID: "stale-1"}, {ID: "stale-2"}, {ID: "stale-3"}}

	items, err := w.FetchItems(context.Background(), s)
	require.NoError(t, err)

	require.Len(t, s.Items, 2)
	assert.Equal(t, "3", s.Items[0].ID, "server ordering must be preserved")
	assert.Equal(t, "2", s.Items[1].ID)
	assert.Equal(t, items, s.Items)
	assert.Equal(t, StageItemsLoaded, s.Stage())
}

func TestFetchItems_EmptyResultIsNotAnError(t *testing.T) {
	fake := &fakeClient{items: []models.Item{}}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")

	items, err := w.FetchItems(context.Background(), s)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchItems_ErrorLeavesCacheIntact(t *testing.T) {
	fake := &fakeClient{listErr: errors.New("boom")}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")
	s.Items = []models.Item{{ID: "1"}}

	_, err := w.FetchItems(context.Background(), s)
	require.Error(t, err)
	assert.Len(t, s.Items, 1, "failed fetch must not clear the cache")
}

func TestCreateItem_SetsRefreshPendingAndLastCreated(t *testing.T) {
	fake := &fakeClient{created: models.Item{ID: "999", Name: "JOB-42"}}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")

	item, err := w.CreateItem(context.Background(), s, "JOB-42")
	require.NoError(t, err)

	assert.Equal(t, "999", item.ID)
	assert.Equal(t, "999", s.LastCreatedItemID)
	assert.Equal(t, "999", s.SelectedItemID)
	assert.True(t, s.RefreshPending)

	// the following fetch includes the new item and clears the flag
	fake.items = []models.Item{{ID: "999", Name: "JOB-42"}}
	items, err := w.FetchItems(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "999", items[0].ID)
	assert.False(t, s.RefreshPending)
}

func TestCreateItem_RequiresProject(t *testing.T) {
	fake := &fakeClient{}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}

	_, err := w.CreateItem(context.Background(), s, "JOB-42")
	require.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestCreateItem_AlwaysCreatesEvenOnNameMatch(t *testing.T) {
	fake := &fakeClient{created: models.Item{ID: "1000", Name: "JOB-42"}}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")
	s.ReplaceItems([]models.Item{{ID: "999", Name: "JOB-42"}})

	item, err := w.CreateItem(context.Background(), s, "JOB-42")
	require.NoError(t, err)
	assert.Equal(t, "1000", item.ID)
	assert.Contains(t, fake.calls, "create")
}

func TestEnsureItem_ReusesCachedMatch(t *testing.T) {
	fake := &fakeClient{}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")
	s.ReplaceItems([]models.Item{
		{ID: "12", Name: "JOB-42"},
		{ID: "11", Name: "JOB-42"}, // duplicate name, older
	})

	item, err := w.EnsureItem(context.Background(), s, "JOB-42")
	require.NoError(t, err)
	assert.Equal(t, "12", item.ID, "most recently modified duplicate wins")
	assert.Equal(t, "12", s.SelectedItemID)
	assert.NotContains(t, fake.calls, "create")
}

func TestEnsureItem_CreatesOnMiss(t *testing.T) {
	fake := &fakeClient{created: models.Item{ID: "77", Name: "JOB-NEW"}}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")
	s.ReplaceItems([]models.Item{{ID: "1", Name: "other"}})

	item, err := w.EnsureItem(context.Background(), s, "JOB-NEW")
	require.NoError(t, err)
	assert.Equal(t, "77", item.ID)
	assert.Contains(t, fake.calls, "create")
}

func TestCreateTestItem_UsesFixedName(t *testing.T) {
	fake := &fakeClient{}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")

	item, err := w.CreateTestItem(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "FFGSTESTAPI", item.Name)
}
