package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/proofpost/internal/client/models"
	"github.com/dmitrijs2005/proofpost/internal/common"
)

func TestPostComment_PreconditionsNeverReachTheWire(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(s *Session)
		expected error
	}{
		{
			name:     "no item selected",
			prepare:  func(s *Session) { s.UploadedUUID = "u-1" },
			expected: common.ErrNoItemSelected,
		},
		{
			name: "no upload handle",
			prepare: func(s *Session) {
				s.ReplaceItems([]models.Item{{ID: "1", Name: "x"}})
				_ = s.SelectItem("1")
			},
			expected: common.ErrNoUploadUUID,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeClient{}
			w := newTestWorkflow(fake, Options{})
			s := &Session{}
			s.SelectProject("185690")
			tc.prepare(s)

			_, err := w.PostComment(context.Background(), s, "text")
			assert.ErrorIs(t, err, tc.expected)
			assert.Empty(t, fake.calls, "precondition violations must not invoke the gateway")
		})
	}
}

func TestPostComment_ProjectSwitchRequiresNewSelection(t *testing.T) {
	fake := &fakeClient{items: []models.Item{{ID: "2", Name: "other"}}}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")
	s.ReplaceItems([]models.Item{{ID: "1", Name: "Report A"}})
	require.NoError(t, s.SelectItem("1"))
	s.MarkUploaded(models.UploadedFile{UUID: "handle-1"})

	s.SelectProject("181437")
	_, err := w.FetchItems(context.Background(), s)
	require.NoError(t, err)

	// item 1 belongs to the previous project; a post without reselecting
	// must stay local
	_, err = w.PostComment(context.Background(), s, "text")
	assert.ErrorIs(t, err, common.ErrNoItemSelected)
	assert.NotContains(t, fake.calls, "post")

	require.NoError(t, s.SelectItem("2"))
	_, err = w.PostComment(context.Background(), s, "text")
	require.NoError(t, err)
	assert.Equal(t, "2", fake.lastPostItemID)
}

func TestPostComment_AttachesPendingHandle(t *testing.T) {
	fake := &fakeClient{}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")
	s.ReplaceItems([]models.Item{{ID: "12345", Name: "Report A"}})
	require.NoError(t, s.SelectItem("12345"))
	s.MarkUploaded(models.UploadedFile{UUID: "handle-7"})

	_, err := w.PostComment(context.Background(), s, "please review")
	require.NoError(t, err)

	assert.Equal(t, "12345", fake.lastPostItemID)
	assert.Equal(t, "handle-7", fake.lastPostUUID)
	assert.Equal(t, "please review", fake.lastPostText)
	assert.Equal(t, StageCommentPosted, s.Stage())
}

func TestPostComment_HandleReusableByDefault(t *testing.T) {
	fake := &fakeClient{}
	w := newTestWorkflow(fake, Options{})
	s := &Session{}
	s.SelectProject("185690")
	s.ReplaceItems([]models.Item{{ID: "1", Name: "x"}})
	require.NoError(t, s.SelectItem("1"))
	s.MarkUploaded(models.UploadedFile{UUID: "keep-me"})

	_, err := w.PostComment(context.Background(), s, "first")
	require.NoError(t, err)
	assert.Equal(t, "keep-me", s.UploadedUUID)

	_, err = w.PostComment(context.Background(), s, "second")
	require.NoError(t, err)
	assert.Equal(t, "keep-me", fake.lastPostUUID)
}

func TestPostComment_ClearAfterPostPolicy(t *testing.T) {
	fake := &fakeClient{}
	w := newTestWorkflow(fake, Options{ClearUploadAfterPost: true})
	s := &Session{}
	s.SelectProject("185690")
	s.ReplaceItems([]models.Item{{ID: "1", Name: "x"}})
	require.NoError(t, s.SelectItem("1"))
	s.MarkUploaded(models.UploadedFile{UUID: "once"})

	_, err := w.PostComment(context.Background(), s, "only use")
	require.NoError(t, err)
	assert.Empty(t, s.UploadedUUID)

	_, err = w.PostComment(context.Background(), s, "again")
	assert.ErrorIs(t, err, common.ErrNoUploadUUID)
}

func TestPostComment_FailureKeepsIdentifiers(t *testing.T) {
	fake := &fakeClient{postErr: errors.New("boom")}
	w := newTestWorkflow(fake, Options{ClearUploadAfterPost: true})
	s := &Session{}
	s.SelectProject("185690")
	s.ReplaceItems([]models.Item{{ID: "1", Name: "x"}})
	require.NoError(t, s.SelectItem("1"))
	s.MarkUploaded(models.UploadedFile{UUID: "survivor"})

	_, err := w.PostComment(context.Background(), s, "text")
	require.Error(t, err)
	assert.Equal(t, "1", s.SelectedItemID)
	assert.Equal(t, "survivor", s.UploadedUUID, "failed post must not clear the handle")
	assert.Equal(t, StageUploaded, s.Stage())
}
