package workflow

import (
	"fmt"

	"github.com/dmitrijs2005/proofpost/internal/client/models"
	"github.com/dmitrijs2005/proofpost/internal/common"
)

// Stage identifies how far the current session has progressed:
//
//	Idle → ProjectSelected → ItemsLoaded → ItemSelected → FileResolved →
//	Uploaded → CommentPosted
//
// Stages only move forward. A failed step leaves the stage where it was, so
// identifiers established by earlier steps survive downstream failures.
type Stage int

const (
	StageIdle Stage = iota
	StageProjectSelected
	StageItemsLoaded
	StageItemSelected
	StageFileResolved
	StageUploaded
	StageCommentPosted
)

var stageNames = map[Stage]string{
	StageIdle:            "idle",
	StageProjectSelected: "project selected",
	StageItemsLoaded:     "items loaded",
	StageItemSelected:    "item selected",
	StageFileResolved:    "file resolved",
	StageUploaded:        "uploaded",
	StageCommentPosted:   "comment posted",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Session is the single mutable context threaded through the workflow. It
// has exactly one writer (the workflow itself); a process serves one session
// at a time, and concurrent sessions must each own their own instance.
type Session struct {
	ProjectID         string
	Items             []models.Item
	SelectedItemID    string
	UploadedUUID      string
	RefreshPending    bool
	LastCreatedItemID string

	stage Stage
}

func (s *Session) Stage() Stage { return s.stage }

// advance raises the stage monotonically; retrying an earlier step never
// rolls back progress markers already earned.
func (s *Session) advance(st Stage) {
	if st > s.stage {
		s.stage = st
	}
}

// SelectProject sets the active project. The id is not validated remotely;
// the next fetch will tell. Switching to a different project drops the
// cached items along with any item selection and pending creation, since a
// selected item id must always reference the current project. The upload
// handle is project-independent and survives the switch.
func (s *Session) SelectProject(projectID string) {
	if projectID != s.ProjectID {
		s.Items = nil
		s.SelectedItemID = ""
		s.LastCreatedItemID = ""
		s.RefreshPending = false
	}
	s.ProjectID = projectID
	s.advance(StageProjectSelected)
}

// ReplaceItems installs a freshly fetched item list, replacing the previous
// one wholesale (no incremental merge). A pending post-create refresh is
// cleared here, exactly once. A selection that is neither in the new list
// nor the just-created item is dropped so it can never reference an item the
// current project does not have.
func (s *Session) ReplaceItems(items []models.Item) {
	s.Items = items
	s.RefreshPending = false
	if s.SelectedItemID != "" && s.findItem(s.SelectedItemID) == nil &&
		s.SelectedItemID != s.LastCreatedItemID {
		s.SelectedItemID = ""
	}
	s.advance(StageItemsLoaded)
}

// SelectItem records the chosen item id. The id must be present in the
// cached list, or be the id of the item created since the last refresh.
func (s *Session) SelectItem(id string) error {
	if id == "" {
		return common.ErrNoItemSelected
	}
	if s.findItem(id) == nil && id != s.LastCreatedItemID {
		return fmt.Errorf("item %s is not in the loaded list", id)
	}
	s.SelectedItemID = id
	s.advance(StageItemSelected)
	return nil
}

// MarkCreated records a freshly created item and selects it. The cache is
// stale until the next fetch, which RefreshPending flags.
func (s *Session) MarkCreated(item models.Item) {
	s.LastCreatedItemID = item.ID
	s.SelectedItemID = item.ID
	s.RefreshPending = true
	s.advance(StageItemSelected)
}

// MarkFileResolved notes that at least one attachment candidate was found.
func (s *Session) MarkFileResolved() {
	s.advance(StageFileResolved)
}

// MarkUploaded stores the handle of a successful upload. Failed uploads must
// not call this; the previous handle stays usable.
func (s *Session) MarkUploaded(f models.UploadedFile) {
	s.UploadedUUID = f.UUID
	s.advance(StageUploaded)
}

// SetUploadUUID overrides the pending upload handle manually. An empty value
// is ignored, it never erases an established handle.
func (s *Session) SetUploadUUID(handle string) {
	if handle == "" {
		return
	}
	s.UploadedUUID = handle
	s.advance(StageUploaded)
}

// MarkCommentPosted completes the workflow. With clearUpload the pending
// handle is reset so the next comment forces a fresh upload; otherwise the
// handle stays reusable.
func (s *Session) MarkCommentPosted(clearUpload bool) {
	if clearUpload {
		s.UploadedUUID = ""
	}
	s.advance(StageCommentPosted)
}

// SelectedItemName resolves the display name of the selected item from the
// cache. Empty when nothing is selected or the cache does not know the item
// (e.g. right after creation, before the refresh).
func (s *Session) SelectedItemName() string {
	if it := s.findItem(s.SelectedItemID); it != nil {
		return it.Name
	}
	return ""
}

func (s *Session) findItem(id string) *models.Item {
	if id == "" {
		return nil
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}
