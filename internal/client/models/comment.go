package models

// AttachmentRef references a previously uploaded file by its handle.
type AttachmentRef struct {
	UUID string `json:"uuid"`
}

// CommentBody is the wire shape for posting a comment. CommentText is always
// present; Content is the service's optional free-text field and is omitted
// when empty, matching its documented optional-field convention.
type CommentBody struct {
	CommentText    string        `json:"comment_text"`
	AttachmentFile AttachmentRef `json:"attachment_file"`
	Content        string        `json:"content,omitempty"`
}
