package models

// UploadedFile describes a payload the service has accepted. UUID is the
// opaque handle later attached to comments; the content itself is not kept
// locally after the upload.
type UploadedFile struct {
	UUID      string
	Name      string
	SizeBytes int64
}
