// Package common defines shared constants and sentinel errors used across
// the proofpost client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level error: the request never completed.
	ErrUnavailable = errors.New("service unavailable")

	// Workflow preconditions, checked before any network call is attempted.
	ErrNoProjectSelected = errors.New("no project selected")
	ErrNoItemSelected    = errors.New("no item selected")
	ErrNoUploadUUID      = errors.New("no upload handle")

	// Filesystem warning: the workflow continues via manual file selection.
	ErrDirectoryMissing = errors.New("directory does not exist")
)
