// Package workflow implements the orchestration core of the proofpost
// client: select a project, load and cache its items, resolve or create a
// work item, locate and upload a local attachment, and post a comment
// referencing the upload.
//
// All state lives in a Session, an explicit context object owned by the
// orchestration layer and passed to every step; nothing is ambient or
// global, so concurrent sessions just need separate instances. Steps are
// synchronous and blocking; a failed step reports its error and leaves
// previously established identifiers intact so the user can retry exactly
// that step.
package workflow
