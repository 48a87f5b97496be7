// Package api is the gateway to the remote review service.
//
// # Overview
//
// The package provides:
//  1. A typed API contract (see the Client interface) covering the five
//     remote operations the workflow uses: ListItems, CreateItem,
//     UploadContent, PostComment, and ListStepGroups.
//  2. A concrete HTTP implementation (see Gateway) that attaches the
//     pre-provisioned API key to every request, logs request and response
//     for observability, and normalizes the service's shape-varying JSON
//     bodies into a tagged Payload variant (Record | List | Text).
//
// # Error Handling
//
// Failures are returned as values, never panics. Transport failures wrap
// common.ErrUnavailable; non-success HTTP statuses become *APIError carrying
// the status code and the service "message" field when parseable; a success
// status whose body lacks a required field ("uuid", "id") becomes
// *MissingFieldError. A success status with an unparseable body is not an
// error: the raw text is kept in a KindText payload.
package api
