package common

// APIKeyHeaderName is the HTTP header that carries the pre-provisioned user
// API key on every outbound request.
const APIKeyHeaderName = "X-Brushup-User-Api-Key"
