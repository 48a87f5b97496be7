package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/proofpost/internal/common"
	"github.com/dmitrijs2005/proofpost/internal/logging"
)

// Gateway performs the remote operations against the review service over
// HTTP. Every call carries the API-key header and is logged with its target,
// body, status, and response; logging never alters control flow.
type Gateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
}

// NewGateway builds a gateway for the given base URL and API key. A nil
// httpClient falls back to a default client, so the only timeout in effect
// is whatever the transport provides.
func NewGateway(baseURL, apiKey string, httpClient *http.Client, logger logging.Logger) *Gateway {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger.With("component", "gateway"),
	}
}

// Do executes a JSON call against a relative endpoint. On a success status
// the body is returned as a normalized Payload; an unparseable success body
// degrades to a KindText payload instead of an error. Non-success statuses
// are returned as *APIError, transport failures wrap common.ErrUnavailable.
func (g *Gateway) Do(ctx context.Context, method, endpoint string, body any) (Payload, error) {
	var reqBody io.Reader
	var logBody string
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Payload{}, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
		logBody = string(data)
	}

	url := g.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return Payload{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.APIKeyHeaderName, g.apiKey)

	g.logger.Info(ctx, "api request", "method", method, "url", url, "body", logBody)
	return g.roundTrip(ctx, req)
}

// DoMultipart uploads binary content as a multipart form with a single file
// field. The Content-Type is set by the multipart writer; the JSON headers
// from Do do not apply here.
func (g *Gateway) DoMultipart(ctx context.Context, endpoint, fieldName, fileName string, content []byte) (Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		return Payload{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return Payload{}, fmt.Errorf("write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return Payload{}, fmt.Errorf("close multipart body: %w", err)
	}

	url := g.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return Payload{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(common.APIKeyHeaderName, g.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	g.logger.Info(ctx, "api upload", "url", url, "file", fileName, "size", len(content))
	return g.roundTrip(ctx, req)
}

func (g *Gateway) roundTrip(ctx context.Context, req *http.Request) (Payload, error) {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error(ctx, "api request failed", "url", req.URL.String(), "error", err.Error())
		return Payload{}, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.Error(ctx, "read response", "url", req.URL.String(), "error", err.Error())
		return Payload{}, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	payload := normalizePayload(raw)
	g.logger.Info(ctx, "api response",
		"url", req.URL.String(), "status", resp.StatusCode, "body", string(raw))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode, Raw: string(raw)}
		if payload.Kind == KindRecord {
			if msg, ok := payload.Record["message"].(string); ok {
				apiErr.Message = msg
			}
		}
		return payload, apiErr
	}

	return payload, nil
}
