package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-waitroom/internal/config"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/utils"
	"github.com/MKhiriev/go-waitroom/models"
)

// RequestIDHeader carries a per-call identifier the server echoes back in
// its envelope and logs.
const RequestIDHeader = "X-Request-ID"

type httpTransport struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPTransport constructs an HTTP/REST implementation of [Transport].
// It normalises and validates the base URL from adapterCfg.HTTPAddress, joins
// it with adapterCfg.APIPrefix, and configures the underlying HTTP client with
// the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTransport(adapterCfg config.ClientAdapter, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if prefix := strings.Trim(adapterCfg.APIPrefix, "/"); prefix != "" {
		baseURL += "/" + prefix
	}

	if log == nil {
		log = logger.Nop()
	}

	return &httpTransport{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator("sdk-"),
		logger: log.WithComponent("transport"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [Transport]. It sends req as JSON, decodes the response
// envelope and maps non-2xx statuses to the sentinels in errors.go.
func (h *httpTransport) Do(ctx context.Context, req Request) (Response, error) {
	requestID := h.ids.Generate()

	r := h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Payload != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Payload)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("request failed")
		return Response{}, fmt.Errorf("%s %s request: %w", req.Method, req.Path, err)
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("request completed")

	if err = mapHTTPError(resp); err != nil {
		out := Response{}
		var env models.Envelope
		if json.Unmarshal(resp.Body(), &env) == nil {
			out.Message, out.Error = env.Message, env.Error
		}
		return out, err
	}

	var env models.Envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return Response{}, fmt.Errorf("%w: %s %s: %v", ErrDecodeResponse, req.Method, req.Path, err)
	}

	return Response{
		Success: env.Success,
		Data:    env.Data,
		Message: env.Message,
		Error:   env.Error,
	}, nil
}
