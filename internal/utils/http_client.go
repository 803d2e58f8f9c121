package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that sends and accepts JSON and gives
// up on a request after timeout. A non-positive timeout leaves resty's
// default (no timeout) in place.
//
// Each call returns an independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080/api/v1", 5*time.Second)
//	resp, err := client.R().Get("/health")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
