package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON REST client rooted at baseURL.
//
// Every request sent through the client:
//   - accepts and sends "application/json";
//   - is bounded by timeout (zero keeps resty's default of no timeout);
//   - carries the [TraceIDHeader] taken from the request context, or a new
//     trace id if the context has none.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(TraceIDHeader) == "" {
			req.SetHeader(TraceIDHeader, TraceIDFromContextOrNew(req.Context()))
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
