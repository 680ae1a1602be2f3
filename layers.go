package client

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// Layer discovery endpoints are unauthenticated, so these helpers work
// before a client is constructed: discover the system layer key and
// application layer here, then pass them to [WithLayers].

// GetSystemLayers fetches the system layers available at baseURL.
func GetSystemLayers(ctx context.Context, baseURL string) (*Response, error) {
	resp, err := resty.New().R().
		SetContext(ctx).
		Get(normalizeBaseURL(baseURL) + "/security/systemLayers")
	if err != nil {
		return nil, err
	}

	return newResponse(resp, &NoopLogger{}), nil
}

// GetApplicationLayers fetches the application layers found on the given
// system layer at baseURL.
func GetApplicationLayers(ctx context.Context, baseURL, systemLayer string) (*Response, error) {
	resp, err := resty.New().R().
		SetContext(ctx).
		Get(normalizeBaseURL(baseURL) + "/security/systemLayers/" + systemLayer + "/applicationLayers")
	if err != nil {
		return nil, err
	}

	return newResponse(resp, &NoopLogger{}), nil
}
