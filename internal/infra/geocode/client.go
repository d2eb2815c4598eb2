// Package geocode implements the suggestion and reverse-geocode backends.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	domainerrors "chirpmap/internal/domain/errors"
	"chirpmap/internal/errors"

	"golang.org/x/time/rate"
)

const maxResponseBytes = 2 << 20

// httpClient is the transport shared by HTTP-backed providers.
type httpClient struct {
	client    *http.Client
	limiter   *rate.Limiter // nil disables client-side throttling
	userAgent string
}

func newHTTPClient(timeout time.Duration, ratePerSecond float64, burst int, userAgent string) *httpClient {
	c := &httpClient{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}

	if ratePerSecond > 0 {
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(ratePerSecond), burst)
	}

	return c
}

// get performs a GET and returns the body. Non-2xx responses map to ErrProviderUnavailable.
func (c *httpClient) get(ctx context.Context, uri string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "rate limiter: "+err.Error())
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, err.Error())
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, errors.Wrapf(domainerrors.ErrProviderUnavailable, "upstream status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "read body: "+err.Error())
	}

	return body, nil
}

func (c *httpClient) getJSON(ctx context.Context, uri string, out any) error {
	body, err := c.get(ctx, uri)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}
