// Package fetcher retrieves league logo images from the static image host.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"leaguefetch/pkg/config"
	fetcherrors "leaguefetch/pkg/errors"
	"leaguefetch/pkg/logger"
)

// DefaultBaseURL is the directory on the image host holding {id}.png files
const DefaultBaseURL = "https://static.quickgrow.net/football/leagues"

// ImageURL builds the URL of the image for id under baseURL
func ImageURL(baseURL string, id int) string {
	return strings.TrimRight(baseURL, "/") + "/" + strconv.Itoa(id) + ".png"
}

// Sink consumes a successful response body
type Sink func(body io.Reader) (int64, error)

// Client performs GET requests against the image host
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	logger     logger.Logger
}

// NewClient creates a new image host client. Redirects are followed by the
// underlying http.Client.
func NewClient(cfg *config.HTTPConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		headers: map[string]string{
			"User-Agent": cfg.UserAgent,
			"Accept":     "image/avif,image/webp,image/apng,image/*,*/*;q=0.8",
		},
		logger: log,
	}
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// Fetch GETs url and hands the body to sink only when the status is 2xx.
// Every failure is returned as a *errors.Error.
func (c *Client) Fetch(url string, sink Sink) (int64, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, &fetcherrors.Error{
			Type:    fetcherrors.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to build request: %v", err),
		}
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.DebugWithFields("HTTP request failed", map[string]interface{}{
			"url":      url,
			"error":    err.Error(),
			"duration": duration,
		})
		return 0, &fetcherrors.Error{
			Type:    fetcherrors.ErrorTypeNetwork,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": duration,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused for the next ID
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, fetcherrors.FromStatusCode(resp.StatusCode)
	}

	n, err := sink(resp.Body)
	if err != nil {
		return 0, &fetcherrors.Error{
			Type:    fetcherrors.ErrorTypeStorage,
			Message: err.Error(),
		}
	}

	return n, nil
}
