package service

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://backend-sistema-de-gestion-cine.onrender.com"
	defaultUserAgent = "cineplus-cli"
)

// Client wraps HTTP access to the cinema management backend. The
// backend is the sole source of truth: every list is fetched as-is and
// every mutation is a direct POST.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// APIError is returned when the backend responds with a non-2xx status.
// Message carries the backend's {"error": "..."} body when one was
// sent.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "cineplus api error"
	}
	if e.Message != "" {
		return fmt.Sprintf("cineplus api error: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("cineplus api error: %s", e.Status)
}

// IsNotFound reports whether the error represents a 404 from the API.
// GET /functions answers 404 when no function exists yet; callers treat
// that as an empty list.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// NewClient creates a new API client. If httpClient is nil, a default
// client with a request timeout is used. CINEPLUS_API_URL overrides the
// backend origin.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("CINEPLUS_API_URL")), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  defaultUserAgent,
	}
}
