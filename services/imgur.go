package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const imgurUploadURL = "https://api.imgur.com/3/image"

// UpstreamError carries a non-success Imgur response so the handler can
// mirror its status and body to the client. RetryAfter is set on 429s.
type UpstreamError struct {
	Status     int
	Body       []byte
	RetryAfter string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("imgur responded %d", e.Status)
}

type ImgurClient struct {
	ClientID    string
	AccessToken string
	BaseURL     string
	HTTPClient  *http.Client
	MaxAttempts int
}

func NewImgurClient(clientID, accessToken string) *ImgurClient {
	return &ImgurClient{
		ClientID:    clientID,
		AccessToken: accessToken,
		BaseURL:     imgurUploadURL,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		MaxAttempts: 3,
	}
}

type imgurResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

// Upload forwards a base64-encoded image and returns the hosted link.
// Transport errors and 5xx responses are retried with exponential backoff;
// rate limits (429) and other client errors are surfaced immediately as
// *UpstreamError.
func (c *ImgurClient) Upload(ctx context.Context, imageBase64 string) (string, error) {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		link, retryable, err := c.uploadOnce(ctx, imageBase64)
		if err == nil {
			return link, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}
	return "", lastErr
}

func (c *ImgurClient) uploadOnce(ctx context.Context, imageBase64 string) (link string, retryable bool, err error) {
	form := url.Values{}
	form.Set("image", imageBase64)
	form.Set("type", "base64")

	endpoint := c.BaseURL
	if endpoint == "" {
		endpoint = imgurUploadURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	} else {
		req.Header.Set("Authorization", "Client-ID "+c.ClientID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", true, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var parsed imgurResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return "", false, fmt.Errorf("decode imgur response: %w", err)
		}
		if !parsed.Success || parsed.Data.Link == "" {
			return "", false, &UpstreamError{Status: resp.StatusCode, Body: body}
		}
		return parsed.Data.Link, false, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", false, &UpstreamError{
			Status:     resp.StatusCode,
			Body:       body,
			RetryAfter: resp.Header.Get("Retry-After"),
		}
	case resp.StatusCode >= 500:
		return "", true, &UpstreamError{Status: resp.StatusCode, Body: body}
	default:
		return "", false, &UpstreamError{Status: resp.StatusCode, Body: body}
	}
}
