package util

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"artisthub/src/debug"
)

type HttpClientConfig struct {
	Timeout int // seconds, 0 keeps the transport default
}

type HttpClient struct {
	Client *resty.Client
}

func NewHttp(cfg HttpClientConfig) *HttpClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.Timeout > 0 {
		client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}
	return &HttpClient{Client: client}
}

// StdClient exposes the underlying *http.Client for SDKs that take one.
func (c *HttpClient) StdClient() *http.Client {
	return c.Client.GetClient()
}

// MakeRequest performs a single request and returns the body of a 2xx response.
func (c *HttpClient) MakeRequest(ctx context.Context, method, url string, query, headers map[string]string) ([]byte, error) {
	resp, err := c.Client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetHeaders(headers).
		Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		slog.Debug("response info", debug.RuntimeAttr(string(body)))
		return nil, fmt.Errorf("got %d from %s", resp.StatusCode(), url)
	}

	return body, nil
}

func ParseResp[T any](body []byte, target *T) error {
	if err := json.Unmarshal(body, target); err != nil {
		slog.Debug("response info", debug.RuntimeAttr(string(body)))
		return fmt.Errorf("error unmarshaling response body: %w", err)
	}
	return nil
}
