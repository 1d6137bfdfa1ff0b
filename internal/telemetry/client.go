package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProvider опрашивает REST-эндпоинт провайдера телеметрии
type HTTPProvider struct {
	url        string
	token      string
	httpClient *http.Client
}

func NewHTTPProvider(url, token string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch принимает как голый массив сообщений, так и объект {"messages": [...]}
func (p *HTTPProvider) Fetch(ctx context.Context) ([]Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch telemetry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}
	return decodeMessages(body)
}

func decodeMessages(body []byte) ([]Message, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	if body[0] == '[' {
		var messages []Message
		if err := json.Unmarshal(body, &messages); err != nil {
			return nil, fmt.Errorf("failed to decode telemetry list: %w", err)
		}
		return messages, nil
	}

	var envelope struct {
		Messages []Message `json:"messages"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode telemetry envelope: %w", err)
	}
	return envelope.Messages, nil
}

// HTTPForwarder отправляет порцию в пакетный эндпоинт приема локаций
type HTTPForwarder struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPForwarder(url, apiKey string, timeout time.Duration) *HTTPForwarder {
	return &HTTPForwarder{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type forwardRequest struct {
	Locations []Message `json:"locations"`
}

func (f *HTTPForwarder) Forward(ctx context.Context, batch []Message) error {
	payload, err := json.Marshal(forwardRequest{Locations: batch})
	if err != nil {
		return fmt.Errorf("failed to marshal telemetry batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create ingest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if f.apiKey != "" {
		req.Header.Set("X-API-Key", f.apiKey)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to forward telemetry batch: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

// StatusError - точка приема ответила не 2xx
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ingest endpoint responded with status %d", e.StatusCode)
}

// Permanent сообщает, что повтор того же запроса не поможет: 4xx, кроме 408 и 429
func (e *StatusError) Permanent() bool {
	if e.StatusCode == http.StatusRequestTimeout || e.StatusCode == http.StatusTooManyRequests {
		return false
	}
	return e.StatusCode >= 400 && e.StatusCode < 500
}
