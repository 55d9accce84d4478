package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteVerifier asks the platform's token introspection endpoint about every token
type RemoteVerifier struct {
	client *http.Client
	url    string
}

// NewRemoteVerifier creates a RemoteVerifier posting to url with the given timeout
func NewRemoteVerifier(url string, timeout time.Duration) *RemoteVerifier {
	return &RemoteVerifier{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Data *struct {
		IsAdmin string `json:"isadmin"`
		MemID   string `json:"mem_id"`
		MemIdx  int64  `json:"mem_idx"`
	} `json:"data"`
	Success bool `json:"success"`
}

// Verify implements Verifier. A 4xx answer rejects the token; transport errors,
// 5xx answers and undecodable bodies are failures.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*Admin, error) {
	body, err := json.Marshal(introspectRequest{Token: token})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token introspection: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("token introspection: status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrInvalidToken
	}

	var out introspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("token introspection: decode: %w", err)
	}
	if !out.Success || out.Data == nil {
		return nil, ErrInvalidToken
	}
	if out.Data.IsAdmin != "Y" {
		return nil, ErrNotAdmin
	}
	return &Admin{MemID: out.Data.MemID, MemIdx: out.Data.MemIdx}, nil
}
