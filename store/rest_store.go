package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jaba-landing/models"
)

// RestConfig points at a hosted backend's REST endpoint
type RestConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// RestStore inserts registrations through the hosted backend's REST API.
// No client timeout is set; the caller's context bounds the request.
type RestStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// restError is the JSON error body returned by the REST API
type restError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// NewRestStore creates a REST store
func NewRestStore(cfg RestConfig) (*RestStore, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("rest store URL cannot be empty")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("rest store API key cannot be empty")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	return &RestStore{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  client,
	}, nil
}

func (s *RestStore) Insert(ctx context.Context, record models.Registration) error {
	table := record.TableName()
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s row: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/rest/v1/"+table, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: insert into %s: %v", ErrTransport, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("%w: reading %s error response: %v", ErrTransport, table, err)
	}

	storeErr := &Error{Table: table, Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var payload restError
	if json.Unmarshal(raw, &payload) == nil {
		storeErr.Code = payload.Code
		storeErr.Details = payload.Details
		storeErr.Hint = payload.Hint
		if payload.Message != "" {
			storeErr.Message = payload.Message
		}
	}
	return storeErr
}
