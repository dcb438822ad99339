package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"aqarsearch/internal/config"
	"aqarsearch/internal/model"
	"aqarsearch/internal/utils"
)

// AssistantClient consumes the external conversational backend. The backend
// owns all natural-language understanding; this client only submits the
// utterance and decodes the structured criteria it returns.
type AssistantClient struct {
	cfg    *config.AssistantConfig
	client *http.Client
}

// NewAssistantClient creates a new assistant client
func NewAssistantClient(cfg *config.AssistantConfig) *AssistantClient {
	return &AssistantClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the assistant backend is configured and ready
func (c *AssistantClient) IsEnabled() bool {
	return c != nil && c.cfg != nil && c.cfg.Enabled
}

// assistantRequest is the wire request to the assistant backend.
type assistantRequest struct {
	Utterance string `json:"utterance"`
	Language  string `json:"language,omitempty"`
}

// ExtractCriteria submits the utterance and returns the structured search
// criteria. A disabled client degrades to empty criteria rather than failing,
// mirroring how the app behaves with the assistant backend unreachable.
func (c *AssistantClient) ExtractCriteria(ctx context.Context, utterance, language string) (*model.SearchCriteria, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return &model.SearchCriteria{}, nil
	}

	if !c.IsEnabled() {
		log.Printf("Assistant backend is not enabled, returning empty criteria. Set ASSISTANT_BASE_URL to enable it.")
		return &model.SearchCriteria{}, nil
	}

	body, err := json.Marshal(assistantRequest{Utterance: utterance, Language: language})
	if err != nil {
		return nil, fmt.Errorf("failed to encode assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/extract", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read assistant response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assistant backend returned status %d: %s", resp.StatusCode, string(raw))
	}

	// Some backends wrap the criteria JSON in chat text or code fences.
	var criteria model.SearchCriteria
	if err := utils.DecodeLooseJSON(string(raw), &criteria); err != nil {
		return nil, fmt.Errorf("failed to decode assistant criteria: %w", err)
	}

	return &criteria, nil
}
