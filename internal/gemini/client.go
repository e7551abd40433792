package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	baseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel = "gemini-2.5-flash"
)

// ErrMissingKey is returned before any network call when no API key could be
// resolved from settings or configuration.
var ErrMissingKey = errors.New("gemini: api key not configured")

// Client calls the Gemini generateContent endpoint directly over HTTP.
type Client struct {
	model  string
	client *http.Client
}

func NewClient(model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{model: model, client: &http.Client{}}
}

// Content is one role-tagged turn of a request.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Contents []Content        `json:"contents"`
	Tools    []map[string]any `json:"tools,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends the turns to the model and returns the reply text.
// withSearch enables the Google Search grounding tool used by prospecting.
func (c *Client) GenerateContent(ctx context.Context, apiKey string, contents []Content, withSearch bool) (string, error) {
	if apiKey == "" {
		return "", ErrMissingKey
	}

	reqBody := generateRequest{Contents: contents}
	if withSearch {
		reqBody.Tools = []map[string]any{{"google_search": map[string]any{}}}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", baseURL, c.model, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("gemini: api error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("gemini: api error: status %d", resp.StatusCode)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
