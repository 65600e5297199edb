// Package radio submits rendered tracks to the Apocalypse Radio
// service over its HTTP+GraphQL API.
package radio

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// submitTrackMutation uploads one clip and returns the stored track.
const submitTrackMutation = `mutation($sectionId: String!, $instrument: String!, $audioBase64: String!, $audioFilename: String!, $description: String!) {
  submitTrack(sectionId: $sectionId, instrument: $instrument, audioBase64: $audioBase64, audioFilename: $audioFilename, description: $description) {
    id
    status
  }
}`

// Client talks to the Apocalypse Radio GraphQL endpoint.
type Client struct {
	apiURL string
	token  string
	http   *http.Client
}

// NewClient creates a submission client. The timeout is generous
// because audio payloads are base64-inflated.
func NewClient(apiURL, token string) *Client {
	return &Client{
		apiURL: apiURL,
		token:  token,
		http:   &http.Client{Timeout: 120 * time.Second},
	}
}

// Submission is one clip upload: raw WAV bytes plus its metadata.
type Submission struct {
	SectionID   string
	Instrument  string
	Filename    string
	Description string
	Audio       []byte
}

// Track is the remote record created for a submission.
type Track struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type submitResponse struct {
	Data struct {
		SubmitTrack *Track `json:"submitTrack"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// SubmitTrack uploads one clip and returns the remote track record.
func (c *Client) SubmitTrack(ctx context.Context, sub Submission) (Track, error) {
	body, err := json.Marshal(graphqlRequest{
		Query: submitTrackMutation,
		Variables: map[string]any{
			"sectionId":     sub.SectionID,
			"instrument":    sub.Instrument,
			"audioBase64":   base64.StdEncoding.EncodeToString(sub.Audio),
			"audioFilename": sub.Filename,
			"description":   sub.Description,
		},
	})
	if err != nil {
		return Track{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewReader(body))
	if err != nil {
		return Track{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Track{}, fmt.Errorf("submit track: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Track{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet(resp.Body))
	}

	var result submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Track{}, fmt.Errorf("decode response: %w", err)
	}
	if len(result.Errors) > 0 {
		msgs := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			msgs[i] = e.Message
		}
		return Track{}, fmt.Errorf("graphql errors: %s", strings.Join(msgs, "; "))
	}
	if result.Data.SubmitTrack == nil {
		return Track{}, fmt.Errorf("malformed response: no submitTrack in data")
	}
	return *result.Data.SubmitTrack, nil
}

// snippet reads at most 500 bytes of an error body for logging.
func snippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 500))
	return strings.TrimSpace(string(b))
}
