package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

// Job statuses reported by the image pipeline API.
const (
	StatusDone = "DONE"
	StatusFail = "FAIL"
)

// Client talks to a FusionBrain-style asynchronous image pipeline API:
// a run call returns a job handle, a status call eventually reports a
// terminal state carrying base64 image data or an error description.
type Client struct {
	BaseURL   string
	APIKey    string
	SecretKey string
	Client    *http.Client
}

func NewClient(baseURL, apiKey, secretKey string) *Client {
	return &Client{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		SecretKey: secretKey,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type pipelineInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type generateParams struct {
	Query string `json:"query"`
}

type runParams struct {
	Type           string         `json:"type"`
	NumImages      int            `json:"numImages"`
	Width          int            `json:"width"`
	Height         int            `json:"height"`
	GenerateParams generateParams `json:"generateParams"`
}

type runResponse struct {
	UUID   string `json:"uuid"`
	Status string `json:"status"`
}

type statusResult struct {
	Files []string `json:"files"`
}

// StatusResponse is one poll result for a submitted job.
type StatusResponse struct {
	UUID             string       `json:"uuid"`
	Status           string       `json:"status"`
	Result           statusResult `json:"result"`
	ErrorDescription string       `json:"errorDescription"`
}

// Terminal reports whether the job reached a final state.
func (s *StatusResponse) Terminal() bool {
	return s.Status == StatusDone || s.Status == StatusFail
}

// FirstFile returns the base64 payload of the first generated file.
func (s *StatusResponse) FirstFile() (string, error) {
	if len(s.Result.Files) == 0 {
		return "", fmt.Errorf("status %s carries no files", s.Status)
	}
	return s.Result.Files[0], nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("X-Key", "Key "+c.APIKey)
	req.Header.Set("X-Secret", "Secret "+c.SecretKey)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	c.authorize(req)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("image api request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("image api error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// PipelineID fetches the identifier of the first available pipeline.
func (c *Client) PipelineID(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/key/api/v1/pipelines", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	var pipelines []pipelineInfo
	if err := c.do(req, &pipelines); err != nil {
		return "", err
	}
	if len(pipelines) == 0 {
		return "", fmt.Errorf("image api error: no pipelines available")
	}
	return pipelines[0].ID, nil
}

// Submit starts a generation job and returns its handle.
func (c *Client) Submit(ctx context.Context, prompt string, width, height int) (string, error) {
	pipelineID, err := c.PipelineID(ctx)
	if err != nil {
		return "", err
	}

	params := runParams{
		Type:           "GENERATE",
		NumImages:      1,
		Width:          width,
		Height:         height,
		GenerateParams: generateParams{Query: prompt},
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshal params: %w", err)
	}

	// The run endpoint expects multipart form data with a JSON part.
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("pipeline_id", pipelineID); err != nil {
		return "", fmt.Errorf("write pipeline_id field: %w", err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="params"`)
	header.Set("Content-Type", "application/json")
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("create params part: %w", err)
	}
	if _, err := part.Write(paramsJSON); err != nil {
		return "", fmt.Errorf("write params part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/key/api/v1/pipeline/run", &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var runResp runResponse
	if err := c.do(req, &runResp); err != nil {
		return "", err
	}
	if runResp.UUID == "" {
		return "", fmt.Errorf("image api error: run returned no job uuid")
	}
	return runResp.UUID, nil
}

// Status polls a submitted job once.
func (c *Client) Status(ctx context.Context, jobID string) (*StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/key/api/v1/pipeline/status/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var status StatusResponse
	if err := c.do(req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
