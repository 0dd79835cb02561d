package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campusqa/internal/modules/ask/domain"
	askout "campusqa/internal/modules/ask/port/out"
)

type askRequest struct {
	Question string `json:"question"`
	Course   string `json:"course"`
	Semester string `json:"semester"`
}

type askResponse struct {
	Answer  string             `json:"answer"`
	Sources []domain.RawSource `json:"sources"`
}

// HTTPAnswerClient posts questions to the answer backend's /ask
// endpoint.
type HTTPAnswerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPAnswerClient(baseURL string, timeout time.Duration) askout.AnswerClient {
	return &HTTPAnswerClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPAnswerClient) Ask(ctx context.Context, question, course, semester, token string) (domain.Answer, error) {
	payload, err := json.Marshal(askRequest{Question: question, Course: course, Semester: semester})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("encode ask request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(payload))
	if err != nil {
		return domain.Answer{}, fmt.Errorf("build ask request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("ask request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Answer{}, fmt.Errorf("ask request: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("read ask response: %w", err)
	}
	var parsed askResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.Answer{}, fmt.Errorf("decode ask response: %w", err)
	}
	return domain.Answer{Text: parsed.Answer, Sources: parsed.Sources}, nil
}
