package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/entity"
)

// IBackendClient is the uniform JSON-over-HTTP gateway to the classroom
// backend. Every call is independent: no retry, no cache, no deduplication.
// Re-invoking after a failure is the caller's job.
type IBackendClient interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) error
	TopQuestions(ctx context.Context) ([]entity.Question, error)
	RecentQuestions(ctx context.Context) ([]entity.Question, error)
	Question(ctx context.Context, id int) (*dto.QuestionDetailResponse, error)
	Ask(ctx context.Context, req *dto.AskRequest) error
	Answer(ctx context.Context, req *dto.AnswerRequest) error
	Vote(ctx context.Context, req *dto.VoteRequest) error
	Flag(ctx context.Context, req *dto.FlagRequest) error
	Profile(ctx context.Context, userId int) (*entity.Profile, error)
}

type backendClient struct {
	baseURL string
	client  *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) IBackendClient {
	return &backendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// request performs one backend call. A nil body means a bodiless (GET-style)
// request without a Content-Type header. Non-2xx responses become a
// *RequestError carrying the response body text, or the numeric status code
// as text when the body is empty. On success the body is decoded into out
// when the response declares JSON; otherwise the raw text is handed to out
// when out is a *string, since not every success response is guaranteed JSON.
func (c *backendClient) request(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var payload io.Reader
	if body != nil {
		payloadBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewBuffer(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(string(bodyBytes))
		if message == "" {
			message = strconv.Itoa(resp.StatusCode)
		}
		return &RequestError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
		return nil
	}
	if s, ok := out.(*string); ok {
		*s = string(bodyBytes)
		return nil
	}
	return fmt.Errorf("unexpected content type %q for %s %s", contentType, method, path)
}

func (c *backendClient) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var res dto.LoginResponse
	if err := c.request(ctx, http.MethodPost, "/api/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *backendClient) Register(ctx context.Context, req *dto.RegisterRequest) error {
	return c.request(ctx, http.MethodPost, "/api/register", req, nil)
}

func (c *backendClient) TopQuestions(ctx context.Context) ([]entity.Question, error) {
	var res []entity.Question
	if err := c.request(ctx, http.MethodGet, "/api/top-questions", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *backendClient) RecentQuestions(ctx context.Context) ([]entity.Question, error) {
	var res []entity.Question
	if err := c.request(ctx, http.MethodGet, "/api/questions", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *backendClient) Question(ctx context.Context, id int) (*dto.QuestionDetailResponse, error) {
	var res dto.QuestionDetailResponse
	if err := c.request(ctx, http.MethodGet, "/api/questions/"+strconv.Itoa(id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *backendClient) Ask(ctx context.Context, req *dto.AskRequest) error {
	return c.request(ctx, http.MethodPost, "/api/ask", req, nil)
}

func (c *backendClient) Answer(ctx context.Context, req *dto.AnswerRequest) error {
	return c.request(ctx, http.MethodPost, "/api/answer", req, nil)
}

func (c *backendClient) Vote(ctx context.Context, req *dto.VoteRequest) error {
	return c.request(ctx, http.MethodPost, "/api/vote", req, nil)
}

func (c *backendClient) Flag(ctx context.Context, req *dto.FlagRequest) error {
	return c.request(ctx, http.MethodPost, "/api/flag", req, nil)
}

func (c *backendClient) Profile(ctx context.Context, userId int) (*entity.Profile, error) {
	var res entity.Profile
	if err := c.request(ctx, http.MethodGet, "/api/profile/"+strconv.Itoa(userId), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
