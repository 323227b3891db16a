package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"tikang-admin/internal/config"
	"tikang-admin/internal/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// TokenSource supplies the bearer token for each request. The session store
// implements it; requests without a stored token go out unauthenticated and
// the server answers 401.
type TokenSource interface {
	Token(ctx context.Context) string
}

// APIError is a non-2xx response carrying the server-supplied message when
// the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (http %d)", e.StatusCode)
}

// IsAuthError reports whether err is a 401/403 APIError.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// Client calls the Tikang REST API. The platform exposes two hosts: a
// general API (login, identity, dashboard stats, static uploads) and an
// admin-privileged API (everything else).
type Client struct {
	baseURL      string
	adminBaseURL string
	tokens       TokenSource
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       *zerolog.Logger

	redis    *redis.Client
	cacheTTL time.Duration
}

func NewClient(cfg config.APIConfig, tokens TokenSource, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		adminBaseURL: cfg.AdminBaseURL,
		tokens:       tokens,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		limiter:      rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		logger:       logger,
	}
}

// UseRedisCache configures optional Redis caching for GET endpoints.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// FilePart is one file field of a multipart request. ContentType is the
// declared MIME type; validation against it happens before the request is
// built, in the service layer.
type FilePart struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

func (c *Client) doGet(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// doMultipart sends form fields and files as multipart/form-data. The
// content type header is taken from the multipart writer so the boundary
// stays correct.
func (c *Client) doMultipart(ctx context.Context, endpoint string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.FileName)
		if err != nil {
			return err
		}
		if _, err := part.Write(file.Data); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}
	c.addHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncAPIRequest(req.URL.Path, "transport_error")
		c.logger.Error().Err(err).Str("endpoint", req.URL.Path).Msg("api request failed")
		return fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.IncAPIRequest(req.URL.Path, statusClass(resp.StatusCode))
	c.logger.Debug().
		Str("method", req.Method).
		Str("endpoint", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) addHeaders(req *http.Request) {
	if token := c.tokens.Token(req.Context()); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// decodeError extracts the server's error/message field; some endpoints use
// "error", others "message".
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else if payload.Message != "" {
			apiErr.Message = payload.Message
		}
	}
	return apiErr
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, val any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.cacheTTL).Err()
}

// invalidateCache drops cached reads after a mutation so the refetch sees
// server state, not the cache.
func (c *Client) invalidateCache(ctx context.Context, keys ...string) {
	if c.redis == nil {
		return
	}
	_ = c.redis.Del(ctx, keys...).Err()
}
