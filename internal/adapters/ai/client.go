package ai

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

// Options configures a client for an OpenAI-compatible HTTP API.
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func newRestyClient(opts Options) *resty.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil || r == nil {
				return false
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})

	if opts.APIKey != "" {
		c.SetAuthToken(opts.APIKey)
	}

	return c
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// checkResponse turns transport failures and non-2xx answers into ErrUpstream.
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s request: %w", domain.ErrUpstream, op, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	msg := resp.Status()
	if e, ok := resp.Error().(*apiError); ok && e.Error.Message != "" {
		msg = e.Error.Message
	}
	return fmt.Errorf("%w: %s status %d: %s", domain.ErrUpstream, op, resp.StatusCode(), msg)
}
