// Package datadog is a minimal client for the Datadog events API.
//
// Only event creation is supported. Rejections by the API (HTTP 4xx) and
// payloads that fail local validation are reported as *ValidationError so
// callers can decide whether to tolerate them; transport failures and
// server errors are returned as ordinary wrapped errors.
package datadog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"

	"ddeventwrap/internal/event"
	logx "ddeventwrap/pkg/logx"
)

const (
	eventsPath = "/api/v1/events"

	// DefaultTimeout bounds one API request.
	DefaultTimeout = 60 * time.Second

	maxTextLen = 4000
)

var ErrMissingCredentials = errors.New("datadog: api key and application key are required")

// ValidationError means the event was refused, either locally or by the API.
type ValidationError struct {
	StatusCode int // 0 when refused before sending
	Reasons    []string
}

func (e *ValidationError) Error() string {
	reason := strings.Join(e.Reasons, "; ")
	if reason == "" {
		reason = "event rejected"
	}
	if e.StatusCode == 0 {
		return "invalid event: " + reason
	}
	return fmt.Sprintf("datadog rejected event (HTTP %d): %s", e.StatusCode, reason)
}

// Config configures a Client.
type Config struct {
	APIKey  string
	AppKey  string
	Host    string
	Timeout time.Duration
}

// Client sends events to one Datadog site.
type Client struct {
	http *resty.Client
	log  logx.Logger
}

type createEventRequest struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags,omitempty"`
}

type createEventResponse struct {
	Status string `json:"status"`
	Event  struct {
		ID  int64  `json:"id"`
		URL string `json:"url"`
	} `json:"event"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

func New(cfg Config, log logx.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" || strings.TrimSpace(cfg.AppKey) == "" {
		return nil, ErrMissingCredentials
	}
	host := strings.TrimRight(strings.TrimSpace(cfg.Host), "/")
	if host == "" {
		return nil, errors.New("datadog: host is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := resty.New().
		SetBaseURL(host).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("DD-API-KEY", cfg.APIKey).
		SetHeader("DD-APPLICATION-KEY", cfg.AppKey)

	return &Client{http: hc, log: log.With(logx.String("comp", "datadog"))}, nil
}

func (c *Client) Close() error {
	if c == nil || c.http == nil {
		return nil
	}
	return c.http.Close()
}

// CreateEvent posts ev to the events endpoint.
func (c *Client) CreateEvent(ctx context.Context, ev event.Event) error {
	if err := validate(ev); err != nil {
		return err
	}

	var out createEventResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(createEventRequest{Title: ev.Title, Text: ev.Text, Tags: ev.Tags}).
		SetResult(&out).
		SetError(&errorResponse{}).
		Post(eventsPath)
	if err != nil {
		return fmt.Errorf("datadog create event: %w", err)
	}

	code := res.StatusCode()
	switch {
	case code >= 400 && code < 500:
		return &ValidationError{StatusCode: code, Reasons: rejectionReasons(res)}
	case res.IsError():
		return fmt.Errorf("datadog create event: HTTP %d: %s", code, strings.TrimSpace(res.String()))
	}

	c.log.Debug("event created",
		logx.String("title", ev.Title),
		logx.Int("status_code", code),
		logx.Any("event_id", out.Event.ID),
	)
	return nil
}

func validate(ev event.Event) error {
	var reasons []string
	if strings.TrimSpace(ev.Title) == "" {
		reasons = append(reasons, "title must not be empty")
	}
	if len(ev.Text) > maxTextLen {
		reasons = append(reasons, fmt.Sprintf("text exceeds %d characters", maxTextLen))
	}
	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}

// rejectionReasons prefers the API's decoded "errors" list and falls back
// to the raw body when the response was not the documented JSON shape.
func rejectionReasons(res *resty.Response) []string {
	if er, ok := res.Error().(*errorResponse); ok && er != nil && len(er.Errors) > 0 {
		return er.Errors
	}
	if body := strings.TrimSpace(res.String()); body != "" {
		return []string{body}
	}
	return nil
}
