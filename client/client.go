// Package client is the Go SDK for the gatherly activity service. It
// centralizes the base URL, response unwrapping and status-code error
// classification, and provides ActivityStore, a local registry that
// stays consistent with the remote store across mutations.
package client

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Hooks are the side effects performed by error classification. Each
// callback is optional; classification always returns the error to the
// caller regardless of which hooks fire.
type Hooks struct {
	// Notify surfaces a user-facing notice (the toast analogue).
	Notify func(message string)
	// NavigateNotFound routes the UI to its not-found view.
	NavigateNotFound func()
	// NavigateServerError routes the UI to its server-error view.
	NavigateServerError func()
	// RecordServerError stores the 500 detail for display.
	RecordServerError func(ServerError)
}

type Client struct {
	rest    *resty.Client
	hooks   Hooks
	latency time.Duration
	log     zerolog.Logger
}

// New constructs a Client for the given base URL, e.g.
// "http://localhost:5000/api". Every outbound call shares one response
// pipeline: a fixed artificial latency before a successful response
// resolves, and per-status classification of failures. Exactly one
// attempt is made per call; there are no automatic retries.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		latency: time.Second,
		log:     zerolog.Nop(),
	}
	c.rest = resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	c.rest.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.IsError() {
			return c.classify(resp)
		}
		if c.latency > 0 {
			select {
			case <-resp.Request.Context().Done():
				return resp.Request.Context().Err()
			case <-time.After(c.latency):
			}
		}
		return nil
	})

	return c
}

// classify performs the per-status side effect and returns the
// original failure so callers downstream still observe it.
func (c *Client) classify(resp *resty.Response) error {
	status := resp.StatusCode()
	body := resp.Body()
	apiErr := &APIError{StatusCode: status, Body: string(body)}

	c.log.Debug().Int("status", status).Str("method", resp.Request.Method).Msg("classifying API failure")

	switch status {
	case http.StatusBadRequest:
		var payload struct {
			Errors map[string][]string `json:"errors"`
			Error  string              `json:"error"`
		}
		_ = json.Unmarshal(body, &payload)

		if resp.Request.Method == http.MethodGet {
			if _, ok := payload.Errors["id"]; ok {
				c.navigateNotFound()
			}
		}
		if len(payload.Errors) > 0 {
			apiErr.Fields = payload.Errors
			keys := make([]string, 0, len(payload.Errors))
			for k := range payload.Errors {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				apiErr.Messages = append(apiErr.Messages, payload.Errors[k]...)
			}
		} else {
			msg := payload.Error
			if msg == "" {
				msg = string(body)
			}
			c.notify(msg)
		}
	case http.StatusUnauthorized:
		c.notify("unauthorized")
	case http.StatusForbidden:
		c.notify("forbidden")
	case http.StatusNotFound:
		c.navigateNotFound()
	case http.StatusInternalServerError:
		var se ServerError
		if err := json.Unmarshal(body, &se); err != nil || se.StatusCode == 0 {
			se = ServerError{StatusCode: status, Message: string(body)}
		}
		c.recordServerError(se)
		c.navigateServerError()
	}

	return apiErr
}

func (c *Client) notify(message string) {
	if c.hooks.Notify != nil {
		c.hooks.Notify(message)
	}
}

func (c *Client) navigateNotFound() {
	if c.hooks.NavigateNotFound != nil {
		c.hooks.NavigateNotFound()
	}
}

func (c *Client) navigateServerError() {
	if c.hooks.NavigateServerError != nil {
		c.hooks.NavigateServerError()
	}
}

func (c *Client) recordServerError(se ServerError) {
	if c.hooks.RecordServerError != nil {
		c.hooks.RecordServerError(se)
	}
}
