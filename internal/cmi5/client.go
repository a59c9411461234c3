package cmi5

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the LRS using the Basic token obtained at launch.
type Client struct {
	endpoint  string // LRS base URL, trailing slash preserved from launch
	authToken string
	hc        *http.Client
}

// FetchAuthToken exchanges the one-time fetch URL for a Basic auth
// token. The fetch URL may only be POSTed once per launch.
func FetchAuthToken(ctx context.Context, fetchURL string, hc *http.Client) (string, error) {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fetchURL, nil)
	if err != nil {
		return "", &AuthError{URL: fetchURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return "", &AuthError{URL: fetchURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &AuthError{URL: fetchURL, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	var body struct {
		AuthToken string `json:"auth-token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &AuthError{URL: fetchURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	if body.AuthToken == "" {
		return "", &AuthError{URL: fetchURL, Err: fmt.Errorf("empty auth-token")}
	}
	return body.AuthToken, nil
}

// NewClient builds an LRS client for the given endpoint and token.
func NewClient(endpoint, authToken string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{endpoint: endpoint, authToken: authToken, hc: hc}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Basic "+c.authToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Experience-API-Version", apiVersion)
}

// PostStatement sends one statement to the LRS statements resource.
func (c *Client) PostStatement(ctx context.Context, st *Statement) error {
	body, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal statement: %w", err)
	}

	u := c.endpoint + "statements"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: "post statement", URL: u, Err: err}
	}
	c.setHeaders(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return &TransportError{Op: "post statement", URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: "post statement", URL: u, StatusCode: resp.StatusCode}
	}
	return nil
}

// StateQuery identifies one document in the activities/state resource.
type StateQuery struct {
	ActivityID   string
	Actor        Actor
	Registration string
	StateID      string
}

func (c *Client) stateURL(q StateQuery) (string, error) {
	agent, err := json.Marshal(q.Actor)
	if err != nil {
		return "", fmt.Errorf("marshal agent: %w", err)
	}
	v := url.Values{
		"activityId":   {q.ActivityID},
		"agent":        {string(agent)},
		"stateId":      {q.StateID},
		"registration": {q.Registration},
	}
	return c.endpoint + "activities/state?" + v.Encode(), nil
}

// PutState writes a state document.
func (c *Client) PutState(ctx context.Context, q StateQuery, doc any) error {
	u, err := c.stateURL(q)
	if err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: "put state", URL: u, Err: err}
	}
	c.setHeaders(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return &TransportError{Op: "put state", URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: "put state", URL: u, StatusCode: resp.StatusCode}
	}
	return nil
}

// GetState reads a state document into dst. Returns false if the
// document does not exist.
func (c *Client) GetState(ctx context.Context, q StateQuery, dst any) (bool, error) {
	u, err := c.stateURL(q)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, &TransportError{Op: "get state", URL: u, Err: err}
	}
	c.setHeaders(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return false, &TransportError{Op: "get state", URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, &TransportError{Op: "get state", URL: u, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return false, &TransportError{Op: "get state", URL: u, Err: fmt.Errorf("decode: %w", err)}
	}
	return true, nil
}

// FetchLaunchData reads the LMS.LaunchData document, falling back to
// defaults when the LMS never wrote one.
func (c *Client) FetchLaunchData(ctx context.Context, activityID string, actor Actor, registration string) (LaunchData, error) {
	ld := LaunchData{LaunchMode: "Normal", MasteryScore: DefaultMasteryScore}

	ok, err := c.GetState(ctx, StateQuery{
		ActivityID:   activityID,
		Actor:        actor,
		Registration: registration,
		StateID:      "LMS.LaunchData",
	}, &ld)
	if err != nil {
		return ld, err
	}
	if !ok {
		return LaunchData{LaunchMode: "Normal", MasteryScore: DefaultMasteryScore}, nil
	}
	if ld.LaunchMode == "" {
		ld.LaunchMode = "Normal"
	}
	if ld.MasteryScore == 0 {
		ld.MasteryScore = DefaultMasteryScore
	}
	return ld, nil
}
