package cmi5

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// DefaultActivityID is used when the launch carries no activityId,
// which is the case in standalone play.
const DefaultActivityID = "http://pcte.mil/training/pcte-training-rpg"

// LaunchParams are the query parameters an LMS passes when launching
// cmi5 content: where to get a token, where to send statements, and who
// the learner is.
type LaunchParams struct {
	Fetch        string
	Endpoint     string
	Actor        *Actor
	Registration string
	ActivityID   string
}

// ParseLaunch extracts launch parameters from query values. A launch
// with neither fetch nor endpoint is a valid standalone launch.
func ParseLaunch(q url.Values) (LaunchParams, error) {
	p := LaunchParams{
		Fetch:        q.Get("fetch"),
		Endpoint:     q.Get("endpoint"),
		Registration: q.Get("registration"),
		ActivityID:   q.Get("activityId"),
	}

	if raw := q.Get("actor"); raw != "" {
		var a Actor
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return LaunchParams{}, &LaunchError{Param: "actor", Err: err}
		}
		p.Actor = &a
	}
	return p, nil
}

// ParseLaunchURL parses launch parameters out of a full launch URL as
// copied from the LMS.
func ParseLaunchURL(raw string) (LaunchParams, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return LaunchParams{}, &LaunchError{Param: "url", Err: err}
	}
	return ParseLaunch(u.Query())
}

// Standalone reports whether the course runs without an LMS. Statements
// are still built and logged locally, just never posted.
func (p LaunchParams) Standalone() bool {
	return p.Fetch == "" && p.Endpoint == ""
}

// ResolvedActivityID returns the launch activity id or the standalone
// default.
func (p LaunchParams) ResolvedActivityID() string {
	if p.ActivityID != "" {
		return p.ActivityID
	}
	return DefaultActivityID
}

// ResolvedActor returns the launch actor or the standalone placeholder.
func (p LaunchParams) ResolvedActor() Actor {
	if p.Actor != nil {
		return *p.Actor
	}
	return Actor{
		Account: &Account{
			HomePage: "http://pcte.mil/standalone",
			Name:     "standalone-user",
		},
	}
}

// Validate checks that an LMS launch carries everything needed to
// report. Standalone launches always validate.
func (p LaunchParams) Validate() error {
	if p.Standalone() {
		return nil
	}
	if p.Fetch == "" {
		return &LaunchError{Param: "fetch", Err: fmt.Errorf("required in LMS mode")}
	}
	if p.Endpoint == "" {
		return &LaunchError{Param: "endpoint", Err: fmt.Errorf("required in LMS mode")}
	}
	if p.Actor == nil {
		return &LaunchError{Param: "actor", Err: fmt.Errorf("required in LMS mode")}
	}
	if p.Registration == "" {
		return &LaunchError{Param: "registration", Err: fmt.Errorf("required in LMS mode")}
	}
	if p.ActivityID == "" {
		return &LaunchError{Param: "activityId", Err: fmt.Errorf("required in LMS mode")}
	}
	return nil
}

// LaunchData is the LMS.LaunchData document from the State API. The
// mastery score there overrides the course default.
type LaunchData struct {
	LaunchMode       string          `json:"launchMode"`
	MasteryScore     float64         `json:"masteryScore"`
	LaunchParameters string          `json:"launchParameters"`
	ReturnURL        string          `json:"returnURL"`
	ContextTemplate  json.RawMessage `json:"contextTemplate"`
}

// DefaultMasteryScore applies when the LMS provides no launch data.
const DefaultMasteryScore = 0.8
