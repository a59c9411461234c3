package cmi5

import (
	"errors"
	"net/url"
	"testing"
)

func TestParseLaunchURL(t *testing.T) {
	raw := "https://lms.example.mil/content/index.html?" + url.Values{
		"fetch":        {"https://lms.example.mil/fetch/abc"},
		"endpoint":     {"https://lrs.example.mil/xapi/"},
		"actor":        {`{"name":"Jordan","mbox":"mailto:jordan@example.mil"}`},
		"registration": {"9f1c0b44-6a3f-4d8a-9a6a-67f4d43a1111"},
		"activityId":   {"https://lms.example.mil/course/au1"},
	}.Encode()

	p, err := ParseLaunchURL(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Standalone() {
		t.Error("LMS launch should not be standalone")
	}
	if p.Actor == nil || p.Actor.Name != "Jordan" {
		t.Errorf("got actor %+v, want Jordan", p.Actor)
	}
	if p.ActivityID != "https://lms.example.mil/course/au1" {
		t.Errorf("got activityId %q", p.ActivityID)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestParseLaunch_Standalone(t *testing.T) {
	p, err := ParseLaunch(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Standalone() {
		t.Error("empty launch should be standalone")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("standalone launch should validate, got %v", err)
	}
	if p.ResolvedActivityID() != DefaultActivityID {
		t.Errorf("got %q, want default activity id", p.ResolvedActivityID())
	}
	a := p.ResolvedActor()
	if a.Account == nil || a.Account.Name != "standalone-user" {
		t.Errorf("got actor %+v, want standalone account", a)
	}
}

func TestParseLaunch_BadActor(t *testing.T) {
	_, err := ParseLaunch(url.Values{"actor": {"{not json"}})
	var le *LaunchError
	if !errors.As(err, &le) {
		t.Fatalf("expected LaunchError, got %v", err)
	}
	if le.Param != "actor" {
		t.Errorf("got param %q, want actor", le.Param)
	}
}

func TestValidate_PartialLMSLaunch(t *testing.T) {
	tests := []struct {
		name string
		p    LaunchParams
		want string
	}{
		{
			name: "missing endpoint",
			p:    LaunchParams{Fetch: "https://x/fetch"},
			want: "endpoint",
		},
		{
			name: "missing actor",
			p:    LaunchParams{Fetch: "https://x/fetch", Endpoint: "https://x/xapi/"},
			want: "actor",
		},
		{
			name: "missing registration",
			p: LaunchParams{
				Fetch: "https://x/fetch", Endpoint: "https://x/xapi/",
				Actor: &Actor{Name: "A"},
			},
			want: "registration",
		},
		{
			name: "missing activityId",
			p: LaunchParams{
				Fetch: "https://x/fetch", Endpoint: "https://x/xapi/",
				Actor: &Actor{Name: "A"}, Registration: "r1",
			},
			want: "activityId",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			var le *LaunchError
			if !errors.As(err, &le) {
				t.Fatalf("expected LaunchError, got %v", err)
			}
			if le.Param != tt.want {
				t.Errorf("got param %q, want %q", le.Param, tt.want)
			}
		})
	}
}
