package cmi5

import "time"

// xAPI version sent on every LRS request.
const apiVersion = "1.0.3"

// sessionIDExtension carries the cmi5 session id in statement context.
const sessionIDExtension = "https://w3id.org/xapi/cmi5/context/extensions/sessionid"

// progressExtension carries course progress percentage in results.
const progressExtension = "https://w3id.org/xapi/cmi5/result/extensions/progress"

// Custom result extensions for step and achievement tracking.
const (
	phaseExtension   = "http://pcte.mil/xapi/extensions/kolb-phase"
	stepExtension    = "http://pcte.mil/xapi/extensions/step-index"
	levelExtension   = "http://pcte.mil/xapi/extensions/level"
	totalXPExtension = "http://pcte.mil/xapi/extensions/total-xp"
)

// Activity type URIs.
const (
	ActivityCourse      = "http://adlnet.gov/expapi/activities/course"
	ActivityModule      = "http://adlnet.gov/expapi/activities/module"
	ActivityLesson      = "http://adlnet.gov/expapi/activities/lesson"
	ActivityInteraction = "http://adlnet.gov/expapi/activities/interaction"
	ActivityQuestion    = "http://adlnet.gov/expapi/activities/cmi.interaction"
	ActivityAssessment  = "http://adlnet.gov/expapi/activities/assessment"
	ActivityObjective   = "http://adlnet.gov/expapi/activities/objective"
)

// Verb is an xAPI verb reference.
type Verb struct {
	ID      string            `json:"id"`
	Display map[string]string `json:"display,omitempty"`
}

func verb(name string) Verb {
	return Verb{
		ID:      "http://adlnet.gov/expapi/verbs/" + name,
		Display: map[string]string{"en-US": name},
	}
}

// The verbs this course emits.
var (
	VerbInitialized = verb("initialized")
	VerbProgressed  = verb("progressed")
	VerbCompleted   = verb("completed")
	VerbPassed      = verb("passed")
	VerbFailed      = verb("failed")
	VerbTerminated  = verb("terminated")
	VerbExperienced = verb("experienced")
	VerbInteracted  = verb("interacted")
	VerbAnswered    = verb("answered")
	VerbAchieved    = verb("achieved")
)

// Name returns the short verb name, the last path segment of the id.
func (v Verb) Name() string {
	for i := len(v.ID) - 1; i >= 0; i-- {
		if v.ID[i] == '/' {
			return v.ID[i+1:]
		}
	}
	return v.ID
}

// Account identifies an actor via an account on a home page.
type Account struct {
	HomePage string `json:"homePage"`
	Name     string `json:"name"`
}

// Actor is the learner identity from the launch parameters.
type Actor struct {
	ObjectType string   `json:"objectType,omitempty"`
	Name       string   `json:"name,omitempty"`
	Mbox       string   `json:"mbox,omitempty"`
	Account    *Account `json:"account,omitempty"`
}

// Definition describes the activity a statement is about.
type Definition struct {
	Name            map[string]string `json:"name,omitempty"`
	Description     map[string]string `json:"description,omitempty"`
	Type            string            `json:"type,omitempty"`
	InteractionType string            `json:"interactionType,omitempty"`
}

// Object is the xAPI statement object, always an activity here.
type Object struct {
	ID         string      `json:"id"`
	ObjectType string      `json:"objectType,omitempty"`
	Definition *Definition `json:"definition,omitempty"`
}

// Score is an xAPI result score. Scaled is 0.0 to 1.0.
type Score struct {
	Scaled *float64 `json:"scaled,omitempty"`
	Raw    *int     `json:"raw,omitempty"`
	Min    *int     `json:"min,omitempty"`
	Max    *int     `json:"max,omitempty"`
}

// Result carries the outcome of a scored or tracked activity.
type Result struct {
	Score      *Score         `json:"score,omitempty"`
	Success    *bool          `json:"success,omitempty"`
	Completion *bool          `json:"completion,omitempty"`
	Response   string         `json:"response,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Context carries the registration and cmi5 session extensions.
type Context struct {
	Registration string         `json:"registration,omitempty"`
	Extensions   map[string]any `json:"extensions,omitempty"`
}

// Statement is a full xAPI statement as posted to the LRS.
type Statement struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     Actor     `json:"actor"`
	Verb      Verb      `json:"verb"`
	Object    Object    `json:"object"`
	Result    *Result   `json:"result,omitempty"`
	Context   *Context  `json:"context,omitempty"`
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
