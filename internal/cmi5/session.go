package cmi5

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session binds statement construction to one launch: the actor, the
// activity, the registration, and a fresh cmi5 session id. Builders are
// pure; the bridge handles delivery.
type Session struct {
	actor           Actor
	activityID      string
	registration    string
	sessionID       string
	contextTemplate map[string]any

	now func() time.Time
}

// NewSession derives a statement session from launch parameters.
func NewSession(p LaunchParams) *Session {
	reg := p.Registration
	if reg == "" {
		reg = uuid.NewString()
	}
	return &Session{
		actor:        p.ResolvedActor(),
		activityID:   p.ResolvedActivityID(),
		registration: reg,
		sessionID:    uuid.NewString(),
		now:          time.Now,
	}
}

// SetContextTemplate merges the LMS-provided context template into
// every statement built afterwards.
func (s *Session) SetContextTemplate(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var tmpl map[string]any
	if err := json.Unmarshal(raw, &tmpl); err != nil {
		return fmt.Errorf("decode context template: %w", err)
	}
	s.contextTemplate = tmpl
	return nil
}

// ID returns the cmi5 session id.
func (s *Session) ID() string { return s.sessionID }

// ActivityID returns the root activity id.
func (s *Session) ActivityID() string { return s.activityID }

// Registration returns the registration id.
func (s *Session) Registration() string { return s.registration }

// Actor returns the session actor.
func (s *Session) Actor() Actor { return s.actor }

func (s *Session) build(v Verb, result *Result, obj *Object) *Statement {
	st := &Statement{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC(),
		Actor:     s.actor,
		Verb:      v,
		Result:    result,
		Context: &Context{
			Registration: s.registration,
			Extensions: map[string]any{
				sessionIDExtension: s.sessionID,
			},
		},
	}

	if obj != nil {
		st.Object = *obj
	} else {
		st.Object = Object{
			ID: s.activityID,
			Definition: &Definition{
				Name:        map[string]string{"en-US": "PCTE Training RPG"},
				Description: map[string]string{"en-US": "Learn to create and upload CMI5 training content to PCTE"},
				Type:        ActivityCourse,
			},
		}
	}

	// PCTE's context template only ever carries extensions; the session
	// id extension wins on conflict.
	if exts, ok := s.contextTemplate["extensions"].(map[string]any); ok {
		for k, v := range exts {
			if k == sessionIDExtension {
				continue
			}
			st.Context.Extensions[k] = v
		}
	}

	return st
}

// Initialized is the mandatory first statement of a session.
func (s *Session) Initialized() *Statement {
	return s.build(VerbInitialized, nil, nil)
}

// Terminated is the mandatory last statement of a session.
func (s *Session) Terminated() *Statement {
	return s.build(VerbTerminated, nil, nil)
}

// WorldEntered marks the learner entering a world on the map.
func (s *Session) WorldEntered(worldID int, name string) *Statement {
	return s.build(VerbExperienced, nil, &Object{
		ID: fmt.Sprintf("%s/world/%d", s.activityID, worldID),
		Definition: &Definition{
			Name: map[string]string{"en-US": name},
			Type: ActivityModule,
		},
	})
}

// LessonStarted marks a lesson launch.
func (s *Session) LessonStarted(worldID int, lessonID, name string) *Statement {
	return s.build(VerbInitialized, nil, &Object{
		ID: fmt.Sprintf("%s/world/%d/lesson/%s", s.activityID, worldID, lessonID),
		Definition: &Definition{
			Name: map[string]string{"en-US": name},
			Type: ActivityLesson,
		},
	})
}

// StepProgressed marks one lesson step done, tagged with its learning
// cycle phase.
func (s *Session) StepProgressed(worldID int, lessonID string, stepIndex int, phase, kind string) *Statement {
	return s.build(VerbProgressed, &Result{
		Extensions: map[string]any{
			phaseExtension: phase,
			stepExtension:  stepIndex,
		},
	}, &Object{
		ID: fmt.Sprintf("%s/world/%d/lesson/%s/step/%d", s.activityID, worldID, lessonID, stepIndex),
		Definition: &Definition{
			Name: map[string]string{"en-US": fmt.Sprintf("%s: %s", kind, phase)},
			Type: ActivityInteraction,
		},
	})
}

// LessonCompleted marks a lesson finished for the first time.
func (s *Session) LessonCompleted(worldID int, lessonID, name string) *Statement {
	return s.build(VerbCompleted, &Result{
		Completion: boolPtr(true),
	}, &Object{
		ID: fmt.Sprintf("%s/world/%d/lesson/%s", s.activityID, worldID, lessonID),
		Definition: &Definition{
			Name: map[string]string{"en-US": name},
			Type: ActivityLesson,
		},
	})
}

// LessonReviewed marks a lesson replay. Replays report progress, not a
// second completion.
func (s *Session) LessonReviewed(worldID int, lessonID, name string) *Statement {
	return s.build(VerbProgressed, nil, &Object{
		ID: fmt.Sprintf("%s/world/%d/lesson/%s", s.activityID, worldID, lessonID),
		Definition: &Definition{
			Name: map[string]string{"en-US": name},
			Type: ActivityLesson,
		},
	})
}

// QuestionAnswered records one boss question answer.
func (s *Session) QuestionAnswered(worldID, questionIndex int, correct bool, text string) *Statement {
	response := "incorrect"
	if correct {
		response = "correct"
	}
	return s.build(VerbAnswered, &Result{
		Success:  boolPtr(correct),
		Response: response,
	}, &Object{
		ID: fmt.Sprintf("%s/world/%d/boss/question/%d", s.activityID, worldID, questionIndex),
		Definition: &Definition{
			Name:            map[string]string{"en-US": text},
			Type:            ActivityQuestion,
			InteractionType: "choice",
		},
	})
}

// BossAssessed scores a world boss battle against the mastery bar.
func (s *Session) BossAssessed(worldID int, name string, score, maxScore int, mastery float64) *Statement {
	scaled := float64(score) / float64(maxScore)
	passed := scaled >= mastery
	v := VerbFailed
	if passed {
		v = VerbPassed
	}
	return s.build(v, &Result{
		Score: &Score{
			Raw:    intPtr(score),
			Min:    intPtr(0),
			Max:    intPtr(maxScore),
			Scaled: floatPtr(scaled),
		},
		Success:    boolPtr(passed),
		Completion: boolPtr(true),
	}, &Object{
		ID: fmt.Sprintf("%s/world/%d/boss", s.activityID, worldID),
		Definition: &Definition{
			Name: map[string]string{"en-US": name},
			Type: ActivityAssessment,
		},
	})
}

// ExamAssessed scores the certification exam.
func (s *Session) ExamAssessed(score, maxScore int, passed bool) *Statement {
	v := VerbFailed
	if passed {
		v = VerbPassed
	}
	return s.build(v, &Result{
		Score: &Score{
			Raw:    intPtr(score),
			Min:    intPtr(0),
			Max:    intPtr(maxScore),
			Scaled: floatPtr(float64(score) / float64(maxScore)),
		},
		Success:    boolPtr(passed),
		Completion: boolPtr(true),
	}, &Object{
		ID: s.activityID + "/final-boss",
		Definition: &Definition{
			Name: map[string]string{"en-US": "Final Boss: The Certification Exam"},
			Type: ActivityAssessment,
		},
	})
}

// LevelAchieved records a level-up.
func (s *Session) LevelAchieved(level, totalXP int) *Statement {
	return s.build(VerbAchieved, &Result{
		Extensions: map[string]any{
			levelExtension:   level,
			totalXPExtension: totalXP,
		},
	}, &Object{
		ID: fmt.Sprintf("%s/achievement/level-%d", s.activityID, level),
		Definition: &Definition{
			Name: map[string]string{"en-US": fmt.Sprintf("Reached Level %d", level)},
			Type: ActivityObjective,
		},
	})
}

// WorldCompleted marks a world finished.
func (s *Session) WorldCompleted(worldID int, name string) *Statement {
	return s.build(VerbCompleted, &Result{
		Completion: boolPtr(true),
	}, &Object{
		ID: fmt.Sprintf("%s/world/%d", s.activityID, worldID),
		Definition: &Definition{
			Name: map[string]string{"en-US": name},
			Type: ActivityModule,
		},
	})
}

// CourseCompleted is the course-level completed statement that precedes
// the pass/fail pair on certification.
func (s *Session) CourseCompleted() *Statement {
	return s.build(VerbCompleted, &Result{
		Completion: boolPtr(true),
	}, nil)
}

// CourseAssessed is the course-level passed/failed statement against
// the root activity, as the LMS move-on criteria require.
func (s *Session) CourseAssessed(scaled float64, passed bool) *Statement {
	v := VerbFailed
	if passed {
		v = VerbPassed
	}
	return s.build(v, &Result{
		Score:      &Score{Scaled: floatPtr(scaled)},
		Success:    boolPtr(passed),
		Completion: boolPtr(true),
	}, nil)
}

// ProgressReported reports overall course progress percentage.
func (s *Session) ProgressReported(percent int) *Statement {
	return s.build(VerbProgressed, &Result{
		Extensions: map[string]any{
			progressExtension: percent,
		},
	}, nil)
}
