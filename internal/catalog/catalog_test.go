package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_WorldCount(t *testing.T) {
	worlds := Default().Worlds()
	if len(worlds) != NumWorlds {
		t.Fatalf("got %d worlds, want %d", len(worlds), NumWorlds)
	}
	for i, w := range worlds {
		if w.ID != i+1 {
			t.Errorf("world at %d has id %d, want %d", i, w.ID, i+1)
		}
	}
}

func TestDefault_LessonCount(t *testing.T) {
	if got := Default().LessonCount(); got != 13 {
		t.Errorf("got %d lessons, want 13", got)
	}
}

func TestWorld_NotFound(t *testing.T) {
	_, err := Default().World(99)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Kind != "world" {
		t.Errorf("got kind %q, want %q", nf.Kind, "world")
	}
}

func TestFindLesson(t *testing.T) {
	ref, err := Default().FindLesson("w3_lesson2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.World.ID != 3 {
		t.Errorf("got world %d, want 3", ref.World.ID)
	}
	if ref.Lesson.Name != "CMI5 JavaScript Integration" {
		t.Errorf("got lesson %q, want %q", ref.Lesson.Name, "CMI5 JavaScript Integration")
	}
	if ref.Index != 1 {
		t.Errorf("got index %d, want 1", ref.Index)
	}
}

func TestFindLesson_NotFound(t *testing.T) {
	_, err := Default().FindLesson("w9_lesson1")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFinalWorld(t *testing.T) {
	w := Default().FinalWorld()
	if !w.IsFinal() {
		t.Fatal("final world not marked final")
	}
	if len(w.Lessons) != 0 {
		t.Errorf("final world has %d lessons, want 0", len(w.Lessons))
	}
	if len(w.Boss.Questions) < FinalExamSize {
		t.Errorf("exam pool has %d questions, want >= %d", len(w.Boss.Questions), FinalExamSize)
	}
}

func TestDefault_OneCorrectChoicePerQuestion(t *testing.T) {
	for _, w := range Default().Worlds() {
		for _, q := range w.Boss.Questions {
			if q.CorrectIndex() < 0 {
				t.Errorf("world %d boss question %q has no correct choice", w.ID, q.Text)
			}
		}
		for _, l := range w.Lessons {
			for si, s := range l.Steps {
				if s.Kind != StepPractice {
					continue
				}
				n := 0
				for _, c := range s.Choices {
					if c.Correct {
						n++
					}
				}
				if n != 1 {
					t.Errorf("lesson %s step %d: %d correct choices, want 1", l.ID, si, n)
				}
			}
		}
	}
}

func TestDefault_StepsFollowLearningCycle(t *testing.T) {
	// Every lesson ends with an experimentation step that gates completion.
	for _, w := range Default().Worlds() {
		for _, l := range w.Lessons {
			last := l.Steps[len(l.Steps)-1]
			if last.Phase != PhaseExperimentation {
				t.Errorf("lesson %s: last step phase %q, want experimentation", l.ID, last.Phase)
			}
			if !last.RequiresCompletion {
				t.Errorf("lesson %s: last step does not require completion", l.ID)
			}
		}
	}
}

func TestNew_RejectsDuplicateLessonIDs(t *testing.T) {
	worlds := builtinWorlds()
	worlds[1].Lessons[0].ID = worlds[0].Lessons[0].ID

	_, err := New(worlds)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNew_RejectsShortExamPool(t *testing.T) {
	worlds := builtinWorlds()
	worlds[4].Boss.Questions = worlds[4].Boss.Questions[:FinalExamSize-1]

	_, err := New(worlds)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNew_RejectsMissingCorrectChoice(t *testing.T) {
	worlds := builtinWorlds()
	q := &worlds[0].Boss.Questions[0]
	for i := range q.Choices {
		q.Choices[i].Correct = false
	}

	_, err := New(worlds)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNew_RejectsOutOfOrderWorlds(t *testing.T) {
	worlds := builtinWorlds()
	worlds[2].ID = 7

	_, err := New(worlds)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoad_SchemaRejectsBadStepType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.json")
	bad := `{"worlds":[{"id":1,"name":"W","boss":{"name":"B","hp":10,"questions":[{"text":"q","choices":[{"text":"a","correct":true},{"text":"b"}]}]},"lessons":[{"id":"l1","name":"L","xpReward":10,"category":"code","steps":[{"type":"hologram","phase":"experience","title":"T"}]}]}]}`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPhaseLabel(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseExperience, "EXPERIENCE"},
		{PhaseReflection, "REFLECTION"},
		{PhaseConceptualization, "THEORY"},
		{PhaseExperimentation, "PRACTICE"},
	}
	for _, tt := range tests {
		if got := tt.phase.Label(); got != tt.want {
			t.Errorf("Label(%q): got %q, want %q", tt.phase, got, tt.want)
		}
	}
}
