package catalog

import "fmt"

// validateWorlds performs all structural checks on a world set.
// Returns a *ValidationError describing every problem found, or nil.
func validateWorlds(worlds []World) error {
	var errs []string

	if len(worlds) != NumWorlds {
		errs = append(errs, fmt.Sprintf("expected %d worlds, got %d", NumWorlds, len(worlds)))
	}

	// Worlds must be numbered sequentially from 1 so that unlock order
	// is well defined.
	for i, w := range worlds {
		if w.ID != i+1 {
			errs = append(errs, fmt.Sprintf("world at position %d has id %d, want %d", i, w.ID, i+1))
		}
		if w.Name == "" {
			errs = append(errs, fmt.Sprintf("world %d has no name", w.ID))
		}
	}

	// Lesson ids are globally unique.
	lessonIDs := make(map[string]bool)
	for _, w := range worlds {
		for _, l := range w.Lessons {
			if l.ID == "" {
				errs = append(errs, fmt.Sprintf("world %d: lesson %q has empty id", w.ID, l.Name))
				continue
			}
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("duplicate lesson id: %q", l.ID))
			}
			lessonIDs[l.ID] = true

			if len(l.Steps) == 0 {
				errs = append(errs, fmt.Sprintf("lesson %q has no steps", l.ID))
			}
			switch l.Category {
			case CategoryCode, CategoryContent, CategoryConfig:
			default:
				errs = append(errs, fmt.Sprintf("lesson %q has invalid category %q", l.ID, l.Category))
			}
			for si, s := range l.Steps {
				errs = append(errs, validateStep(l.ID, si, s)...)
			}
		}
	}

	for _, w := range worlds {
		errs = append(errs, validateBoss(w)...)
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func validateStep(lessonID string, idx int, s Step) []string {
	var errs []string
	prefix := fmt.Sprintf("lesson %q step %d", lessonID, idx)

	switch s.Phase {
	case PhaseExperience, PhaseReflection, PhaseConceptualization, PhaseExperimentation:
	default:
		errs = append(errs, fmt.Sprintf("%s: invalid phase %q", prefix, s.Phase))
	}

	switch s.Kind {
	case StepVideo, StepImage, StepText, StepReflection:
		// Informational steps never gate advancement.
		if s.RequiresCompletion {
			errs = append(errs, fmt.Sprintf("%s: %s steps cannot require completion", prefix, s.Kind))
		}
	case StepPractice:
		errs = append(errs, validateChoices(prefix, s.Choices)...)
	case StepInteractive:
		switch s.Interactive {
		case InteractiveSequence:
			if len(s.Items) < 2 {
				errs = append(errs, fmt.Sprintf("%s: sequence needs at least 2 items, got %d", prefix, len(s.Items)))
			}
		case InteractiveMatching:
			if len(s.Pairs) < 2 {
				errs = append(errs, fmt.Sprintf("%s: matching needs at least 2 pairs, got %d", prefix, len(s.Pairs)))
			}
		default:
			errs = append(errs, fmt.Sprintf("%s: invalid interactive type %q", prefix, s.Interactive))
		}
	default:
		errs = append(errs, fmt.Sprintf("%s: invalid step type %q", prefix, s.Kind))
	}

	return errs
}

func validateBoss(w World) []string {
	var errs []string
	b := w.Boss
	prefix := fmt.Sprintf("world %d boss %q", w.ID, b.Name)

	if b.Name == "" {
		errs = append(errs, fmt.Sprintf("world %d has no boss", w.ID))
	}
	if b.HP <= 0 {
		errs = append(errs, fmt.Sprintf("%s: hp must be > 0, got %d", prefix, b.HP))
	}
	if len(b.Questions) == 0 {
		errs = append(errs, fmt.Sprintf("%s: no questions", prefix))
	}
	// The final exam samples FinalExamSize distinct questions; a smaller
	// pool must fail at load time, not mid-exam.
	if w.IsFinal() && len(b.Questions) < FinalExamSize {
		errs = append(errs, fmt.Sprintf("%s: exam pool has %d questions, need at least %d", prefix, len(b.Questions), FinalExamSize))
	}

	for qi, q := range b.Questions {
		qp := fmt.Sprintf("%s question %d", prefix, qi)
		errs = append(errs, validateChoices(qp, q.Choices)...)
	}
	return errs
}

// validateChoices enforces the one-correct-choice invariant.
func validateChoices(prefix string, choices []Choice) []string {
	var errs []string
	if len(choices) < 2 {
		errs = append(errs, fmt.Sprintf("%s: needs at least 2 choices, got %d", prefix, len(choices)))
	}
	correct := 0
	for _, c := range choices {
		if c.Correct {
			correct++
		}
	}
	if correct != 1 {
		errs = append(errs, fmt.Sprintf("%s: must have exactly 1 correct choice, got %d", prefix, correct))
	}
	return errs
}
