package catalog

// Phase is one of the four experiential-cycle stages every step is tagged with.
type Phase string

const (
	PhaseExperience        Phase = "experience"
	PhaseReflection        Phase = "reflection"
	PhaseConceptualization Phase = "conceptualization"
	PhaseExperimentation   Phase = "experimentation"
)

// AllPhases returns the phases in cycle order.
func AllPhases() []Phase {
	return []Phase{
		PhaseExperience,
		PhaseReflection,
		PhaseConceptualization,
		PhaseExperimentation,
	}
}

// Label returns the display label shown in the lesson HUD.
func (p Phase) Label() string {
	switch p {
	case PhaseExperience:
		return "EXPERIENCE"
	case PhaseReflection:
		return "REFLECTION"
	case PhaseConceptualization:
		return "THEORY"
	case PhaseExperimentation:
		return "PRACTICE"
	default:
		return string(p)
	}
}

// Category classifies a lesson for class-bonus lookups.
type Category string

const (
	CategoryCode    Category = "code"
	CategoryContent Category = "content"
	CategoryConfig  Category = "config"

	// Award categories outside the class-bonus table.
	CategoryBoss        Category = "boss"
	CategoryFinalBoss   Category = "finalBoss"
	CategoryPractice    Category = "practice"
	CategoryInteractive Category = "interactive"
	CategoryReplay      Category = "replay"
)

// StepKind tags the content type of a lesson step.
type StepKind string

const (
	StepVideo       StepKind = "video"
	StepImage       StepKind = "image"
	StepText        StepKind = "text"
	StepInteractive StepKind = "interactive"
	StepPractice    StepKind = "practice"
	StepReflection  StepKind = "reflection"
)

// InteractiveKind tags the subtype of an interactive step.
type InteractiveKind string

const (
	InteractiveSequence InteractiveKind = "sequence"
	InteractiveMatching InteractiveKind = "matching"
)

// Choice is a single answer option. Exactly one choice per question is
// correct; incorrect boss-question choices carry a damage value.
type Choice struct {
	Text     string `json:"text"`
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback,omitempty"`
	Damage   int    `json:"damage,omitempty"`
}

// Question is a scored multiple-choice question.
type Question struct {
	Context string   `json:"context,omitempty"`
	Text    string   `json:"text"`
	Choices []Choice `json:"choices"`
}

// CorrectIndex returns the index of the correct choice, or -1 if none.
func (q Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c.Correct {
			return i
		}
	}
	return -1
}

// Pair is one left/right pairing in a matching interaction.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Step is one stage of a lesson. Kind selects which payload fields are
// meaningful; renderers switch on Kind (and Interactive for interactive
// steps) exhaustively.
type Step struct {
	Kind  StepKind `json:"type"`
	Phase Phase    `json:"phase"`
	Title string   `json:"title"`

	// Media payloads (video/image). Asset files are placeholders resolved
	// by the presentation layer.
	MediaFile        string `json:"mediaFile,omitempty"`
	MediaDescription string `json:"mediaDescription,omitempty"`
	WatchPrompt      string `json:"watchPrompt,omitempty"`

	// Text payloads (text/reflection/image captions).
	Content     string   `json:"content,omitempty"`
	KeyPoints   []string `json:"keyPoints,omitempty"`
	CodeExample string   `json:"codeExample,omitempty"`
	Callouts    []string `json:"callouts,omitempty"`
	Prompts     []string `json:"prompts,omitempty"`
	Summary     string   `json:"summary,omitempty"`

	// Interactive payload.
	Interactive  InteractiveKind `json:"interactiveType,omitempty"`
	Instructions string          `json:"instructions,omitempty"`
	Items        []string        `json:"items,omitempty"`
	Pairs        []Pair          `json:"pairs,omitempty"`

	// Practice payload.
	Scenario string   `json:"scenario,omitempty"`
	Question string   `json:"question,omitempty"`
	Choices  []Choice `json:"choices,omitempty"`

	// RequiresCompletion gates Advance until the step's interaction is
	// satisfied.
	RequiresCompletion bool `json:"requiresCompletion,omitempty"`
}

// Lesson is an ordered sequence of steps with a completion reward.
type Lesson struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	XPReward    int      `json:"xpReward"`
	StarReward  int      `json:"starReward"`
	Category    Category `json:"category"`
	Steps       []Step   `json:"steps"`
}

// Boss is a world's scored encounter. For worlds 1..4 Questions is the
// fixed ordered question list; for the final world it is the exam pool
// the exam samples from.
type Boss struct {
	Name            string     `json:"name"`
	HP              int        `json:"hp"`
	XPReward        int        `json:"xpReward"`
	StarReward      int        `json:"starReward"`
	Intro           string     `json:"intro,omitempty"`
	ScenarioContext string     `json:"scenarioContext,omitempty"`
	Questions       []Question `json:"questions"`
}

// World is one region of the course map.
type World struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	NPC         string   `json:"npc,omitempty"`
	IntroText   string   `json:"introText,omitempty"`
	Lessons     []Lesson `json:"lessons"`
	Boss        Boss     `json:"boss"`
}

// IsFinal reports whether this is the certification world, whose boss is
// the sampled final exam rather than a fixed question run.
func (w World) IsFinal() bool {
	return w.ID == NumWorlds
}
