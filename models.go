package geneticsqa

import "sort"

// WorkItem is one unit of generation work: a category and the specific
// subtopic to write a question about.
type WorkItem struct {
	Category string
	Topic    string
}

// Question represents a single generated multiple-choice exam question.
// Options is keyed by answer letter (A-H for the legacy variant, A-J for
// the current one). Fields are never mutated after validation; review and
// defense passes attach their verdicts instead.
type Question struct {
	Question      string            `json:"question" validate:"required"`
	Options       map[string]string `json:"options" validate:"required"`
	CorrectAnswer string            `json:"correct_answer" validate:"required"`

	// Legacy records carry step-by-step thinking; current records carry
	// brief reasoning plus a confidence level and a concept tag.
	Thinking    string `json:"thinking,omitempty"`
	Reasoning   string `json:"reasoning,omitempty"`
	Confidence  string `json:"confidence,omitempty"`
	CoreConcept string `json:"core_concept,omitempty"`

	Topic    string `json:"topic,omitempty"`
	Category string `json:"category,omitempty"`
	Subtopic string `json:"subtopic,omitempty"`

	Review  *ReviewVerdict  `json:"review,omitempty"`
	Defense *DefenseVerdict `json:"defense,omitempty"`
}

// Letters returns the option letters in display order.
func (q *Question) Letters() []string {
	letters := make([]string, 0, len(q.Options))
	for letter := range q.Options {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters
}

// Rationale returns whichever explanation field the record carries.
func (q *Question) Rationale() string {
	if q.Reasoning != "" {
		return q.Reasoning
	}
	return q.Thinking
}

// ConceptTag returns the duplicate-avoidance tag, empty if the record has none.
func (q *Question) ConceptTag() string {
	return q.CoreConcept
}

// ReviewVerdict is the outcome of an auto-review pass.
type ReviewVerdict struct {
	Verdict    string   `json:"verdict"`
	Confidence string   `json:"confidence,omitempty"`
	Concerns   []string `json:"concerns,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

const (
	VerdictPass = "PASS"
	VerdictFlag = "FLAG"
)

// DefenseVerdict is the outcome of an auto-defense pass.
type DefenseVerdict struct {
	CanDefend  bool     `json:"can_defend"`
	Defense    string   `json:"defense"`
	WeakPoints []string `json:"weak_points,omitempty"`
}

// GenerationFailure records an item that never became a valid question, so
// failed attempts stay auditable in the failure partition.
type GenerationFailure struct {
	Category string `json:"category"`
	Subtopic string `json:"subtopic"`
	Error    string `json:"error"`
}

// ChatMessage is one turn of an instruction-tuning example.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatExample is a question converted to chat format for fine-tuning.
type ChatExample struct {
	Messages []ChatMessage `json:"messages"`
	Category string        `json:"category"`
	Subtopic string        `json:"subtopic"`
}
