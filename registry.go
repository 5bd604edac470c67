package geneticsqa

import "strings"

// ConceptRegistry is the ordered list of concept tags accepted earlier in
// the same run. It is rendered into every subsequent generation prompt to
// steer the model away from duplicate concepts. Lifetime is one run; it is
// never persisted. The registry is an explicit value threaded through the
// driver, not shared state.
type ConceptRegistry struct {
	tags []string
}

// NewConceptRegistry returns an empty registry.
func NewConceptRegistry() *ConceptRegistry {
	return &ConceptRegistry{}
}

// Add appends a concept tag. Empty tags are ignored.
func (r *ConceptRegistry) Add(tag string) {
	if tag == "" {
		return
	}
	r.tags = append(r.tags, tag)
}

// Len returns the number of recorded tags.
func (r *ConceptRegistry) Len() int {
	return len(r.tags)
}

// Bulleted renders the registry as the prompt expects: one bullet per tag,
// or "- None yet" before the first acceptance.
func (r *ConceptRegistry) Bulleted() string {
	if len(r.tags) == 0 {
		return "- None yet"
	}
	var sb strings.Builder
	for i, tag := range r.tags {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(tag)
	}
	return sb.String()
}
