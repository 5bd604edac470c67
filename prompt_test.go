package geneticsqa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGenerationPromptCurrent(t *testing.T) {
	item := WorkItem{Category: "molecular_genetics", Topic: "Telomeres and telomerase"}
	prompt := BuildGenerationPrompt(CurrentSchema, item, NewConceptRegistry())

	assert.Contains(t, prompt, "Telomeres and telomerase")
	assert.Contains(t, prompt, `"topic": "molecular_genetics"`)
	assert.Contains(t, prompt, "- None yet")
	assert.Contains(t, prompt, "exactly 10 options (A-J)")
	assert.NotContains(t, prompt, "{topic}")
	assert.NotContains(t, prompt, "{covered_concepts}")
}

func TestBuildGenerationPromptCoveredConcepts(t *testing.T) {
	reg := NewConceptRegistry()
	reg.Add("telomerase RNA template role")
	reg.Add("histone acetylation transcription activation")

	item := WorkItem{Category: "molecular_genetics", Topic: "Chromatin remodeling and epigenetic inheritance"}
	prompt := BuildGenerationPrompt(CurrentSchema, item, reg)

	assert.Contains(t, prompt, "- telomerase RNA template role\n- histone acetylation transcription activation")
	assert.NotContains(t, prompt, "- None yet")
}

func TestBuildGenerationPromptLegacy(t *testing.T) {
	item := WorkItem{Category: "classical_genetics", Topic: "Pedigree analysis"}
	prompt := BuildGenerationPrompt(LegacySchema, item, NewConceptRegistry())

	assert.Contains(t, prompt, "Pedigree analysis")
	assert.Contains(t, prompt, "exactly 8 answer options (A through H)")
	assert.Contains(t, prompt, `"topic": "classical_genetics"`)
	assert.NotContains(t, prompt, "ALREADY COVERED CONCEPTS")
}

func TestBuildReviewPrompt(t *testing.T) {
	q := validCurrentQuestion()
	prompt := BuildReviewPrompt(q)

	assert.Contains(t, prompt, q.Question)
	assert.Contains(t, prompt, "STATED CORRECT ANSWER: C")
	assert.Contains(t, prompt, q.Reasoning)
	assert.Contains(t, prompt, "A. option 1")
}

func TestBuildDefensePrompt(t *testing.T) {
	q := validCurrentQuestion()
	prompt := BuildDefensePrompt(q)

	assert.Contains(t, prompt, q.Question)
	assert.Contains(t, prompt, "The stated answer (C) is DEFINITIVELY correct")
	assert.Contains(t, prompt, "J. option 10")
}

func TestFormatOptionsOrder(t *testing.T) {
	options := map[string]string{"B": "beta", "A": "alpha", "C": "gamma"}
	assert.Equal(t, "A. alpha\nB. beta\nC. gamma", FormatOptions(options))
}

func TestConceptRegistry(t *testing.T) {
	reg := NewConceptRegistry()
	assert.Equal(t, "- None yet", reg.Bulleted())
	assert.Equal(t, 0, reg.Len())

	reg.Add("first tag")
	reg.Add("") // ignored
	reg.Add("second tag")

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "- first tag\n- second tag", reg.Bulleted())
}
