package geneticsqa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOptions(n int) map[string]string {
	const letters = "ABCDEFGHIJ"
	options := make(map[string]string, n)
	for i := 0; i < n; i++ {
		options[string(letters[i])] = fmt.Sprintf("option %d", i+1)
	}
	return options
}

func validCurrentQuestion() *Question {
	return &Question{
		Question:      "Which enzyme extends telomeres?",
		Options:       makeOptions(10),
		CorrectAnswer: "C",
		Reasoning:     "Telomerase carries its own RNA template.",
		Confidence:    "high",
		CoreConcept:   "telomerase RNA template role",
	}
}

func validLegacyQuestion() *Question {
	return &Question{
		Question:      "Which enzyme extends telomeres?",
		Options:       makeOptions(8),
		CorrectAnswer: "C",
		Thinking:      "We know telomeres shorten... so the enzyme must be telomerase.",
	}
}

func TestValidateCurrentAccepts(t *testing.T) {
	require.NoError(t, CurrentSchema.Validate(validCurrentQuestion()))
}

func TestValidateLegacyAccepts(t *testing.T) {
	require.NoError(t, LegacySchema.Validate(validLegacyQuestion()))
}

func TestValidateWrongOptionCount(t *testing.T) {
	q := validCurrentQuestion()
	q.Options = makeOptions(7)

	err := CurrentSchema.Validate(q)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Reason, "wrong number of options: 7")
}

func TestValidateLegacyNeedsEightOptions(t *testing.T) {
	q := validLegacyQuestion()
	q.Options = makeOptions(10)

	var se *SchemaError
	require.ErrorAs(t, LegacySchema.Validate(q), &se)
}

func TestValidateAnswerMustBeOptionKey(t *testing.T) {
	q := validCurrentQuestion()
	q.CorrectAnswer = "Z"

	err := CurrentSchema.Validate(q)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Reason, `"Z"`)
}

func TestValidateConfidenceGate(t *testing.T) {
	q := validCurrentQuestion()
	q.Confidence = "low"

	err := CurrentSchema.Validate(q)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Reason, "high-confidence gate")

	// Gate is case-insensitive on the accept side.
	q.Confidence = "HIGH"
	assert.NoError(t, CurrentSchema.Validate(q))

	// The legacy variant has no gate at all.
	lq := validLegacyQuestion()
	lq.Confidence = "low"
	assert.NoError(t, LegacySchema.Validate(lq))
}

func TestValidateMissingFields(t *testing.T) {
	q := validCurrentQuestion()
	q.Question = ""
	var se *SchemaError
	require.ErrorAs(t, CurrentSchema.Validate(q), &se)
	assert.Contains(t, se.Reason, `"question"`)

	q = validCurrentQuestion()
	q.Reasoning = ""
	require.ErrorAs(t, CurrentSchema.Validate(q), &se)
	assert.Contains(t, se.Reason, `"reasoning"`)

	q = validCurrentQuestion()
	q.Confidence = ""
	require.ErrorAs(t, CurrentSchema.Validate(q), &se)
	assert.Contains(t, se.Reason, `"confidence"`)

	lq := validLegacyQuestion()
	lq.Thinking = ""
	require.ErrorAs(t, LegacySchema.Validate(lq), &se)
	assert.Contains(t, se.Reason, `"thinking"`)
}

func TestSchemaByName(t *testing.T) {
	s, err := SchemaByName("legacy")
	require.NoError(t, err)
	assert.Equal(t, 8, s.NumOptions)
	assert.False(t, s.KeepFailures)

	s, err = SchemaByName("current")
	require.NoError(t, err)
	assert.Equal(t, 10, s.NumOptions)
	assert.True(t, s.KeepFailures)

	_, err = SchemaByName("v5")
	assert.Error(t, err)
}
