package geneticsqa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndLoadQuestions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa.jsonl")

	q1 := validCurrentQuestion()
	q1.Review = &ReviewVerdict{Verdict: VerdictPass, Notes: "ok"}
	q2 := validLegacyQuestion()

	require.NoError(t, WriteQuestions(path, []*Question{q1, q2}))

	loaded, err := LoadQuestions(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Insertion order preserved.
	assert.Equal(t, q1.Question, loaded[0].Question)
	assert.Equal(t, VerdictPass, loaded[0].Review.Verdict)
	assert.Nil(t, loaded[1].Review)
	assert.Equal(t, q2.Thinking, loaded[1].Thinking)
}

func TestWriteEmptyPartitions(t *testing.T) {
	dir := t.TempDir()
	qaPath := filepath.Join(dir, "empty_qa.jsonl")
	failedPath := filepath.Join(dir, "empty_failed.jsonl")

	require.NoError(t, WriteQuestions(qaPath, nil))
	require.NoError(t, WriteFailures(failedPath, nil))

	for _, path := range []string{qaPath, failedPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	}

	loaded, err := LoadQuestions(qaPath)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadQuestionsSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa.jsonl")
	content := `{"question": "Q1", "correct_answer": "A", "options": {"A": "x"}}

{"question": "Q2", "correct_answer": "A", "options": {"A": "y"}}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded, err := LoadQuestions(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestLoadQuestionsBadLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{}\nnot json\n"), 0644))

	_, err := LoadQuestions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestToChatExampleCurrent(t *testing.T) {
	q := validCurrentQuestion()
	q.Category = "molecular_genetics"
	q.Subtopic = "Telomere maintenance and consequences of telomerase dysfunction"

	ex := ToChatExample(q, CurrentSchema)

	require.Len(t, ex.Messages, 2)
	assert.Equal(t, "user", ex.Messages[0].Role)
	assert.Equal(t, "assistant", ex.Messages[1].Role)

	assert.Contains(t, ex.Messages[0].Content, q.Question)
	assert.Contains(t, ex.Messages[0].Content, "A. option 1")
	assert.NotContains(t, ex.Messages[0].Content, "step by step")

	assert.Contains(t, ex.Messages[1].Content, q.Reasoning)
	assert.Contains(t, ex.Messages[1].Content, "The answer is C.")

	assert.Equal(t, "molecular_genetics", ex.Category)
	assert.Equal(t, q.Subtopic, ex.Subtopic)
}

func TestToChatExampleLegacy(t *testing.T) {
	q := validLegacyQuestion()

	ex := ToChatExample(q, LegacySchema)

	assert.Contains(t, ex.Messages[0].Content, "Think through it step by step")
	assert.Contains(t, ex.Messages[1].Content, q.Thinking)
	assert.Contains(t, ex.Messages[1].Content, "The answer is (C).")
	// Unset category falls back to the generic label.
	assert.Equal(t, "genetics", ex.Category)
}

func TestWriteChatExamples(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.jsonl")

	require.NoError(t, WriteChatExamples(path, []*Question{validCurrentQuestion()}, CurrentSchema))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"user"`)
	assert.Contains(t, string(data), `"role":"assistant"`)
}
