package geneticsqa

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// maxRecordSize bounds a single JSONL line; generated questions with long
// reasoning stay well under this.
const maxRecordSize = 1 << 20

// LoadQuestions reads a line-delimited JSON file of question records.
func LoadQuestions(path string) ([]*Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var questions []*Question
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var q Question
		if err := json.Unmarshal([]byte(line), &q); err != nil {
			return nil, fmt.Errorf("failed to parse line %d of %s: %w", lineNum, path, err)
		}
		questions = append(questions, &q)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return questions, nil
}

// WriteQuestions writes question records as JSONL, one object per line, in
// slice order. An empty slice still produces a well-formed empty file.
func WriteQuestions(path string, questions []*Question) error {
	return writeJSONLines(path, questions)
}

// WriteFailures writes the failure partition of a generation run.
func WriteFailures(path string, failures []*GenerationFailure) error {
	return writeJSONLines(path, failures)
}

// WriteChatExamples converts questions to chat format and writes them as
// JSONL for instruction tuning.
func WriteChatExamples(path string, questions []*Question, s Schema) error {
	examples := make([]*ChatExample, 0, len(questions))
	for _, q := range questions {
		examples = append(examples, ToChatExample(q, s))
	}
	return writeJSONLines(path, examples)
}

func writeJSONLines[T any](path string, items []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ToChatExample converts a question into a user/assistant message pair. The
// legacy variant keeps the explicit think-step-by-step framing; the current
// variant uses the bare MMLU-style phrasing.
func ToChatExample(q *Question, s Schema) *ChatExample {
	options := FormatOptions(q.Options)

	var userContent, assistantContent string
	if s.Name == LegacySchema.Name {
		userContent = fmt.Sprintf("Answer the following genetics question. Think through it step by step before giving your final answer.\n\nQuestion: %s\n\nOptions:\n%s", q.Question, options)
		assistantContent = fmt.Sprintf("%s\n\nThe answer is (%s).", q.Rationale(), q.CorrectAnswer)
	} else {
		userContent = fmt.Sprintf("%s\n\n%s", q.Question, options)
		assistantContent = fmt.Sprintf("%s\n\nThe answer is %s.", q.Rationale(), q.CorrectAnswer)
	}

	category := q.Category
	if category == "" {
		category = "genetics"
	}

	return &ChatExample{
		Messages: []ChatMessage{
			{Role: "user", Content: userContent},
			{Role: "assistant", Content: assistantContent},
		},
		Category: category,
		Subtopic: q.Subtopic,
	}
}
